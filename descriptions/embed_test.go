package descriptions

import (
	"os"
	"strings"
	"testing"
)

func TestLoadMatchesFiles(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("Names() error: %v", err)
	}

	for _, name := range names {
		data, err := os.ReadFile(name + ".txt")
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		got, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", name, err)
		}
		if got != strings.TrimSpace(string(data)) {
			t.Fatalf("Load(%q) output mismatch", name)
		}
		if got == "" {
			t.Fatalf("description for %q is empty", name)
		}
	}
}

func TestCatalogueHasEightDescriptions(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("Names() error: %v", err)
	}
	if len(names) != 8 {
		t.Fatalf("expected 8 descriptions, got %d: %v", len(names), names)
	}
}

func TestLoadUnknownTool(t *testing.T) {
	if _, err := Load("no_such_tool"); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestMustLoadPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustLoad("no_such_tool")
}
