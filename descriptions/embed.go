package descriptions

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.txt
var descriptionFiles embed.FS

// Load returns the description of the named tool, read from <name>.txt.
func Load(name string) (string, error) {
	data, err := descriptionFiles.ReadFile(name + ".txt")
	if err != nil {
		return "", fmt.Errorf("no description for tool %q: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// MustLoad is Load for the built-in catalogue, where a missing file is a
// build mistake.
func MustLoad(name string) string {
	text, err := Load(name)
	if err != nil {
		panic(err)
	}
	return text
}

// Names lists the tools that have an embedded description, in lexical order.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(descriptionFiles, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded description files: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".txt"))
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no description files found in embedded set")
	}

	sort.Strings(names)
	return names, nil
}
