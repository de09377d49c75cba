package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDispatcher builds a dispatcher over the built-in registry rooted
// at a fresh temporary directory.
func newTestDispatcher(t *testing.T, opts Options) *Dispatcher {
	t.Helper()
	if opts.WorkDir == "" {
		opts.WorkDir = t.TempDir()
	}
	if opts.HomeDir == "" {
		opts.HomeDir = t.TempDir()
	}
	d, err := NewDispatcher(NewBuiltinRegistry(), opts)
	require.NoError(t, err)
	return d
}

// writeTree creates files below root. Keys are slash separated paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func run(t *testing.T, d *Dispatcher, name ToolName, args map[string]interface{}) Response {
	t.Helper()
	resp, err := d.Execute(context.Background(), ToolInvocation{Name: name, Arguments: args})
	require.NoError(t, err)
	return resp
}

func writeBenchFile(b *testing.B, root, name string) {
	b.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		b.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		b.Fatal(err)
	}
}
