package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFilesText(t *testing.T, d *Dispatcher, path string, recursive bool) string {
	t.Helper()
	args := map[string]interface{}{"path": path}
	if recursive {
		args["recursive"] = "true"
	}
	resp := run(t, d, ToolListFiles, args)
	require.False(t, resp.IsError, resp.Text)
	return resp.Text
}

func TestListFilesEmptyDirectory(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	assert.Equal(t, noFilesFound, listFilesText(t, d, ".", false))
	assert.Equal(t, noFilesFound, listFilesText(t, d, ".", true))
}

func TestListFilesNonRecursive(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	writeTree(t, d.WorkDir(), map[string]string{
		"a.txt":       "a",
		"sub/b.txt":   "b",
		"sub/c/d.txt": "d",
	})
	assert.Equal(t, "a.txt\nsub", listFilesText(t, d, ".", false))
}

func TestListFilesRecursive(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	writeTree(t, d.WorkDir(), map[string]string{
		"a.txt":       "a",
		"sub/b.txt":   "b",
		"sub/c/d.txt": "d",
	})
	want := strings.Join([]string{
		"a.txt",
		filepath.Join("sub", "b.txt"),
		filepath.Join("sub", "c", "d.txt"),
	}, "\n")
	assert.Equal(t, want, listFilesText(t, d, ".", true))
}

func TestListFilesRecursiveFlagIsExactString(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	writeTree(t, d.WorkDir(), map[string]string{"sub/b.txt": "b"})

	resp := run(t, d, ToolListFiles, map[string]interface{}{"path": ".", "recursive": "TRUE"})
	assert.Equal(t, "sub", resp.Text)
}

func TestListFilesNaturalOrder(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	writeTree(t, d.WorkDir(), map[string]string{
		"file10.txt": "",
		"file2.txt":  "",
		"File1.txt":  "",
	})
	assert.Equal(t, "File1.txt\nfile2.txt\nfile10.txt", listFilesText(t, d, ".", false))
}

func TestListFilesTruncation(t *testing.T) {
	d := newTestDispatcher(t, Options{Limits: Limits{ListFilesLimit: 3}})
	files := map[string]string{}
	for i := 1; i <= 5; i++ {
		files[fmt.Sprintf("f%d.txt", i)] = ""
	}
	writeTree(t, d.WorkDir(), files)

	want := "f1.txt\nf2.txt\nf3.txt\n\n(Truncated at 3 results. Try listing files in subdirectories if you need to explore further.)"
	assert.Equal(t, want, listFilesText(t, d, ".", false))
}

func TestListFilesDefaultLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("creates 1500 files")
	}
	d := newTestDispatcher(t, Options{})
	for i := 0; i < 1500; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(d.WorkDir(), fmt.Sprintf("f%04d", i)), nil, 0o644))
	}

	out := listFilesText(t, d, ".", false)
	parts := strings.SplitN(out, "\n\n", 2)
	require.Len(t, parts, 2)
	assert.Len(t, strings.Split(parts[0], "\n"), 1000)
	assert.Contains(t, parts[1], "Truncated at 1000 results")
}

func TestListFilesMissingPath(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	resp := run(t, d, ToolListFiles, map[string]interface{}{"path": "nope"})
	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Text, "Error listing files: ")
}

func TestListFilesRespectsGitignore(t *testing.T) {
	d := newTestDispatcher(t, Options{RespectGitignore: true})
	writeTree(t, d.WorkDir(), map[string]string{
		".gitignore":       "build/\n*.log\n",
		"main.go":          "package main",
		"debug.log":        "noise",
		"build/output.bin": "bin",
	})
	assert.Equal(t, ".gitignore\nmain.go", listFilesText(t, d, ".", true))
}

func TestFormatFilesList(t *testing.T) {
	root := filepath.FromSlash("/project")
	files := []string{
		filepath.Join(root, "b"),
		filepath.Join(root, "a"),
	}
	assert.Equal(t, "a\nb", formatFilesList(root, files, 10))
	assert.Equal(t, noFilesFound, formatFilesList(root, nil, 10))
	assert.Equal(t, noFilesFound, formatFilesList(root, []string{root}, 10))
}

func TestComparePaths(t *testing.T) {
	col := newPathCollator()
	sep := string(filepath.Separator)
	tests := []struct {
		a, b string
		less bool
	}{
		{"a.txt", "b.txt", true},
		{"item2", "item10", true},
		{"Zeta", "alpha", false},
		{"sub" + sep + "z.txt", "sub" + sep + "c" + sep + "d.txt", true},
		{"sub" + sep + "c" + sep + "d.txt", "sub" + sep + "z.txt", false},
		{"a", "a" + sep + "b", true},
	}
	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.less, comparePaths(col, tt.a, tt.b) < 0)
		})
	}
}
