// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	writeTree(t, d.WorkDir(), map[string]string{"doc.txt": "first\nsecond\n"})

	resp := run(t, d, ToolReadFile, map[string]interface{}{"path": "doc.txt"})
	assert.False(t, resp.IsError)
	assert.Equal(t, "first\nsecond\n", resp.Text)
}

func TestReadFileMissing(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	resp := run(t, d, ToolReadFile, map[string]interface{}{"path": "nope.txt"})
	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Text, "Error reading file: ")
}

func TestReadFileDirectory(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	writeTree(t, d.WorkDir(), map[string]string{"sub/a.txt": "a"})

	resp := run(t, d, ToolReadFile, map[string]interface{}{"path": "sub"})
	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Text, "Error reading file: path 'sub' is a directory")
}

func TestWriteToFileCreatesParents(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	resp := run(t, d, ToolWriteToFile, map[string]interface{}{"path": "dir/sub/new.txt", "content": "hello"})
	assert.False(t, resp.IsError, resp.Text)
	assert.Equal(t, "New file created successfully at "+filepath.Join("dir", "sub", "new.txt"), resp.Text)

	data, err := os.ReadFile(filepath.Join(d.WorkDir(), "dir", "sub", "new.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWriteToFileOutsideWorkDir(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	target := filepath.Join(t.TempDir(), "outside.txt")

	resp := run(t, d, ToolWriteToFile, map[string]interface{}{"path": target, "content": "x"})
	assert.Equal(t, "New file created successfully at "+target, resp.Text)
}

func TestWriteToFileOnDesktopUsesAbsolutePath(t *testing.T) {
	home := t.TempDir()
	desktop := filepath.Join(home, "Desktop")
	require.NoError(t, os.MkdirAll(desktop, 0o755))
	d := newTestDispatcher(t, Options{WorkDir: desktop, HomeDir: home})

	resp := run(t, d, ToolWriteToFile, map[string]interface{}{"path": "todo.txt", "content": "x"})
	assert.Equal(t, "New file created successfully at "+filepath.Join(desktop, "todo.txt"), resp.Text)
}

func TestWriteToFileUpdateShowsDiff(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	writeTree(t, d.WorkDir(), map[string]string{"a.txt": "a\nb\nc\n"})

	resp := run(t, d, ToolWriteToFile, map[string]interface{}{"path": "a.txt", "content": "a\nB\nc\n"})
	assert.Equal(t, "File updated successfully. Changes:\n\n@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n", resp.Text)

	data, err := os.ReadFile(filepath.Join(d.WorkDir(), "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a\nB\nc\n", string(data))
}

func TestWriteToFileIdenticalContent(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	writeTree(t, d.WorkDir(), map[string]string{"same.txt": "unchanged\n"})

	resp := run(t, d, ToolWriteToFile, map[string]interface{}{"path": "same.txt", "content": "unchanged\n"})
	assert.Equal(t, "File updated successfully. Changes:\n\n", resp.Text)
}

func TestWriteToFileTrailingNewlineChange(t *testing.T) {
	d := newTestDispatcher(t, Options{})
	writeTree(t, d.WorkDir(), map[string]string{"x.txt": "x\n"})

	resp := run(t, d, ToolWriteToFile, map[string]interface{}{"path": "x.txt", "content": "x"})
	assert.Equal(t, "File updated successfully. Changes:\n\n@@ -1,1 +1,1 @@\n-x\n+x\n\\ No newline at end of file\n", resp.Text)

	data, err := os.ReadFile(filepath.Join(d.WorkDir(), "x.txt"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestCreatePatch(t *testing.T) {
	header := "Index: a.txt\n" + diffSeparator + "\n--- a.txt\n+++ a.txt\n"

	cases := []struct {
		name     string
		old, new string
		want     string
	}{
		{"replace", "one\n", "two\n", "@@ -1,1 +1,1 @@\n-one\n+two\n"},
		{"from empty", "", "a\nb\n", "@@ -0,0 +1,2 @@\n+a\n+b\n"},
		{"to empty", "a\n", "", "@@ -1,1 +0,0 @@\n-a\n"},
		{"add trailing newline", "x", "x\n", "@@ -1,1 +1,1 @@\n-x\n\\ No newline at end of file\n+x\n"},
		{"identical", "same\n", "same\n", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, header+tc.want, createPatch("a.txt", tc.old, tc.new))
		})
	}
}

func TestCreatePatchContextWindow(t *testing.T) {
	oldStr := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n"
	newStr := "1\n2\n3\n4\n5\n6\n7\n8\n9\nten\n"

	body := createPrettyPatch("n.txt", oldStr, newStr)
	assert.Equal(t, "@@ -6,5 +6,5 @@\n 6\n 7\n 8\n 9\n-10\n+ten\n", body)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a\n", "b\n"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a\n", "b"}, splitLines("a\nb"))
}
