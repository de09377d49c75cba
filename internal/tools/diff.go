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
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	diffContextLines = 4
	diffSeparator    = "==================================================================="
	// Index, separator, --- and +++ lines.
	diffHeaderLines = 4
	noNewlineMarker = "\\ No newline at end of file"
)

// createPatch renders a unified diff of oldStr to newStr with an
// "Index:" header. Identical inputs produce only the header lines.
func createPatch(filename, oldStr, newStr string) string {
	a, b := splitLines(oldStr), splitLines(newStr)

	var patch strings.Builder
	patch.WriteString("Index: " + filename + "\n")
	patch.WriteString(diffSeparator + "\n")
	patch.WriteString("--- " + filename + "\n")
	patch.WriteString("+++ " + filename + "\n")

	matcher := difflib.NewMatcherWithJunk(a, b, false, nil)
	for _, group := range matcher.GetGroupedOpCodes(diffContextLines) {
		writeHunk(&patch, a, b, group)
	}
	return patch.String()
}

// writeHunk writes one hunk. Ranges always carry a line count, and an
// empty range starts at the line before it.
func writeHunk(patch *strings.Builder, a, b []string, group []difflib.OpCode) {
	first, last := group[0], group[len(group)-1]
	oldStart, oldLines := first.I1+1, last.I2-first.I1
	newStart, newLines := first.J1+1, last.J2-first.J1
	if oldLines == 0 {
		oldStart--
	}
	if newLines == 0 {
		newStart--
	}
	fmt.Fprintf(patch, "@@ -%d,%d +%d,%d @@\n", oldStart, oldLines, newStart, newLines)

	for _, op := range group {
		if op.Tag == 'e' {
			writeDiffLines(patch, ' ', a[op.I1:op.I2])
			continue
		}
		if op.Tag == 'r' || op.Tag == 'd' {
			writeDiffLines(patch, '-', a[op.I1:op.I2])
		}
		if op.Tag == 'r' || op.Tag == 'i' {
			writeDiffLines(patch, '+', b[op.J1:op.J2])
		}
	}
}

func writeDiffLines(patch *strings.Builder, prefix byte, lines []string) {
	for _, line := range lines {
		patch.WriteByte(prefix)
		patch.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			patch.WriteString("\n" + noNewlineMarker + "\n")
		}
	}
}

// createPrettyPatch returns the diff body without its header lines.
func createPrettyPatch(filename, oldStr, newStr string) string {
	lines := strings.Split(createPatch(filename, oldStr, newStr), "\n")
	if len(lines) <= diffHeaderLines {
		return ""
	}
	return strings.Join(lines[diffHeaderLines:], "\n")
}

// splitLines splits s after each newline. A final line without a newline
// stays unterminated so a change to the trailing newline shows in the diff.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
