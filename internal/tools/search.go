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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"toolmanager/internal/paths"
)

func (d *Dispatcher) searchFiles(ctx context.Context, in SearchFilesInput) (string, error) {
	root, err := d.resolve(in.Path)
	if err != nil {
		return "", NewToolExecutionError("searching files", err)
	}
	files, err := d.walkFiles(ctx, root)
	if err != nil {
		return "", NewToolExecutionError("searching files", err)
	}

	if in.FilePattern != "" {
		glob, err := compileGlob(in.FilePattern)
		if err != nil {
			return "", NewToolExecutionError("searching files", err)
		}
		filtered := files[:0]
		for _, file := range files {
			if glob.MatchString(filepath.Base(file)) {
				filtered = append(filtered, file)
			}
		}
		files = filtered
	}

	pattern, err := regexp.Compile("(?m)" + in.Regex)
	if err != nil {
		return "", NewToolExecutionError("searching files", err)
	}

	var out strings.Builder
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return "", NewToolExecutionError("searching files", err)
		}
		content, err := os.ReadFile(file)
		if err != nil {
			return "", NewToolExecutionError("searching files", err)
		}
		writeFileMatches(&out, paths.Relative(root, file), string(content), pattern)
	}

	if out.Len() == 0 {
		return noMatchesFound, nil
	}
	return out.String(), nil
}

// writeFileMatches appends the matches of pattern in content, each with
// two lines of context on either side.
func writeFileMatches(out *strings.Builder, rel, content string, pattern *regexp.Regexp) {
	matches := pattern.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return
	}

	lines := strings.Split(content, "\n")
	fmt.Fprintf(out, "File: %s\n", rel)
	for _, match := range matches {
		lineNumber := strings.Count(content[:match[0]], "\n") + 1
		start := max(0, lineNumber-3)
		end := min(len(lines), lineNumber+2)
		fmt.Fprintf(out, "- Match at line %d:\n%s\n\n", lineNumber, strings.Join(lines[start:end], "\n"))
	}
	out.WriteString("\n")
}

// compileGlob translates a file name glob into an anchored regular
// expression: '.' is literal, '*' is any run, '?' is any one character.
// Other regex syntax in the glob is passed through unchanged.
func compileGlob(glob string) (*regexp.Regexp, error) {
	expr := strings.ReplaceAll(glob, ".", `\.`)
	expr = strings.ReplaceAll(expr, "*", ".*")
	expr = strings.ReplaceAll(expr, "?", ".")
	return regexp.Compile("^" + expr + "$")
}
