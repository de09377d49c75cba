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
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"toolmanager/internal/paths"
)

// definitionPatterns match a declaration keyword followed by a name. They
// are a lexical heuristic: keywords inside comments or strings match too.
var definitionPatterns = map[string]*regexp.Regexp{
	".js":   regexp.MustCompile(`(?:class|function)\s+(\w+)`),
	".ts":   regexp.MustCompile(`(?:class|function|interface)\s+(\w+)`),
	".py":   regexp.MustCompile(`(?:class|def)\s+(\w+)`),
	".java": regexp.MustCompile(`(?:class|interface|enum)\s+(\w+)`),
	".cpp":  regexp.MustCompile(`(?:class|struct|enum)\s+(\w+)`),
	".c":    regexp.MustCompile(`(?:struct|enum)\s+(\w+)`),
	".cs":   regexp.MustCompile(`(?:class|interface|struct|enum)\s+(\w+)`),
}

func (d *Dispatcher) listCodeDefinitionNames(ctx context.Context, in ListCodeDefinitionNamesInput) (string, error) {
	root, err := d.resolve(in.Path)
	if err != nil {
		return "", NewToolExecutionError("listing code definitions", err)
	}
	files, err := d.walkFiles(ctx, root)
	if err != nil {
		return "", NewToolExecutionError("listing code definitions", err)
	}

	var out strings.Builder
	for _, file := range files {
		ext := filepath.Ext(file)
		if _, ok := definitionPatterns[ext]; !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return "", NewToolExecutionError("listing code definitions", err)
		}
		content, err := os.ReadFile(file)
		if err != nil {
			return "", NewToolExecutionError("listing code definitions", err)
		}
		defs := extractDefinitions(string(content), ext)
		if defs == "" {
			continue
		}
		out.WriteString("File: ")
		out.WriteString(paths.Relative(root, file))
		out.WriteString("\n")
		out.WriteString(defs)
		out.WriteString("\n\n")
	}

	if out.Len() == 0 {
		return noDefinitionsFound, nil
	}
	return out.String(), nil
}

// extractDefinitions returns every whole match for ext, one per line.
func extractDefinitions(content, ext string) string {
	pattern, ok := definitionPatterns[ext]
	if !ok {
		return ""
	}
	return strings.Join(pattern.FindAllString(content, -1), "\n")
}
