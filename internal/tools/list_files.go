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
	"strings"

	"toolmanager/internal/paths"
)

func (d *Dispatcher) listFiles(ctx context.Context, in ListFilesInput) (string, error) {
	root, err := d.resolve(in.Path)
	if err != nil {
		return "", NewToolExecutionError("listing files", err)
	}
	files, err := d.newWalker(root, in.Recursive == "true").walk(ctx)
	if err != nil {
		return "", NewToolExecutionError("listing files", err)
	}
	return formatFilesList(root, files, d.opts.Limits.ListFilesLimit), nil
}

// formatFilesList renders absolute entries relative to root, naturally
// sorted and capped at limit lines.
func formatFilesList(root string, files []string, limit int) string {
	rel := make([]string, len(files))
	for i, file := range files {
		rel[i] = paths.Relative(root, file)
	}
	sortPaths(rel)

	switch {
	case len(rel) == 0 || (len(rel) == 1 && rel[0] == ""):
		return noFilesFound
	case len(rel) > limit:
		return strings.Join(rel[:limit], "\n") + formatTruncated(limit)
	default:
		return strings.Join(rel, "\n")
	}
}
