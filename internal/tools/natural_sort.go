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
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newPathCollator returns a collator comparing digits by numeric value and
// ignoring case and accents. Collators are not safe for concurrent use.
func newPathCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.IgnoreCase, collate.IgnoreDiacritics)
}

// comparePaths orders relative paths component by component. At the
// first differing component, a path that ends there sorts before a
// longer path that continues; otherwise the components are compared
// naturally. Paths sharing every component are ordered by depth.
func comparePaths(col *collate.Collator, a, b string) int {
	aParts := strings.Split(a, string(filepath.Separator))
	bParts := strings.Split(b, string(filepath.Separator))
	n := min(len(aParts), len(bParts))
	for i := 0; i < n; i++ {
		if aParts[i] == bParts[i] {
			continue
		}
		if i+1 == len(aParts) && i+1 < len(bParts) {
			return -1
		}
		if i+1 == len(bParts) && i+1 < len(aParts) {
			return 1
		}
		return col.CompareString(aParts[i], bParts[i])
	}
	return len(aParts) - len(bParts)
}

// sortPaths stable-sorts relative paths in place.
func sortPaths(rel []string) {
	col := newPathCollator()
	sort.SliceStable(rel, func(i, j int) bool {
		return comparePaths(col, rel[i], rel[j]) < 0
	})
}
