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

// Limits configures output bounds for tool operations. File size and
// traversal depth are not bounded.
type Limits struct {
	ListFilesLimit int
}

const defaultListFilesLimit = 1000

// DefaultLimits returns the default limits for tool operations.
func DefaultLimits() Limits {
	return Limits{
		ListFilesLimit: defaultListFilesLimit,
	}
}

func normalizeLimits(l Limits) Limits {
	if l.ListFilesLimit <= 0 {
		l.ListFilesLimit = defaultListFilesLimit
	}
	return l
}
