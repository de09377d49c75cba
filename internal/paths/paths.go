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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ValidatePathString validates raw path input before resolution.
// An empty path is allowed and resolves to the base directory.
func ValidatePathString(path string, maxLen int) error {
	if strings.IndexByte(path, 0) != -1 {
		return fmt.Errorf("path contains null byte")
	}
	if !utf8.ValidString(path) {
		return fmt.Errorf("path is not valid UTF-8")
	}
	if maxLen > 0 && len(path) > maxLen {
		return fmt.Errorf("path exceeds maximum length of %d characters", maxLen)
	}
	return nil
}

// Resolve returns path as an absolute, cleaned path. Relative paths are
// joined onto baseDir; absolute paths are only cleaned.
func Resolve(baseDir, path string) (string, error) {
	if err := ValidatePathString(path, 0); err != nil {
		return "", err
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	baseAbs, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("invalid base directory: %v", err)
	}
	return filepath.Join(baseAbs, path), nil
}

// HasPathPrefix returns true when path is within base.
func HasPathPrefix(path, base string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, ".."+string(os.PathSeparator)) && rel != "..")
}

// Relative returns target relative to base. When no relative form
// exists (different volumes) the target is returned unchanged.
func Relative(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target
	}
	if rel == "." {
		return ""
	}
	return rel
}

// ReadablePath renders a resolved path for display to the model:
//   - absolute when workDir is the user's Desktop folder
//   - the base name when target is workDir itself
//   - relative when target lives under workDir
//   - absolute otherwise
func ReadablePath(workDir, homeDir, target string) string {
	workDir = filepath.Clean(workDir)
	target = filepath.Clean(target)
	if homeDir != "" && workDir == filepath.Join(homeDir, "Desktop") {
		return target
	}
	if target == workDir {
		return filepath.Base(target)
	}
	if HasPathPrefix(target, workDir) {
		return Relative(workDir, target)
	}
	return target
}
