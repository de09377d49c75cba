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

	"toolmanager/internal/paths"
)

func (d *Dispatcher) readFile(ctx context.Context, in ReadFileInput) (string, error) {
	absPath, err := d.resolve(in.Path)
	if err != nil {
		return "", NewToolExecutionError("reading file", err)
	}
	if info, err := os.Stat(absPath); err != nil {
		return "", NewToolExecutionError("reading file", err)
	} else if info.IsDir() {
		return "", NewToolExecutionError("reading file", fmt.Errorf("path '%s' is a directory", in.Path))
	}
	content, err := catFile(ctx, d.opts.WorkDir, absPath)
	if err != nil {
		return "", NewToolExecutionError("reading file", err)
	}
	return content, nil
}

func (d *Dispatcher) writeToFile(ctx context.Context, in WriteToFileInput) (string, error) {
	absPath, err := d.resolve(in.Path)
	if err != nil {
		return "", NewToolExecutionError("writing to file", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		original, err := os.ReadFile(absPath)
		if err != nil {
			return "", NewToolExecutionError("writing to file", err)
		}
		diffBody := createPrettyPatch(in.Path, string(original), in.Content)
		if err := os.WriteFile(absPath, []byte(in.Content), 0o644); err != nil {
			return "", NewToolExecutionError("writing to file", err)
		}
		return formatFileUpdated(diffBody), nil
	}

	if err := mkdirAll(ctx, d.opts.WorkDir, filepath.Dir(absPath)); err != nil {
		return "", NewToolExecutionError("writing to file", err)
	}
	if err := os.WriteFile(absPath, []byte(in.Content), 0o644); err != nil {
		return "", NewToolExecutionError("writing to file", err)
	}
	return formatFileCreated(paths.ReadablePath(d.opts.WorkDir, d.opts.HomeDir, absPath)), nil
}
