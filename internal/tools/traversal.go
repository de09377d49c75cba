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

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sourcegraph/conc/iter"
)

// walker enumerates a directory tree. Entries come back in directory
// order, depth first; directories themselves are only emitted, with a
// trailing separator, when not recursing.
type walker struct {
	root      string
	recursive bool
	ignore    *ignore.GitIgnore
}

type walkResult struct {
	paths []string
	err   error
}

func (d *Dispatcher) newWalker(root string, recursive bool) *walker {
	w := &walker{root: root, recursive: recursive}
	if d.opts.RespectGitignore {
		w.ignore = loadGitignore(root)
	}
	return w
}

// loadGitignore compiles root/.gitignore, or returns nil when there is
// none to apply.
func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}

func (w *walker) skip(path string, isDir bool) bool {
	if w.ignore == nil {
		return false
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if isDir {
		rel += "/"
	}
	return w.ignore.MatchesPath(rel)
}

func (w *walker) walk(ctx context.Context) ([]string, error) {
	return w.list(ctx, w.root)
}

func (w *walker) list(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	results := iter.Map(entries, func(entry *os.DirEntry) walkResult {
		e := *entry
		res := filepath.Join(dir, e.Name())
		if w.skip(res, e.IsDir()) {
			return walkResult{}
		}
		if e.IsDir() {
			if w.recursive {
				paths, err := w.list(ctx, res)
				return walkResult{paths: paths, err: err}
			}
			return walkResult{paths: []string{res + string(filepath.Separator)}}
		}
		return walkResult{paths: []string{res}}
	})

	var files []string
	var errs []error
	for _, result := range results {
		if result.err != nil {
			errs = append(errs, result.err)
			continue
		}
		files = append(files, result.paths...)
	}
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return files, nil
}

// walkFiles returns every non-directory entry below root.
func (d *Dispatcher) walkFiles(ctx context.Context, root string) ([]string, error) {
	return d.newWalker(root, true).walk(ctx)
}
