// Package fs provides file system adapters for walking and hashing files.
package fs

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"sync"

	"github.com/charlievieth/fastwalk"
	"go.trai.ch/zerr"
)

// Walker lists the regular files of a directory tree.
type Walker struct {
	workers int
}

// NewWalker creates a new Walker using fastwalk's default worker count.
func NewWalker() *Walker {
	return &Walker{}
}

// WithWorkers sets the number of concurrent directory readers.
func (w *Walker) WithWorkers(n int) *Walker {
	w.workers = n
	return w
}

// WalkFiles returns every regular file under root as a slash-separated path relative
// to root, sorted lexically. Entries whose base name matches one of the ignore
// patterns are skipped, and so are whole directories that match.
func (w *Walker) WalkFiles(ctx context.Context, root string, ignores []string) ([]string, error) {
	conf := fastwalk.Config{
		Follow:     false,
		NumWorkers: w.workers,
	}

	var (
		mu    sync.Mutex
		files []string
	)

	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == root {
			return nil
		}

		if ignored(d.Name(), ignores) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		mu.Lock()
		files = append(files, filepath.ToSlash(rel))
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", root)
	}

	slices.Sort(files)
	return files, nil
}

func ignored(name string, ignores []string) bool {
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
