// Package fs provides file system adapters for walking, globbing and hashing files.
package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/ports"
	"go.trai.ch/zerr"
)

var errSkipFile = errors.New("skip file")

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root, skipping .git, .jj and entries whose
// base name matches one of ignores. Yielded paths include root.
// A missing root or an unreadable entry ends the walk with ErrWalkFailed.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != root {
				switch skip := w.shouldSkip(d, ignores); {
				case errors.Is(skip, errSkipFile):
					return nil
				case skip != nil:
					return skip
				}
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil {
			yield("", zerr.With(fmt.Errorf("%w: %w", domain.ErrWalkFailed, err), "root", root))
		}
	}
}

// Tree returns a FileSource over the files under root.
// The directory is walked each time Files is ranged over.
func (w *Walker) Tree(root string, ignores ...string) ports.FileSource {
	return tree{walker: w, root: root, ignores: ignores}
}

// shouldSkip returns filepath.SkipDir for an ignored directory,
// errSkipFile for an ignored file and nil otherwise.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) error {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return errSkipFile
		}
	}

	return nil
}

type tree struct {
	walker  *Walker
	root    string
	ignores []string
}

func (t tree) Files() iter.Seq2[ports.FileHandle, error] {
	return func(yield func(ports.FileHandle, error) bool) {
		for path, err := range t.walker.WalkFiles(t.root, t.ignores) {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(NewHandle(path), nil) {
				return
			}
		}
	}
}
