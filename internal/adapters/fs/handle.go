package fs

import (
	"iter"
	"path/filepath"

	"go.trai.ch/fred/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileHandle = Handle{}

// Handle references a file by path. The file is not touched until read.
type Handle struct {
	path string
}

// NewHandle creates a Handle for path.
func NewHandle(path string) Handle {
	return Handle{path: path}
}

// Path returns the path as given.
func (h Handle) Path() string {
	return h.path
}

// AbsPath resolves the absolute path of the file.
func (h Handle) AbsPath() (string, error) {
	abs, err := filepath.Abs(h.path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", h.path)
	}
	return abs, nil
}

// PathList is a FileSource over a fixed list of paths.
type PathList []string

var _ ports.FileSource = PathList(nil)

// Paths creates a FileSource yielding the given paths in order.
func Paths(paths ...string) PathList {
	return PathList(paths)
}

// Files yields one Handle per path.
func (l PathList) Files() iter.Seq2[ports.FileHandle, error] {
	return func(yield func(ports.FileHandle, error) bool) {
		for _, p := range l {
			if !yield(NewHandle(p), nil) {
				return
			}
		}
	}
}
