package domain

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// File is an in-memory view of a file flowing through a pipeline.
// It is implemented by *RealFile and *VirtualFile only.
type File interface {
	// Name identifies the file.
	Name() string
	// Path is the backing location on disk, or "" when there is none.
	Path() string
	// Content returns the current content.
	Content() (string, error)
	// SetContent replaces the content wholesale.
	SetContent(content string)

	file()
}

// RealFile is a file backed by a path on disk.
// Its content is read on first access and is held in memory afterwards.
type RealFile struct {
	path    string
	content string
	loaded  bool
}

// NewRealFile creates a RealFile for path without touching the disk.
func NewRealFile(path string) *RealFile {
	return &RealFile{path: filepath.Clean(path)}
}

// Name returns the base name of the file.
func (f *RealFile) Name() string {
	return filepath.Base(f.path)
}

// Path returns the path the file was created with.
func (f *RealFile) Path() string {
	return f.path
}

// Content returns the file content, reading it from disk on first access.
func (f *RealFile) Content() (string, error) {
	if f.loaded {
		return f.content, nil
	}
	data, err := os.ReadFile(f.path) //nolint:gosec // path is provided by the file source
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", ErrFileReadFailed, err), "path", f.path)
	}
	f.content = string(data)
	f.loaded = true
	return f.content, nil
}

// SetContent replaces the in-memory content. The file on disk is left untouched.
func (f *RealFile) SetContent(content string) {
	f.content = content
	f.loaded = true
}

func (*RealFile) file() {}

// VirtualFile is a file with a name but no backing storage.
type VirtualFile struct {
	name    string
	content string
}

// NewVirtualFile creates an empty VirtualFile.
func NewVirtualFile(name string) *VirtualFile {
	return &VirtualFile{name: name}
}

// Name returns the name the file was created with.
func (f *VirtualFile) Name() string {
	return f.name
}

// Path always returns "".
func (f *VirtualFile) Path() string {
	return ""
}

// Content returns the in-memory content.
func (f *VirtualFile) Content() (string, error) {
	return f.content, nil
}

// SetContent replaces the in-memory content.
func (f *VirtualFile) SetContent(content string) {
	f.content = content
}

func (*VirtualFile) file() {}

// Target returns the argument an external command should receive for f:
// its path when it has one, its name otherwise.
func Target(f File) string {
	if p := f.Path(); p != "" {
		return p
	}
	return f.Name()
}
