package ports

import (
	"context"
	"iter"

	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/lazy"
)

//go:generate go run go.uber.org/mock/mockgen -source=files.go -destination=mocks/mock_files.go -package=mocks

// FileHandle is a reference to a file on disk.
type FileHandle interface {
	// AbsPath resolves the absolute path of the file.
	AbsPath() (string, error)
}

// FileSource produces file handles on demand.
// A non-nil error ends the sequence.
type FileSource interface {
	Files() iter.Seq2[FileHandle, error]
}

// Step transforms a sequence of files into a new lazy sequence of files.
// Implementations must not do any work until the returned sequence is iterated.
type Step interface {
	Apply(ctx context.Context, files *lazy.Sequence[domain.File]) *lazy.Sequence[domain.File]
}

// ContentHasher computes stable digests of file content.
type ContentHasher interface {
	Digest(content string) string
}
