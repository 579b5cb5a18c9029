// Package steps provides concrete pipeline steps.
package steps

import (
	"context"
	"errors"

	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/lazy"
	"go.trai.ch/fred/internal/core/ports"
	"go.trai.ch/zerr"
)

// Func transforms a single file in place.
type Func func(ctx context.Context, f domain.File) error

// Each is a Step that applies fn to every file as it is pulled.
type Each struct {
	name string
	fn   Func
}

var _ ports.Step = (*Each)(nil)

// NewEach creates a named Step from fn.
func NewEach(name string, fn Func) *Each {
	return &Each{name: name, fn: fn}
}

// Name returns the step name used in failures.
func (s *Each) Name() string {
	return s.name
}

// Apply returns a lazy sequence running fn on each element of files.
// The first failure ends the sequence with domain.ErrStepFailed.
func (s *Each) Apply(ctx context.Context, files *lazy.Sequence[domain.File]) *lazy.Sequence[domain.File] {
	return lazy.Map(files, func(f domain.File) (domain.File, error) {
		if err := ctx.Err(); err != nil {
			return nil, failure(s.name, f, err)
		}
		if err := s.fn(ctx, f); err != nil {
			return nil, failure(s.name, f, err)
		}
		return f, nil
	})
}

// Transform is a Step replacing each file's content with fn(content).
func Transform(name string, fn func(string) (string, error)) *Each {
	return NewEach(name, func(_ context.Context, f domain.File) error {
		content, err := f.Content()
		if err != nil {
			return err
		}
		out, err := fn(content)
		if err != nil {
			return err
		}
		f.SetContent(out)
		return nil
	})
}

// Digest is a Step replacing each file's content with a checksum line
// in the "<digest>  <name>" format.
func Digest(hasher ports.ContentHasher) *Each {
	return NewEach("digest", func(_ context.Context, f domain.File) error {
		content, err := f.Content()
		if err != nil {
			return err
		}
		f.SetContent(hasher.Digest(content) + "  " + domain.Target(f) + "\n")
		return nil
	})
}

func failure(step string, f domain.File, err error) error {
	wrapped := zerr.With(zerr.Wrap(err, "step failed"), "step", step)
	wrapped = zerr.With(wrapped, "path", domain.Target(f))
	return errors.Join(wrapped, domain.ErrStepFailed)
}
