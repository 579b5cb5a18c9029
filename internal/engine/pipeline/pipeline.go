// Package pipeline chains steps over a lazy sequence of files.
package pipeline

import (
	"context"
	"iter"

	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/lazy"
	"go.trai.ch/fred/internal/core/ports"
)

// Pipeline is one stage of a step chain. Piping a step returns a new
// Pipeline and leaves the receiver unchanged.
type Pipeline struct {
	ctx   context.Context //nolint:containedctx // steps run when the pipeline is iterated, not when it is built
	files *lazy.Sequence[domain.File]
}

// New creates a Pipeline over files. ctx is handed to every piped step.
func New(ctx context.Context, files *lazy.Sequence[domain.File]) *Pipeline {
	return &Pipeline{ctx: ctx, files: files}
}

// Pipe returns a Pipeline whose files are produced by step.
// No step work happens until the result is iterated.
func (p *Pipeline) Pipe(step ports.Step) *Pipeline {
	return &Pipeline{ctx: p.ctx, files: step.Apply(p.ctx, p.files)}
}

// Files returns the underlying sequence.
func (p *Pipeline) Files() *lazy.Sequence[domain.File] {
	return p.files
}

// All iterates the pipeline. Iteration stops at the first step failure, and
// breaking out of the loop cancels the remaining elements.
func (p *Pipeline) All() iter.Seq2[domain.File, error] {
	return p.files.All()
}

// Collect drains the pipeline.
func (p *Pipeline) Collect() ([]domain.File, error) {
	return p.files.Collect()
}
