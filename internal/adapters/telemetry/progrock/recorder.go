// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/fred/internal/core/ports"
)

var _ ports.Tracer = (*Recorder)(nil)

// Recorder implements ports.Tracer by recording one vertex per span on a progrock tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start starts recording a new vertex.
// Repeated names get distinct vertices.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	n := r.seq.Add(1)
	d := digest.FromString(fmt.Sprintf("%d:%s", n, name))
	return ctx, &Vertex{vertex: r.rec.Vertex(d, name)}
}

// EmitPlan records the plan as a completed vertex listing the task names.
func (r *Recorder) EmitPlan(_ context.Context, taskNames []string) {
	v := r.rec.Vertex(digest.FromString("plan:"+strings.Join(taskNames, ",")), "plan")
	for _, name := range taskNames {
		_, _ = fmt.Fprintln(v.Stdout(), name)
	}
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
