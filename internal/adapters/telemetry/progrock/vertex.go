package progrock

import (
	"fmt"

	"github.com/vito/progrock"
	"go.trai.ch/fred/internal/core/ports"
)

var _ ports.Span = (*Vertex)(nil)

// Vertex implements ports.Span wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write records p on the vertex stdout stream.
func (v *Vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

// SetAttribute records the pair as a line on the vertex stdout stream.
func (v *Vertex) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "%s=%v\n", key, value)
}

// RecordError remembers err so End marks the vertex as failed.
func (v *Vertex) RecordError(err error) {
	v.err = err
	if err != nil {
		_, _ = fmt.Fprintf(v.vertex.Stderr(), "%v\n", err)
	}
}

// End marks the vertex as finished.
func (v *Vertex) End() {
	v.vertex.Done(v.err)
}
