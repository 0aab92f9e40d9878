package progrock

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex wraps *progrock.VertexRecorder behind ports.Vertex.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer capturing the step's standard output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer capturing the step's error output.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Complete marks the vertex as finished, with err nil on success.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
