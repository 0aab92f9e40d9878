// Package telemetry provides telemetry helpers shared by implementations.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/winebuild/internal/core/ports"
)

// NoopTelemetry is a no-op implementation of ports.Telemetry, used when no
// progress rendering is wanted and in tests.
type NoopTelemetry struct{}

// NewNoop creates a new NoopTelemetry.
func NewNoop() *NoopTelemetry {
	return &NoopTelemetry{}
}

// Record returns a vertex that discards everything.
func (t *NoopTelemetry) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &NoopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoopTelemetry) Close() error { return nil }

// NoopVertex discards all writes and marks.
type NoopVertex struct{}

// Stdout returns a writer that discards input.
func (v *NoopVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns a writer that discards input.
func (v *NoopVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (v *NoopVertex) Complete(_ error) {}
