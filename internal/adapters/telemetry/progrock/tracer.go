// Package progrock implements the tracer port on the progrock progress
// protocol. Each span becomes a vertex on the tape.
package progrock

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/fixgen/internal/core/ports"
)

// Tracer implements ports.Tracer using the progrock library.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Tracer with a default tape.
func New() ports.Tracer {
	return NewTracer(progrock.NewTape())
}

// NewTracer creates a new Tracer recording to the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{w: w, rec: progrock.NewRecorder(w)}
}

// Start opens a new vertex on the tape.
func (t *Tracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := t.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// EmitPlan records the planned fixture paths as a completed vertex so
// the full write set is visible before any file lands on disk.
func (t *Tracer) EmitPlan(_ context.Context, paths []string) {
	v := t.rec.Vertex(digest.FromString("plan"), "plan")
	for _, p := range paths {
		_, _ = fmt.Fprintln(v.Stdout(), p)
	}
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
