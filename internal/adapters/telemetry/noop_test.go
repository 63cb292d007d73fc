package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fixgen/internal/adapters/telemetry"
)

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "discover")
	assert.NotNil(t, ctx)
	assert.NotNil(t, span)

	n, err := span.Write([]byte("collected 3 fixtures"))
	assert.NoError(t, err)
	assert.Equal(t, 20, n)

	span.SetAttribute("fixtures", 3)
	span.RecordError(assert.AnError)
	span.End()

	tracer.EmitPlan(ctx, []string{"a/lock.txt"})
}
