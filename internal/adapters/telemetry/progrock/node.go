package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixgen/internal/core/ports"
)

const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return New(), nil
		},
	})
}
