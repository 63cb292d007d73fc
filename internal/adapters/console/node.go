package console

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixgen/internal/core/ports"
)

const NodeID graft.ID = "adapter.console"

func init() {
	graft.Register(graft.Node[ports.Console]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Console, error) {
			return New(), nil
		},
	})
}
