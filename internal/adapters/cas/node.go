package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixgen/internal/core/ports"
)

const NodeID graft.ID = "adapter.content_store"

func init() {
	graft.Register(graft.Node[ports.ContentStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContentStore, error) {
			return NewStore(), nil
		},
	})
}
