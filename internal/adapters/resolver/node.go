package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixgen/internal/adapters/config"
	"go.trai.ch/fixgen/internal/adapters/logger"
	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
)

const NodeID graft.ID = "adapter.resolver"

func init() {
	graft.Register(graft.Node[ports.LockfileResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.LockfileResolver, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCommandResolver(settings.ResolverCommand, log), nil
		},
	})
}
