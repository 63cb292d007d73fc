package sandbox

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixgen/internal/adapters/cas"
	"go.trai.ch/fixgen/internal/adapters/logger"
	"go.trai.ch/fixgen/internal/adapters/telemetry/progrock"
	"go.trai.ch/fixgen/internal/core/ports"
)

const (
	BuilderNodeID  graft.ID = "adapter.sandbox_builder"
	ExecutorNodeID graft.ID = "adapter.process_executor"
)

func init() {
	graft.Register(graft.Node[ports.SandboxBuilder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SandboxBuilder, error) {
			store, err := graft.Dep[ports.ContentStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(store, log), nil
		},
	})

	graft.Register(graft.Node[ports.ProcessExecutor]{
		ID:        ExecutorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (ports.ProcessExecutor, error) {
			store, err := graft.Dep[ports.ContentStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(store, log, tracer), nil
		},
	})
}
