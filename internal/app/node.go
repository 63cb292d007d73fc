package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixgen/internal/adapters/buildgraph"         //nolint:depguard // Wired in app layer
	"go.trai.ch/fixgen/internal/adapters/console"            //nolint:depguard // Wired in app layer
	"go.trai.ch/fixgen/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/fixgen/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/fixgen/internal/engine/fixtures"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			buildgraph.NodeID,
			fixtures.DiscovererNodeID,
			fixtures.GathererNodeID,
			fixtures.RendererNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			graph, err := graft.Dep[*buildgraph.Graph](ctx)
			if err != nil {
				return nil, err
			}
			discoverer, err := graft.Dep[*fixtures.Discoverer](ctx)
			if err != nil {
				return nil, err
			}
			gatherer, err := graft.Dep[*fixtures.Gatherer](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[*fixtures.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(graph, discoverer, gatherer, renderer, tracer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			console.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			con, err := graft.Dep[ports.Console](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log, Console: con}, nil
		},
	})
}
