package fixtures

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixgen/internal/adapters/buildgraph"
	"go.trai.ch/fixgen/internal/adapters/cas"
	"go.trai.ch/fixgen/internal/adapters/config"
	"go.trai.ch/fixgen/internal/adapters/console"
	"go.trai.ch/fixgen/internal/adapters/fs"
	"go.trai.ch/fixgen/internal/adapters/resolver"
	"go.trai.ch/fixgen/internal/adapters/sandbox"
	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
)

const (
	DiscovererNodeID graft.ID = "engine.discoverer"
	GathererNodeID   graft.ID = "engine.gatherer"
	RendererNodeID   graft.ID = "engine.renderer"
)

func init() {
	graft.Register(graft.Node[*Discoverer]{
		ID:        DiscovererNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			buildgraph.NodeID,
			fs.ConfigFinderNodeID,
			sandbox.BuilderNodeID,
			sandbox.ExecutorNodeID,
			cas.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Discoverer, error) {
			graph, err := graft.Dep[*buildgraph.Graph](ctx)
			if err != nil {
				return nil, err
			}
			finder, err := graft.Dep[ports.ConfigFinder](ctx)
			if err != nil {
				return nil, err
			}
			builder, err := graft.Dep[ports.SandboxBuilder](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.ProcessExecutor](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ContentStore](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewDiscoverer(graph, graph, finder, builder, executor, store, *settings), nil
		},
	})

	graft.Register(graft.Node[*Gatherer]{
		ID:        GathererNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{resolver.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (*Gatherer, error) {
			res, err := graft.Dep[ports.LockfileResolver](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewGatherer(res, *settings), nil
		},
	})

	graft.Register(graft.Node[*Renderer]{
		ID:        RendererNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, fs.WorkspaceNodeID, console.NodeID},
		Run: func(ctx context.Context) (*Renderer, error) {
			store, err := graft.Dep[ports.ContentStore](ctx)
			if err != nil {
				return nil, err
			}
			workspace, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			con, err := graft.Dep[ports.Console](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderer(store, workspace, con), nil
		},
	})
}
