package fs

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixgen/internal/adapters/cas"
	"go.trai.ch/fixgen/internal/core/ports"
)

const (
	WalkerNodeID       graft.ID = "adapter.fs.walker"
	WorkspaceNodeID    graft.ID = "adapter.fs.workspace"
	ConfigFinderNodeID graft.ID = "adapter.fs.config_finder"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Workspace]{
		ID:        WorkspaceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID},
		Run: func(ctx context.Context) (ports.Workspace, error) {
			store, err := graft.Dep[ports.ContentStore](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewWorkspace(cwd, store), nil
		},
	})

	graft.Register(graft.Node[ports.ConfigFinder]{
		ID:        ConfigFinderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID},
		Run: func(ctx context.Context) (ports.ConfigFinder, error) {
			store, err := graft.Dep[ports.ContentStore](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewConfigFinder(cwd, store), nil
		},
	})
}
