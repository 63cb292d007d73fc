package buildgraph

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/fixgen/internal/adapters/cas"
	"go.trai.ch/fixgen/internal/adapters/config"
	"go.trai.ch/fixgen/internal/adapters/fs"
	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
)

const NodeID graft.ID = "adapter.buildgraph"

func init() {
	graft.Register(graft.Node[*Graph]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, cas.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (*Graph, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
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
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewGraph(cwd, walker, store, *settings), nil
		},
	})
}
