package container

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/docbuild/internal/adapters/logger"
	"go.trai.ch/docbuild/internal/adapters/shell"
	"go.trai.ch/docbuild/internal/core/ports"
)

// NodeID is the unique identifier for the container builder Graft node.
const NodeID graft.ID = "adapter.container"

func init() {
	graft.Register(graft.Node[ports.ContainerBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ContainerBuilder, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(runner, log), nil
		},
	})
}
