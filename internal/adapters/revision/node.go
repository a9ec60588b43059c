package revision

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/docbuild/internal/adapters/logger"
	"go.trai.ch/docbuild/internal/adapters/shell"
	"go.trai.ch/docbuild/internal/core/ports"
)

// NodeID is the unique identifier for the revision reader Graft node.
const NodeID graft.ID = "adapter.revision"

func init() {
	graft.Register(graft.Node[ports.RevisionReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RevisionReader, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(runner, log), nil
		},
	})
}
