package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/docbuild/internal/adapters/telemetry"
	"go.trai.ch/docbuild/internal/core/ports"
)

// NodeID is the unique identifier for the command runner Graft node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.TracerNodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(tracer), nil
		},
	})
}
