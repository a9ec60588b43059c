package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/docbuild/internal/adapters/logger"
	"go.trai.ch/docbuild/internal/adapters/shell"
	"go.trai.ch/docbuild/internal/adapters/telemetry"
	"go.trai.ch/docbuild/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the documentation pipeline Graft node.
	NodeID graft.ID = "engine.pipeline"
	// LibraryNodeID is the unique identifier for the library documentation Graft node.
	LibraryNodeID graft.ID = "engine.library"
)

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Pipeline, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewPipeline(runner, tracer), nil
		},
	})

	graft.Register(graft.Node[*LibraryDocs]{
		ID:        LibraryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*LibraryDocs, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLibraryDocs(runner, log), nil
		},
	})
}
