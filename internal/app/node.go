package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/docbuild/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/docbuild/internal/adapters/container" //nolint:depguard // Wired in app layer
	"go.trai.ch/docbuild/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/docbuild/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/docbuild/internal/adapters/revision"  //nolint:depguard // Wired in app layer
	"go.trai.ch/docbuild/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"go.trai.ch/docbuild/internal/core/ports"
	"go.trai.ch/docbuild/internal/engine/pipeline"
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
			config.NodeID,
			logger.NodeID,
			fs.OutputDirNodeID,
			toolchain.NodeID,
			container.NodeID,
			revision.NodeID,
			fs.InventoryNodeID,
			fs.CleanerNodeID,
			pipeline.NodeID,
			pipeline.LibraryNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			outputDir, err := graft.Dep[ports.OutputDirManager](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.ToolchainResolver](ctx)
			if err != nil {
				return nil, err
			}
			containers, err := graft.Dep[ports.ContainerBuilder](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.RevisionReader](ctx)
			if err != nil {
				return nil, err
			}
			inventory, err := graft.Dep[ports.ArtifactInventory](ctx)
			if err != nil {
				return nil, err
			}
			cleaner, err := graft.Dep[ports.Cleaner](ctx)
			if err != nil {
				return nil, err
			}
			docs, err := graft.Dep[*pipeline.Pipeline](ctx)
			if err != nil {
				return nil, err
			}
			library, err := graft.Dep[*pipeline.LibraryDocs](ctx)
			if err != nil {
				return nil, err
			}

			return New(Deps{
				ConfigLoader: loader,
				Logger:       log,
				OutputDir:    outputDir,
				Toolchain:    resolver,
				Containers:   containers,
				Revision:     reader,
				Inventory:    inventory,
				Cleaner:      cleaner,
				Pipeline:     docs,
				Library:      library,
			}), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
