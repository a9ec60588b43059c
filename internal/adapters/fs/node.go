package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/docbuild/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the file walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// InventoryNodeID is the unique identifier for the artifact inventory Graft node.
	InventoryNodeID graft.ID = "adapter.fs.inventory"
	// OutputDirNodeID is the unique identifier for the output directory Graft node.
	OutputDirNodeID graft.ID = "adapter.fs.output"
	// CleanerNodeID is the unique identifier for the cleaner Graft node.
	CleanerNodeID graft.ID = "adapter.fs.cleaner"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactInventory]{
		ID:        InventoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.ArtifactInventory, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewInventory(walker), nil
		},
	})

	graft.Register(graft.Node[ports.OutputDirManager]{
		ID:        OutputDirNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputDirManager, error) {
			return NewOutputDir(), nil
		},
	})

	graft.Register(graft.Node[ports.Cleaner]{
		ID:        CleanerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Cleaner, error) {
			return NewCleaner(), nil
		},
	})
}
