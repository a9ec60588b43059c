package ports

import "go.trai.ch/docbuild/internal/core/domain"

//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

// OutputDirManager prepares the directory receiving generated artifacts.
type OutputDirManager interface {
	// Reset removes path and everything below it, ignoring removal errors,
	// and recreates it empty.
	Reset(path string) error
}

// ArtifactInventory lists the files produced by a build.
type ArtifactInventory interface {
	// Collect walks root and returns every regular file with its size and digest,
	// sorted by path.
	Collect(root string) ([]domain.Artifact, error)
}

// Cleaner deletes build-artifact directories.
type Cleaner interface {
	// Clean removes every path matching one of patterns and returns the matched paths.
	Clean(patterns []string) ([]string, error)
}
