package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/docbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactInventory = (*Inventory)(nil)

// Inventory lists generated artifacts with their sizes and content digests.
type Inventory struct {
	walker *Walker
}

// NewInventory creates a new Inventory.
func NewInventory(walker *Walker) *Inventory {
	return &Inventory{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (i *Inventory) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// Collect walks root and describes every file below it, except for the
// diagram cache and temporary files. Paths are relative to root, slash
// separated and sorted.
func (i *Inventory) Collect(root string) ([]domain.Artifact, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInventoryFailed, err.Error()), "path", root)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrInventoryFailed, "not a directory"), "path", root)
	}

	var artifacts []domain.Artifact
	for path := range i.walker.WalkFiles(root, domain.InventoryIgnores()) {
		artifact, err := i.describe(root, path)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	sort.Slice(artifacts, func(a, b int) bool {
		return artifacts[a].Path < artifacts[b].Path
	})
	return artifacts, nil
}

func (i *Inventory) describe(root, path string) (domain.Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Artifact{}, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", path)
	}

	hash, err := i.ComputeFileHash(path)
	if err != nil {
		return domain.Artifact{}, zerr.With(zerr.Wrap(domain.ErrFileHashFailed, err.Error()), "path", path)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	return domain.Artifact{
		Path:   filepath.ToSlash(rel),
		Size:   info.Size(),
		Digest: fmt.Sprintf("%016x", hash),
	}, nil
}
