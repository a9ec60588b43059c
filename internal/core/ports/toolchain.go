package ports

import (
	"context"

	"go.trai.ch/docbuild/internal/core/domain"
)

// ToolchainResolver determines the rendering binaries for a build.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainResolver interface {
	// Resolve returns the binaries to invoke.
	//
	// In host mode each configured binary is looked up on PATH and its absolute
	// path returned; a missing binary yields domain.ErrToolchainMissing.
	// In container mode the logical names are returned without lookup.
	Resolve(bins domain.Binaries, useContainer bool) (domain.Binaries, error)
}

// ContainerBuilder builds the documentation image and describes how to run inside it.
type ContainerBuilder interface {
	// Build builds the image from the configured build file and returns its identifier.
	Build(ctx context.Context, cfg domain.ContainerConfig) (string, error)

	// Wrapper returns the command prefix running a program inside imageID with
	// the working directory bind-mounted and the invoking user's identity.
	Wrapper(cfg domain.ContainerConfig, imageID string) ([]string, error)

	// RemoveQuirkDir deletes the host directory left behind by the container's font cache.
	// Failures are logged, never returned.
	RemoveQuirkDir(cfg domain.ContainerConfig)
}
