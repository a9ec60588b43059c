// Package container builds the documentation image and runs commands inside it.
package container

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/docbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// identity reports the invoking user and the directory mounted into the container.
type identity struct {
	getwd  func() (string, error)
	getuid func() int
	getgid func() int
}

// Builder implements ports.ContainerBuilder on top of a container engine CLI.
type Builder struct {
	runner ports.CommandRunner
	logger ports.Logger
	id     identity
}

// NewBuilder creates a Builder using the current process identity.
func NewBuilder(runner ports.CommandRunner, logger ports.Logger) *Builder {
	return &Builder{
		runner: runner,
		logger: logger,
		id: identity{
			getwd:  os.Getwd,
			getuid: os.Getuid,
			getgid: os.Getgid,
		},
	}
}

// Build builds the image described by cfg.File and returns its identifier.
func (b *Builder) Build(ctx context.Context, cfg domain.ContainerConfig) (string, error) {
	out, err := b.runner.Run(ctx, domain.Command{
		Description: "Building container image",
		Name:        cfg.Engine,
		Args:        []string{"build", "--quiet", "--file", cfg.File, "."},
		Capture:     true,
	})
	if err != nil {
		return "", errors.Join(domain.ErrContainerBuildFailed, err)
	}

	if out == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrContainerBuildFailed, "no image identifier reported"), "file", cfg.File)
	}
	return out, nil
}

// Wrapper returns the prefix running a program inside imageID with the
// working directory mounted at cfg.Mount and the invoking user's uid and gid.
func (b *Builder) Wrapper(cfg domain.ContainerConfig, imageID string) ([]string, error) {
	cwd, err := b.id.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	user := strconv.Itoa(b.id.getuid()) + ":" + strconv.Itoa(b.id.getgid())
	return []string{
		cfg.Engine, "run", "--rm",
		"--volume", cwd + ":" + cfg.Mount,
		"--workdir", cfg.Mount,
		"--user", user,
		imageID,
	}, nil
}

// RemoveQuirkDir deletes the directory the container's font cache leaves in
// the working directory.
func (b *Builder) RemoveQuirkDir(cfg domain.ContainerConfig) {
	if cfg.QuirkDir == "" {
		return
	}
	if _, err := os.Lstat(cfg.QuirkDir); err != nil {
		if !os.IsNotExist(err) {
			b.logger.Warn(fmt.Sprintf("could not inspect %q: %v", cfg.QuirkDir, err))
		}
		return
	}
	if err := os.RemoveAll(cfg.QuirkDir); err != nil {
		b.logger.Warn(fmt.Sprintf("could not remove %q: %v", cfg.QuirkDir, err))
		return
	}
	b.logger.Info(fmt.Sprintf("removed container cache directory %q", cfg.QuirkDir))
}
