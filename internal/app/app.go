// Package app implements the application layer for docbuild.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/docbuild/internal/adapters/telemetry"
	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/docbuild/internal/core/ports"
	"go.trai.ch/docbuild/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// Deps holds the collaborators of an App.
type Deps struct {
	ConfigLoader ports.ConfigLoader
	Logger       ports.Logger
	OutputDir    ports.OutputDirManager
	Toolchain    ports.ToolchainResolver
	Containers   ports.ContainerBuilder
	Revision     ports.RevisionReader
	Inventory    ports.ArtifactInventory
	Cleaner      ports.Cleaner
	Pipeline     *pipeline.Pipeline
	Library      *pipeline.LibraryDocs
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	outputDir    ports.OutputDirManager
	toolchain    ports.ToolchainResolver
	containers   ports.ContainerBuilder
	revision     ports.RevisionReader
	inventory    ports.ArtifactInventory
	cleaner      ports.Cleaner
	pipeline     *pipeline.Pipeline
	library      *pipeline.LibraryDocs
	tracing      bool
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{
		configLoader: deps.ConfigLoader,
		logger:       deps.Logger,
		outputDir:    deps.OutputDir,
		toolchain:    deps.Toolchain,
		containers:   deps.Containers,
		revision:     deps.Revision,
		inventory:    deps.Inventory,
		cleaner:      deps.Cleaner,
		pipeline:     deps.Pipeline,
		library:      deps.Library,
		tracing:      true,
	}
}

// WithoutTracing skips installing the OpenTelemetry provider.
// This is primarily used for testing.
func (a *App) WithoutTracing() *App {
	a.tracing = false
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	ConfigPath string
	Container  bool
}

// Build regenerates the documentation set.
//
//nolint:cyclop // orchestration function
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	// 1. Load configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if a.tracing {
		shutdown := telemetry.Setup(a.logger)
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
		}()
	}

	// 2. Reset the output directory
	if err := a.outputDir.Reset(cfg.OutputDir); err != nil {
		return err
	}

	// 3. Establish the execution context
	var execCtx domain.ExecutionContext
	if opts.Container {
		defer a.containers.RemoveQuirkDir(cfg.Container)

		execCtx, err = a.containerContext(ctx, cfg)
	} else {
		execCtx, err = a.hostContext(cfg)
	}
	if err != nil {
		return err
	}

	// 4. Read the revision stamp on the host
	stamp := a.revision.Read(ctx, cfg.RevisionSource)

	// 5. Render the documentation set
	if err := a.pipeline.Run(ctx, cfg, execCtx, stamp); err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}

	// 6. Library reference, best effort
	a.reportLibrary(a.library.Run(ctx, cfg.Library, cfg.Parallel))

	// 7. Report what was produced
	a.reportArtifacts(cfg)
	return nil
}

func (a *App) hostContext(cfg *domain.Config) (domain.ExecutionContext, error) {
	bins, err := a.toolchain.Resolve(cfg.Binaries, false)
	if err != nil {
		return domain.ExecutionContext{}, err
	}
	return domain.NewHostContext(bins.HTML, bins.PDF), nil
}

func (a *App) containerContext(ctx context.Context, cfg *domain.Config) (domain.ExecutionContext, error) {
	bins, err := a.toolchain.Resolve(cfg.Binaries, true)
	if err != nil {
		return domain.ExecutionContext{}, err
	}

	imageID, err := a.containers.Build(ctx, cfg.Container)
	if err != nil {
		return domain.ExecutionContext{}, err
	}

	wrapper, err := a.containers.Wrapper(cfg.Container, imageID)
	if err != nil {
		return domain.ExecutionContext{}, err
	}
	return domain.NewContainerContext(bins.HTML, bins.PDF, imageID, wrapper), nil
}

// reportLibrary logs how many library targets were documented.
func (a *App) reportLibrary(report domain.LibraryReport) {
	if len(report.Results) == 0 {
		return
	}
	total := len(report.Results)
	a.logger.Info(fmt.Sprintf("library docs: %d/%d targets succeeded", total-len(report.Failed()), total))
}

// reportArtifacts logs the generated files and warns about expected ones that are missing.
func (a *App) reportArtifacts(cfg *domain.Config) {
	artifacts, err := a.inventory.Collect(cfg.OutputDir)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("could not list generated artifacts: %v", err))
		return
	}

	present := make(map[string]struct{}, len(artifacts))
	manpages := 0
	manDir := filepath.ToSlash(cfg.ManpageSubdir) + "/"
	for _, artifact := range artifacts {
		present[artifact.Path] = struct{}{}
		if strings.HasPrefix(artifact.Path, manDir) && strings.HasSuffix(artifact.Path, ".1") {
			manpages++
		}
		a.logger.Info(fmt.Sprintf("%s (%d bytes, xxh64 %s)", artifact.Path, artifact.Size, artifact.Digest))
	}

	for _, name := range ExpectedArtifacts(cfg) {
		if _, ok := present[name]; !ok {
			a.logger.Warn(fmt.Sprintf("expected artifact %s was not generated", name))
		}
	}
	if manpages == 0 {
		a.logger.Warn(fmt.Sprintf("no manpage was generated in %s", cfg.ManpageSubdir))
	}
}

// ExpectedArtifacts returns the output paths the HTML and PDF renderings
// produce, relative to the output directory.
func ExpectedArtifacts(cfg *domain.Config) []string {
	base := filepath.Base(cfg.Document)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return []string{stem + ".html", stem + ".pdf"}
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	All        bool
}

// Clean removes build-artifact directories, and the output directory when All is set.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	patterns := cfg.CleanPatterns
	if opts.All {
		patterns = append(patterns[:len(patterns):len(patterns)], cfg.OutputDir)
	}

	removed, err := a.cleaner.Clean(patterns)
	if err != nil {
		return err
	}

	if len(removed) == 0 {
		a.logger.Info("nothing to clean")
		return nil
	}
	for _, path := range removed {
		a.logger.Info("removed " + path)
	}
	return nil
}
