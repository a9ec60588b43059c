// Package pipeline renders the documentation set and the library reference.
package pipeline

import (
	"context"
	"path/filepath"

	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/docbuild/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Descriptions label each rendering command in the trace.
const (
	DescribeHTML    = "Generating HTML documentation"
	DescribePDF     = "Generating PDF documentation"
	DescribeManpage = "Generating manpage"
)

// Pipeline runs the three rendering commands of a documentation build.
type Pipeline struct {
	runner ports.CommandRunner
	tracer ports.Tracer
}

// NewPipeline creates a new Pipeline.
func NewPipeline(runner ports.CommandRunner, tracer ports.Tracer) *Pipeline {
	return &Pipeline{runner: runner, tracer: tracer}
}

// Commands returns the HTML, PDF and manpage commands in execution order,
// already wrapped for execCtx.
func (p *Pipeline) Commands(cfg *domain.Config, execCtx domain.ExecutionContext, stamp string) []domain.Command {
	out := cfg.OutputDir
	cmds := []domain.Command{
		renderCommand(DescribeHTML, execCtx.PrimaryBinary(), nil, cfg.DiagramExtension, stamp, out, cfg.Document),
		renderCommand(DescribePDF, execCtx.PDFBinary(), nil, cfg.DiagramExtension, stamp, out, cfg.Document),
		renderCommand(DescribeManpage, execCtx.PrimaryBinary(), []string{"-b", domain.ManpageBackend},
			cfg.DiagramExtension, stamp, filepath.Join(out, cfg.ManpageSubdir), cfg.ManpageDocument),
	}
	for i := range cmds {
		cmds[i] = execCtx.Wrap(cmds[i])
	}
	return cmds
}

// Run executes the rendering commands. Sequentially, the first failure skips
// the remaining commands. With parallel set they run concurrently and the
// first failure cancels the others.
func (p *Pipeline) Run(ctx context.Context, cfg *domain.Config, execCtx domain.ExecutionContext, stamp string) error {
	ctx, span := p.tracer.Start(ctx, "Documentation pipeline")
	defer span.End()
	span.SetAttribute("container", execCtx.UseContainer())
	span.SetAttribute("parallel", cfg.Parallel)

	cmds := p.Commands(cfg, execCtx, stamp)

	var err error
	if cfg.Parallel {
		err = p.runParallel(ctx, cmds)
	} else {
		err = p.runSequential(ctx, cmds)
	}
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (p *Pipeline) runSequential(ctx context.Context, cmds []domain.Command) error {
	for _, cmd := range cmds {
		if _, err := p.runner.Run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) runParallel(ctx context.Context, cmds []domain.Command) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, cmd := range cmds {
		g.Go(func() error {
			_, err := p.runner.Run(ctx, cmd)
			return err
		})
	}
	return g.Wait()
}

// renderCommand fills the single rendering template:
// {binary} [backend...] -r <extension> -a commit-hash=<stamp> --destination-dir <out> <source>.
func renderCommand(description, binary string, backend []string, extension, stamp, out, source string) domain.Command {
	args := make([]string, 0, len(backend)+7)
	args = append(args, backend...)
	args = append(args,
		"-r", extension,
		"-a", "commit-hash="+stamp,
		"--destination-dir", out,
		source,
	)
	return domain.Command{
		Description: description,
		Name:        binary,
		Args:        args,
	}
}
