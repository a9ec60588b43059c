package pipeline

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/docbuild/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// LibraryDocs generates the companion library's reference documentation
// once per target platform.
type LibraryDocs struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewLibraryDocs creates a new LibraryDocs.
func NewLibraryDocs(runner ports.CommandRunner, logger ports.Logger) *LibraryDocs {
	return &LibraryDocs{runner: runner, logger: logger}
}

// Command returns the generator invocation for target.
func (l *LibraryDocs) Command(cfg domain.LibraryConfig, target string) domain.Command {
	args := slices.Clone(cfg.Command[1:])
	args = append(args, "--target", target)
	return domain.Command{
		Description: "Generating library documentation (" + target + ")",
		Name:        cfg.Command[0],
		Args:        args,
		Dir:         cfg.Dir,
		QuietStderr: !cfg.Diagnostics,
	}
}

// Run attempts every target and reports each outcome. It never fails:
// a target's failure is recorded and, with cfg.Warn, logged as a warning.
func (l *LibraryDocs) Run(ctx context.Context, cfg domain.LibraryConfig, parallel bool) domain.LibraryReport {
	if len(cfg.Command) == 0 || len(cfg.Targets) == 0 {
		return domain.LibraryReport{}
	}
	report := domain.LibraryReport{Results: make([]domain.TargetResult, len(cfg.Targets))}

	attempt := func(i int, target string) {
		_, err := l.runner.Run(ctx, l.Command(cfg, target))
		report.Results[i] = domain.TargetResult{Target: target, Err: err}
	}

	if parallel {
		var g errgroup.Group
		for i, target := range cfg.Targets {
			g.Go(func() error {
				attempt(i, target)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, target := range cfg.Targets {
			attempt(i, target)
		}
	}

	if cfg.Warn {
		for _, failed := range report.Failed() {
			l.logger.Warn(fmt.Sprintf("library documentation for %s failed: %v", failed.Target, failed.Err))
		}
	}
	return report
}
