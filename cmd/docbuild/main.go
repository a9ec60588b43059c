// Package main is the entry point for the docbuild documentation builder.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/docbuild/cmd/docbuild/commands"
	"go.trai.ch/docbuild/internal/adapters/shell"
	"go.trai.ch/docbuild/internal/app"
	"go.trai.ch/docbuild/internal/core/domain"
	_ "go.trai.ch/docbuild/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Route logs to the given stream
	if redirectable, ok := components.Logger.(interface{ SetOutput(io.Writer) }); ok {
		redirectable.SetOutput(stderr)
	}

	// 3. Interface - CLI
	formatter, _ := components.Logger.(commands.LogFormatter)
	cli := commands.New(components.App, formatter)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 4. Execution
	if err := cli.Execute(ctx); err != nil {
		return exitCode(err, stdout, components)
	}
	return 0
}

// exitCode reports err and chooses the process exit status for it.
func exitCode(err error, stdout io.Writer, components *app.Components) int {
	if errors.Is(err, domain.ErrToolchainMissing) {
		_, _ = fmt.Fprintln(stdout, domain.ToolchainGuidance)
		return 1
	}

	components.Logger.Error(err)
	if code, ok := shell.ExitCode(err); ok {
		return code
	}
	return 1
}
