// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/docbuild/internal/core/domain"
)

// CommandRunner defines the interface for executing a single external command.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run prints the command's description and command line, then executes it.
	//
	// When cmd.Capture is set, the command's stdout is collected, every non-blank
	// line is echoed with the description as prefix, and the output with trailing
	// whitespace removed is returned. Otherwise the command inherits the runner's
	// output streams and the returned string is empty.
	//
	// A non-zero exit status is returned as an error wrapping domain.ErrCommandFailed.
	Run(ctx context.Context, cmd domain.Command) (string, error)
}
