package revision

import "go.trai.ch/docbuild/internal/core/ports"

// NewReaderAt creates a Reader for the repository containing dir.
func NewReaderAt(runner ports.CommandRunner, logger ports.Logger, dir string) *Reader {
	return &Reader{runner: runner, logger: logger, dir: dir}
}
