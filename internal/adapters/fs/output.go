package fs

import (
	"os"

	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/docbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputDirManager = (*OutputDir)(nil)

// OutputDir resets the directory receiving generated documentation.
type OutputDir struct{}

// NewOutputDir creates a new OutputDir.
func NewOutputDir() *OutputDir {
	return &OutputDir{}
}

// Reset deletes path, whatever it currently is, and recreates it as an empty directory.
func (o *OutputDir) Reset(path string) error {
	_ = os.RemoveAll(path)

	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrOutputDirResetFailed, err.Error()), "path", path)
	}
	return nil
}
