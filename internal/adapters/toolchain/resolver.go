// Package toolchain locates the documentation rendering binaries.
package toolchain

import (
	"os"
	"strings"

	"go.trai.ch/docbuild/internal/adapters/shell"
	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver implements ports.ToolchainResolver by searching PATH.
type Resolver struct {
	environ func() []string
}

// NewResolver creates a Resolver reading PATH from the process environment.
func NewResolver() *Resolver {
	return &Resolver{environ: os.Environ}
}

// Resolve returns the binaries to invoke for a build.
func (r *Resolver) Resolve(bins domain.Binaries, useContainer bool) (domain.Binaries, error) {
	if useContainer {
		return domain.Binaries{HTML: domain.DefaultHTMLBinary, PDF: domain.DefaultPDFBinary}, nil
	}

	env := r.environ()
	var missing []string
	lookup := func(name string) string {
		path, err := shell.LookPath(name, env)
		if err != nil {
			missing = append(missing, name)
			return ""
		}
		return path
	}

	resolved := domain.Binaries{
		HTML: lookup(bins.HTML),
		PDF:  lookup(bins.PDF),
	}
	if len(missing) > 0 {
		err := zerr.Wrap(domain.ErrToolchainMissing, "documentation toolchain not found")
		return domain.Binaries{}, zerr.With(err, "missing", strings.Join(missing, ", "))
	}
	return resolved, nil
}
