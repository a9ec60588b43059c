// Package revision reads the short revision identifier of the source tree.
package revision

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/docbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// ShortHashLength is the abbreviation used for the revision stamp.
const ShortHashLength = 7

// Reader implements ports.RevisionReader.
type Reader struct {
	runner ports.CommandRunner
	logger ports.Logger
	dir    string
}

// NewReader creates a Reader for the repository containing the working directory.
func NewReader(runner ports.CommandRunner, logger ports.Logger) *Reader {
	return &Reader{runner: runner, logger: logger, dir: "."}
}

// Read returns the short revision, or "" with a warning when it cannot be determined.
func (r *Reader) Read(ctx context.Context, source domain.RevisionSource) string {
	var (
		stamp string
		err   error
	)
	switch source {
	case domain.RevisionSourceRepository:
		stamp, err = r.fromRepository()
	default:
		stamp, err = r.fromGit(ctx)
	}

	if err != nil {
		r.logger.Warn(fmt.Sprintf("revision unavailable, documents are stamped without it: %v", err))
		return ""
	}
	return stamp
}

func (r *Reader) fromGit(ctx context.Context) (string, error) {
	out, err := r.runner.Run(ctx, domain.Command{
		Description: "Fetching revision",
		Name:        "git",
		Args:        []string{"rev-parse", "--short", "HEAD"},
		Dir:         r.dir,
		Capture:     true,
		QuietStderr: true,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (r *Reader) fromRepository() (string, error) {
	repo, err := git.PlainOpenWithOptions(r.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", zerr.Wrap(err, "failed to open repository")
	}

	head, err := repo.Head()
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve HEAD")
	}

	hash := head.Hash().String()
	if len(hash) > ShortHashLength {
		hash = hash[:ShortHashLength]
	}
	return hash, nil
}
