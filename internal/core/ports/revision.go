package ports

import (
	"context"

	"go.trai.ch/docbuild/internal/core/domain"
)

// RevisionReader retrieves the short revision identifier of the source tree.
//
//go:generate mockgen -source=revision.go -destination=mocks/mock_revision.go -package=mocks
type RevisionReader interface {
	// Read returns the trimmed short revision, or an empty string when it cannot be determined.
	Read(ctx context.Context, source domain.RevisionSource) string
}
