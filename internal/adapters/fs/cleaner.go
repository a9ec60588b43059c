package fs

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/docbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Cleaner = (*Cleaner)(nil)

// Cleaner removes build-artifact directories selected by glob patterns.
type Cleaner struct {
	remove func(string) error
}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{remove: os.RemoveAll}
}

// Clean removes every path matching one of patterns and returns them sorted.
// Removal failures are ignored. A malformed pattern is an error and nothing is removed.
func (c *Cleaner) Clean(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var matches []string
	for _, pattern := range patterns {
		found, err := filepath.Glob(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrCleanFailed, err.Error()), "pattern", pattern)
		}
		for _, m := range found {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			matches = append(matches, m)
		}
	}
	sort.Strings(matches)

	for _, m := range matches {
		_ = c.remove(m)
	}
	return matches, nil
}
