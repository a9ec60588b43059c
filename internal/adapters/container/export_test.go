package container

import "go.trai.ch/docbuild/internal/core/ports"

// NewBuilderWithIdentity creates a Builder with a fixed working directory and user.
func NewBuilderWithIdentity(runner ports.CommandRunner, logger ports.Logger, cwd string, uid, gid int) *Builder {
	b := NewBuilder(runner, logger)
	b.id = identity{
		getwd:  func() (string, error) { return cwd, nil },
		getuid: func() int { return uid },
		getgid: func() int { return gid },
	}
	return b
}
