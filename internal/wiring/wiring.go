// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/docbuild/internal/adapters/config"
	_ "go.trai.ch/docbuild/internal/adapters/container"
	_ "go.trai.ch/docbuild/internal/adapters/fs"
	_ "go.trai.ch/docbuild/internal/adapters/logger"
	_ "go.trai.ch/docbuild/internal/adapters/revision"
	_ "go.trai.ch/docbuild/internal/adapters/shell"
	_ "go.trai.ch/docbuild/internal/adapters/telemetry"
	_ "go.trai.ch/docbuild/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/docbuild/internal/app"
	_ "go.trai.ch/docbuild/internal/engine/pipeline"
)
