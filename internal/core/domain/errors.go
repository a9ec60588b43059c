package domain

import "go.trai.ch/zerr"

var (
	// ErrToolchainMissing is returned when a rendering binary cannot be found on PATH.
	ErrToolchainMissing = zerr.New("documentation toolchain not found")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrEmptyCommand is returned when a command descriptor has no program name.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrContainerBuildFailed is returned when the container image cannot be built.
	ErrContainerBuildFailed = zerr.New("failed to build container image")

	// ErrOutputDirResetFailed is returned when the output directory cannot be recreated.
	ErrOutputDirResetFailed = zerr.New("failed to reset output directory")

	// ErrBuildFailed is returned when the documentation pipeline fails.
	ErrBuildFailed = zerr.New("documentation build failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a required configuration value is empty or unknown.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrCleanFailed is returned when a clean pattern is malformed.
	ErrCleanFailed = zerr.New("failed to clean build artifacts")

	// ErrInventoryFailed is returned when the output directory cannot be inspected.
	ErrInventoryFailed = zerr.New("failed to inventory artifacts")

	// ErrFileHashFailed is returned when hashing an artifact fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
