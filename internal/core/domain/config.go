package domain

import "go.trai.ch/zerr"

// RevisionSource selects how the revision stamp is obtained.
type RevisionSource string

const (
	// RevisionSourceGit runs the git command line tool.
	RevisionSourceGit RevisionSource = "git"
	// RevisionSourceRepository reads the repository in-process.
	RevisionSourceRepository RevisionSource = "repository"
)

// Binaries names the rendering programs used in host mode.
type Binaries struct {
	HTML string
	PDF  string
}

// ContainerConfig configures container mode.
type ContainerConfig struct {
	Engine   string
	File     string
	Mount    string
	QuirkDir string
}

// LibraryConfig configures the companion library documentation step.
type LibraryConfig struct {
	Dir     string
	Command []string
	Targets []string
	// Diagnostics passes the generator's stderr through instead of discarding it.
	Diagnostics bool
	// Warn logs a warning for every target that failed.
	Warn bool
}

// Config is the resolved configuration for a build.
type Config struct {
	OutputDir        string
	Document         string
	ManpageDocument  string
	ManpageSubdir    string
	DiagramExtension string
	Binaries         Binaries
	Container        ContainerConfig
	RevisionSource   RevisionSource
	Library          LibraryConfig
	Parallel         bool
	CleanPatterns    []string
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:        DefaultOutputDir,
		Document:         DefaultDocument,
		ManpageDocument:  DefaultManpageDocument,
		ManpageSubdir:    ManpageSubdir(),
		DiagramExtension: DefaultDiagramExtension,
		Binaries: Binaries{
			HTML: DefaultHTMLBinary,
			PDF:  DefaultPDFBinary,
		},
		Container: ContainerConfig{
			Engine:   DefaultContainerEngine,
			File:     DefaultContainerFile,
			Mount:    DefaultContainerMount,
			QuirkDir: DefaultQuirkDir,
		},
		RevisionSource: RevisionSourceGit,
		Library: LibraryConfig{
			Dir:     DefaultLibraryDir,
			Command: DefaultLibraryCommand(),
			Targets: DefaultLibraryTargets(),
			Warn:    true,
		},
		CleanPatterns: DefaultCleanPatterns(),
	}
}

// Validate checks that every value required by the pipeline is present.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"output", c.OutputDir},
		{"document", c.Document},
		{"manpage", c.ManpageDocument},
		{"manpage_dir", c.ManpageSubdir},
		{"binaries.html", c.Binaries.HTML},
		{"binaries.pdf", c.Binaries.PDF},
		{"container.engine", c.Container.Engine},
		{"container.file", c.Container.File},
		{"container.mount", c.Container.Mount},
		{"container.quirk", c.Container.QuirkDir},
		{"revision.source", string(c.RevisionSource)},
		{"diagram_extension", c.DiagramExtension},
	}
	for _, field := range required {
		if field.value == "" {
			return zerr.With(zerr.Wrap(ErrInvalidConfig, "missing required value"), "field", field.key)
		}
	}

	switch c.RevisionSource {
	case RevisionSourceGit, RevisionSourceRepository:
	default:
		err := zerr.With(zerr.Wrap(ErrInvalidConfig, "unknown revision source"), "field", "revision.source")
		return zerr.With(err, "value", string(c.RevisionSource))
	}

	if len(c.Library.Targets) > 0 && len(c.Library.Command) == 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "library targets require a command"), "field", "library.command")
	}

	return nil
}
