// Package config provides the configuration loader for docbuild.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"

	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/docbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only schema version understood by the loader.
const SupportedVersion = 1

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path and applies it over the defaults.
// A missing file yields the defaults.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		l.logger.Warn("configuration file " + path + " is empty, using defaults")
		return cfg, nil
	}

	var file Docfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	if file.Version != 0 && file.Version != SupportedVersion {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unsupported configuration version"), "path", path)
		return nil, zerr.With(err, "version", file.Version)
	}

	apply(cfg, &file)

	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// apply copies every field present in file onto cfg.
func apply(cfg *domain.Config, file *Docfile) {
	setString(&cfg.OutputDir, file.Output)
	setString(&cfg.Document, file.Document)
	setString(&cfg.ManpageDocument, file.Manpage)
	setString(&cfg.ManpageSubdir, file.ManpageDir)
	setString(&cfg.DiagramExtension, file.DiagramExtension)

	if b := file.Binaries; b != nil {
		setString(&cfg.Binaries.HTML, b.HTML)
		setString(&cfg.Binaries.PDF, b.PDF)
	}

	if c := file.Container; c != nil {
		setString(&cfg.Container.Engine, c.Engine)
		setString(&cfg.Container.File, c.File)
		setString(&cfg.Container.Mount, c.Mount)
		setString(&cfg.Container.QuirkDir, c.QuirkDir)
	}

	if r := file.Revision; r != nil && r.Source != nil {
		cfg.RevisionSource = domain.RevisionSource(*r.Source)
	}

	if lib := file.Library; lib != nil {
		setString(&cfg.Library.Dir, lib.Dir)
		if lib.Command != nil {
			cfg.Library.Command = slices.Clone(lib.Command)
		}
		if lib.Targets != nil {
			cfg.Library.Targets = slices.Clone(lib.Targets)
		}
		setBool(&cfg.Library.Diagnostics, lib.Diagnostics)
		setBool(&cfg.Library.Warn, lib.Warn)
	}

	setBool(&cfg.Parallel, file.Parallel)

	if file.Clean != nil {
		cfg.CleanPatterns = slices.Clone(file.Clean)
	}
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst, src *bool) {
	if src != nil {
		*dst = *src
	}
}
