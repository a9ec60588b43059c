package app_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/docbuild/internal/adapters/telemetry"
	"go.trai.ch/docbuild/internal/app"
	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/docbuild/internal/core/ports/mocks"
	"go.trai.ch/docbuild/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

const configPath = "docbuild.yaml"

type fixture struct {
	loader     *mocks.MockConfigLoader
	logger     *mocks.MockLogger
	outputDir  *mocks.MockOutputDirManager
	toolchain  *mocks.MockToolchainResolver
	containers *mocks.MockContainerBuilder
	revision   *mocks.MockRevisionReader
	inventory  *mocks.MockArtifactInventory
	cleaner    *mocks.MockCleaner
	runner     *mocks.MockCommandRunner

	mu   sync.Mutex
	cmds []domain.Command

	app *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:     mocks.NewMockConfigLoader(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
		outputDir:  mocks.NewMockOutputDirManager(ctrl),
		toolchain:  mocks.NewMockToolchainResolver(ctrl),
		containers: mocks.NewMockContainerBuilder(ctrl),
		revision:   mocks.NewMockRevisionReader(ctrl),
		inventory:  mocks.NewMockArtifactInventory(ctrl),
		cleaner:    mocks.NewMockCleaner(ctrl),
		runner:     mocks.NewMockCommandRunner(ctrl),
	}

	f.app = app.New(app.Deps{
		ConfigLoader: f.loader,
		Logger:       f.logger,
		OutputDir:    f.outputDir,
		Toolchain:    f.toolchain,
		Containers:   f.containers,
		Revision:     f.revision,
		Inventory:    f.inventory,
		Cleaner:      f.cleaner,
		Pipeline:     pipeline.NewPipeline(f.runner, telemetry.NewNoOpTracer()),
		Library:      pipeline.NewLibraryDocs(f.runner, f.logger),
	}).WithoutTracing()
	return f
}

// recordCommands makes the runner succeed for every command and remembers it.
func (f *fixture) recordCommands(fail map[string]error) {
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, cmd domain.Command) (string, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.cmds = append(f.cmds, cmd)
			return "", fail[cmd.Description]
		})
}

func (f *fixture) commands() []domain.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Command(nil), f.cmds...)
}

func completeArtifacts() []domain.Artifact {
	return []domain.Artifact{
		{Path: "README.html", Size: 10, Digest: "0000000000000001"},
		{Path: "README.pdf", Size: 20, Digest: "0000000000000002"},
		{Path: "man/man1/docbuild.1", Size: 30, Digest: "0000000000000003"},
	}
}

func TestApp_Build_Host(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()

	f.loader.EXPECT().Load(configPath).Return(cfg, nil)
	gomock.InOrder(
		f.outputDir.EXPECT().Reset(cfg.OutputDir).Return(nil),
		f.toolchain.EXPECT().Resolve(cfg.Binaries, false).
			Return(domain.Binaries{HTML: "/usr/bin/asciidoctor", PDF: "/usr/bin/asciidoctor-pdf"}, nil),
		f.revision.EXPECT().Read(gomock.Any(), domain.RevisionSourceGit).Return("3f2a9c1"),
		f.inventory.EXPECT().Collect(cfg.OutputDir).Return(completeArtifacts(), nil),
	)
	f.recordCommands(nil)
	f.logger.EXPECT().Info("library docs: 2/2 targets succeeded")
	f.logger.EXPECT().Info(gomock.Any()).Times(3)

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{ConfigPath: configPath}))

	cmds := f.commands()
	require.Len(t, cmds, 5)
	assert.Equal(t, "/usr/bin/asciidoctor", cmds[0].Name)
	assert.Equal(t, "/usr/bin/asciidoctor-pdf", cmds[1].Name)
	assert.Equal(t, "/usr/bin/asciidoctor", cmds[2].Name)
	for _, cmd := range cmds[:3] {
		assert.Contains(t, cmd.Args, "commit-hash=3f2a9c1")
	}
	assert.Equal(t, "cargo", cmds[3].Name)
	assert.Equal(t, "cargo", cmds[4].Name)
}

func TestApp_Build_ToolchainMissingRunsNothing(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()

	f.loader.EXPECT().Load(configPath).Return(cfg, nil)
	f.outputDir.EXPECT().Reset(cfg.OutputDir).Return(nil)
	f.toolchain.EXPECT().Resolve(cfg.Binaries, false).Return(domain.Binaries{}, domain.ErrToolchainMissing)

	err := f.app.Build(context.Background(), app.BuildOptions{ConfigPath: configPath})
	require.ErrorIs(t, err, domain.ErrToolchainMissing)
	assert.Empty(t, f.commands())
}

func TestApp_Build_ContainerWrapsOnlyPipelineCommands(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()
	wrapper := []string{"docker", "run", "--rm", "sha256:0123abcd"}

	f.loader.EXPECT().Load(configPath).Return(cfg, nil)
	f.outputDir.EXPECT().Reset(cfg.OutputDir).Return(nil)
	f.toolchain.EXPECT().Resolve(cfg.Binaries, true).
		Return(domain.Binaries{HTML: domain.DefaultHTMLBinary, PDF: domain.DefaultPDFBinary}, nil)
	f.containers.EXPECT().Build(gomock.Any(), cfg.Container).Return("sha256:0123abcd", nil)
	f.containers.EXPECT().Wrapper(cfg.Container, "sha256:0123abcd").Return(wrapper, nil)
	f.containers.EXPECT().RemoveQuirkDir(cfg.Container)
	f.revision.EXPECT().Read(gomock.Any(), domain.RevisionSourceGit).Return("3f2a9c1")
	f.inventory.EXPECT().Collect(cfg.OutputDir).Return(completeArtifacts(), nil)
	f.recordCommands(nil)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{ConfigPath: configPath, Container: true}))

	cmds := f.commands()
	require.Len(t, cmds, 5)
	for _, cmd := range cmds[:3] {
		assert.Equal(t, wrapper, cmd.Argv()[:len(wrapper)], cmd.Description)
		assert.True(t, strings.HasPrefix(cmd.Argv()[len(wrapper)], "asciidoctor"))
	}
	for _, cmd := range cmds[3:] {
		assert.Equal(t, "cargo", cmd.Name, cmd.Description)
	}
}

func TestApp_Build_ContainerFailureStillRemovesQuirkDir(t *testing.T) {
	t.Run("image build fails", func(t *testing.T) {
		f := newFixture(t)
		cfg := domain.DefaultConfig()

		f.loader.EXPECT().Load(configPath).Return(cfg, nil)
		f.outputDir.EXPECT().Reset(cfg.OutputDir).Return(nil)
		f.toolchain.EXPECT().Resolve(cfg.Binaries, true).Return(cfg.Binaries, nil)
		f.containers.EXPECT().Build(gomock.Any(), cfg.Container).Return("", domain.ErrContainerBuildFailed)
		f.containers.EXPECT().RemoveQuirkDir(cfg.Container)

		err := f.app.Build(context.Background(), app.BuildOptions{ConfigPath: configPath, Container: true})
		require.ErrorIs(t, err, domain.ErrContainerBuildFailed)
		assert.Empty(t, f.commands())
	})

	t.Run("pipeline fails", func(t *testing.T) {
		f := newFixture(t)
		cfg := domain.DefaultConfig()

		f.loader.EXPECT().Load(configPath).Return(cfg, nil)
		f.outputDir.EXPECT().Reset(cfg.OutputDir).Return(nil)
		f.toolchain.EXPECT().Resolve(cfg.Binaries, true).Return(cfg.Binaries, nil)
		f.containers.EXPECT().Build(gomock.Any(), cfg.Container).Return("img", nil)
		f.containers.EXPECT().Wrapper(cfg.Container, "img").Return([]string{"docker", "run", "img"}, nil)
		f.containers.EXPECT().RemoveQuirkDir(cfg.Container)
		f.revision.EXPECT().Read(gomock.Any(), domain.RevisionSourceGit).Return("")
		f.recordCommands(map[string]error{
			pipeline.DescribePDF: errors.Join(domain.ErrCommandFailed, errors.New("exit status 1")),
		})

		err := f.app.Build(context.Background(), app.BuildOptions{ConfigPath: configPath, Container: true})
		require.ErrorIs(t, err, domain.ErrBuildFailed)
		require.ErrorIs(t, err, domain.ErrCommandFailed)

		cmds := f.commands()
		require.Len(t, cmds, 2)
		assert.Equal(t, pipeline.DescribeHTML, cmds[0].Description)
		assert.Equal(t, pipeline.DescribePDF, cmds[1].Description)
	})
}

func TestApp_Build_LibraryFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()

	f.loader.EXPECT().Load(configPath).Return(cfg, nil)
	f.outputDir.EXPECT().Reset(cfg.OutputDir).Return(nil)
	f.toolchain.EXPECT().Resolve(cfg.Binaries, false).Return(cfg.Binaries, nil)
	f.revision.EXPECT().Read(gomock.Any(), domain.RevisionSourceGit).Return("3f2a9c1")
	f.inventory.EXPECT().Collect(cfg.OutputDir).Return(completeArtifacts(), nil)
	f.recordCommands(map[string]error{
		"Generating library documentation (x86_64-pc-windows-gnu)": errors.New("exit status 101"),
	})
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{ConfigPath: configPath}))
	assert.Len(t, f.commands(), 5)
}

func TestApp_Build_LibrarySummaryWithoutWarnings(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()
	cfg.Library.Warn = false

	f.loader.EXPECT().Load(configPath).Return(cfg, nil)
	f.outputDir.EXPECT().Reset(cfg.OutputDir).Return(nil)
	f.toolchain.EXPECT().Resolve(cfg.Binaries, false).Return(cfg.Binaries, nil)
	f.revision.EXPECT().Read(gomock.Any(), domain.RevisionSourceGit).Return("3f2a9c1")
	f.inventory.EXPECT().Collect(cfg.OutputDir).Return(completeArtifacts(), nil)
	f.recordCommands(map[string]error{
		"Generating library documentation (x86_64-unknown-linux-gnu)": errors.New("exit status 101"),
	})
	f.logger.EXPECT().Info("library docs: 1/2 targets succeeded")
	f.logger.EXPECT().Info(gomock.Any()).Times(3)

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{ConfigPath: configPath}))
}

func TestApp_Build_MissingArtifactsWarn(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()
	cfg.Library.Targets = nil

	f.loader.EXPECT().Load(configPath).Return(cfg, nil)
	f.outputDir.EXPECT().Reset(cfg.OutputDir).Return(nil)
	f.toolchain.EXPECT().Resolve(cfg.Binaries, false).Return(cfg.Binaries, nil)
	f.revision.EXPECT().Read(gomock.Any(), domain.RevisionSourceGit).Return("")
	f.inventory.EXPECT().Collect(cfg.OutputDir).Return([]domain.Artifact{
		{Path: "README.html", Size: 1, Digest: "0000000000000001"},
	}, nil)
	f.recordCommands(nil)
	f.logger.EXPECT().Info(gomock.Any()).Times(1)

	var warnings []string
	f.logger.EXPECT().Warn(gomock.Any()).Times(2).Do(func(msg string) {
		warnings = append(warnings, msg)
	})

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{ConfigPath: configPath}))
	assert.Contains(t, warnings[0], "README.pdf")
	assert.Contains(t, warnings[1], "no manpage")
}

func TestApp_Build_ResetFailure(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()

	f.loader.EXPECT().Load(configPath).Return(cfg, nil)
	f.outputDir.EXPECT().Reset(cfg.OutputDir).Return(domain.ErrOutputDirResetFailed)

	err := f.app.Build(context.Background(), app.BuildOptions{ConfigPath: configPath})
	require.ErrorIs(t, err, domain.ErrOutputDirResetFailed)
}

func TestApp_Build_ConfigFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(configPath).Return(nil, domain.ErrConfigParseFailed)

	err := f.app.Build(context.Background(), app.BuildOptions{ConfigPath: configPath})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Clean(t *testing.T) {
	tests := []struct {
		name    string
		all     bool
		removed []string
		logs    int
	}{
		{name: "build directories", all: false, removed: []string{"app/bin", "app/obj"}, logs: 2},
		{name: "nothing matched", all: false, removed: nil, logs: 1},
		{name: "including output", all: true, removed: []string{"documentation-build"}, logs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			cfg := domain.DefaultConfig()

			want := domain.DefaultCleanPatterns()
			if tt.all {
				want = append(want, cfg.OutputDir)
			}

			f.loader.EXPECT().Load(configPath).Return(cfg, nil)
			f.cleaner.EXPECT().Clean(want).Return(tt.removed, nil)
			f.logger.EXPECT().Info(gomock.Any()).Times(tt.logs)

			require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{ConfigPath: configPath, All: tt.all}))
			assert.Equal(t, domain.DefaultCleanPatterns(), cfg.CleanPatterns)
		})
	}
}

func TestApp_Clean_Failure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(configPath).Return(domain.DefaultConfig(), nil)
	f.cleaner.EXPECT().Clean(gomock.Any()).Return(nil, domain.ErrCleanFailed)

	err := f.app.Clean(context.Background(), app.CleanOptions{ConfigPath: configPath})
	require.ErrorIs(t, err, domain.ErrCleanFailed)
}

func TestExpectedArtifacts(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Document = "docs/Guide.adoc"
	assert.Equal(t, []string{"Guide.html", "Guide.pdf"}, app.ExpectedArtifacts(cfg))
}
