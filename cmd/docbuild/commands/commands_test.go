package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/docbuild/cmd/docbuild/commands"
	"go.trai.ch/docbuild/internal/app"
	"go.trai.ch/docbuild/internal/build"
	"go.trai.ch/docbuild/internal/core/domain"
)

type mockApp struct {
	buildFunc func(ctx context.Context, opts app.BuildOptions) error
	cleanFunc func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

type recordingFormatter struct {
	calls []bool
}

func (r *recordingFormatter) SetJSON(enable bool) {
	r.calls = append(r.calls, enable)
}

func TestCommands_Build(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantContainer bool
		wantConfig    string
	}{
		{name: "no arguments", args: nil, wantContainer: false, wantConfig: domain.ConfigFileName},
		{name: "docker flag", args: []string{"--docker"}, wantContainer: true, wantConfig: domain.ConfigFileName},
		{name: "positional argument ignored", args: []string{"docker"}, wantContainer: false, wantConfig: domain.ConfigFileName},
		{name: "unknown flag ignored", args: []string{"--pdf-only"}, wantContainer: false, wantConfig: domain.ConfigFileName},
		{name: "config path", args: []string{"-c", "docs.yaml", "--docker"}, wantContainer: true, wantConfig: "docs.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.BuildOptions
			called := false

			mock := &mockApp{
				buildFunc: func(_ context.Context, opts app.BuildOptions) error {
					captured = opts
					called = true
					return nil
				},
			}

			cli := commands.New(mock, nil)
			cli.SetArgs(tt.args)
			cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

			require.NoError(t, cli.Execute(context.Background()))
			assert.True(t, called)
			assert.Equal(t, tt.wantContainer, captured.Container)
			assert.Equal(t, tt.wantConfig, captured.ConfigPath)
		})
	}
}

func TestCommands_Build_Error(t *testing.T) {
	mock := &mockApp{
		buildFunc: func(_ context.Context, _ app.BuildOptions) error {
			return errors.New("simulated error")
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs(nil)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_Clean(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		var captured app.CleanOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				panic("should not be called")
			},
			cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"clean"})
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.CleanOptions{ConfigPath: domain.ConfigFileName}, captured)
	})

	t.Run("all with config", func(t *testing.T) {
		var captured app.CleanOptions
		mock := &mockApp{
			cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"clean", "--all", "--config", "docs.yaml"})
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.CleanOptions{ConfigPath: "docs.yaml", All: true}, captured)
	})
}

func TestCommands_LogFormat(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []bool
	}{
		{name: "json", args: []string{"--log-format", "json"}, want: []bool{true}},
		{name: "pretty", args: []string{"--log-format", "pretty"}, want: []bool{false}},
		{name: "subcommand", args: []string{"clean", "--log-format=json"}, want: []bool{true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &recordingFormatter{}
			cli := commands.New(&mockApp{}, formatter)
			cli.SetArgs(tt.args)
			cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.want, formatter.calls)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "docbuild version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Commit)
}
