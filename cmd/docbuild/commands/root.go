// Package commands implements the CLI commands for docbuild.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/docbuild/internal/adapters/detector"
	"go.trai.ch/docbuild/internal/app"
	"go.trai.ch/docbuild/internal/build"
	"go.trai.ch/docbuild/internal/core/domain"
)

// CLI represents the command line interface for docbuild.
type CLI struct {
	app     Application
	logs    LogFormatter
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// LogFormatter switches the log output between JSON and human-readable lines.
type LogFormatter interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. logs may be nil.
func New(a Application, logs LogFormatter) *CLI {
	c := &CLI{
		app:  a,
		logs: logs,
	}

	rootCmd := &cobra.Command{
		Use:   "docbuild [--docker]",
		Short: "Build the HTML, PDF and manpage documentation",
		Long: "Regenerates the documentation set into a freshly cleaned output directory,\n" +
			"stamped with the current revision, followed by the library reference.",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		Version:            build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			format, _ := cmd.Flags().GetString("log-format")
			c.configureLogs(format)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			docker, _ := cmd.Flags().GetBool("docker")
			configPath, _ := cmd.Flags().GetString("config")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				ConfigPath: configPath,
				Container:  docker,
			})
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().Bool("docker", false, "Build the container image and render inside it")
	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty, or json")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogs(format string) {
	if c.logs == nil {
		return
	}
	mode := detector.ResolveMode(detector.DetectEnvironment(), format)
	c.logs.SetJSON(mode == detector.ModeJSON)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
