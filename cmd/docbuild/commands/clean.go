package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/docbuild/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build-artifact directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			configPath, _ := cmd.Flags().GetString("config")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath: configPath,
				All:        all,
			})
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Also remove the documentation output directory")

	return cmd
}
