package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/winebuild/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the build output directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, _ := cmd.Flags().GetBool("cache")

			return c.app.Clean(cmd.Context(), c.configPath(cmd), app.CleanOptions{
				Cache: cache,
			})
		},
	}

	cmd.Flags().Bool("cache", false, "Also remove the package download cache")

	return cmd
}
