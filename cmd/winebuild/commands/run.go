package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/winebuild/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [steps...]",
		Short: "Run the build pipeline",
		Long: "Run the build pipeline: reset the workspace, then execute the " +
			"collaborator scripts in dependency order. Naming steps restricts " +
			"the run to those steps and their dependencies.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parallelism, _ := cmd.Flags().GetInt("parallelism")

			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath:  c.configPath(cmd),
				Targets:     args,
				Parallelism: parallelism,
			})
		},
	}

	cmd.Flags().IntP("parallelism", "p", 1, "Maximum number of steps running at once")

	return cmd
}
