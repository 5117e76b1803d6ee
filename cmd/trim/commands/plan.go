package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/trim/internal/app"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Configure every module and print the pruning plan",
		Long: "Plan runs the full configuration pass in memory and prints what " +
			"each module's task graph would look like, without persisting anything.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := c.app.Plan(cmd.Context(), c.options(cmd))
			if err != nil {
				return err
			}
			return app.RenderPlan(cmd.OutOrStdout(), reports)
		},
	}
}
