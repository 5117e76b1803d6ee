package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/trim/internal/app"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Configure every module and persist the results",
		Long: "Apply runs the configuration pass and stores the per-module " +
			"reports, so an unchanged workspace shows up as unchanged next time.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := c.app.Apply(cmd.Context(), c.options(cmd))
			if err != nil {
				return err
			}
			return app.RenderPlan(cmd.OutOrStdout(), reports)
		},
	}
}
