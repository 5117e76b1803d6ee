package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newNamespaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "namespace <module-path>",
		Short: "Print the namespace derived for a module path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			namespace, err := c.app.Namespace(configPath, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), namespace)
			return err
		},
	}
}
