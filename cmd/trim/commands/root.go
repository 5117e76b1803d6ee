// Package commands implements the CLI commands for trim.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/trim/internal/adapters/config"
	"go.trai.ch/trim/internal/app"
	"go.trai.ch/trim/internal/build"
)

// CLI represents the command line interface for trim.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "trim",
		Short:         "Dev-mode task-graph configurator for multi-module builds",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultManifest, "Path to the workspace manifest")
	rootCmd.PersistentFlags().Bool("debug-only", false, "Restrict the build to the active variant (overrides manifest)")
	rootCmd.PersistentFlags().Bool("enable-ios", false, "Keep iOS tasks runnable (overrides manifest)")
	rootCmd.PersistentFlags().Bool("sync", false, "Treat this invocation as an IDE sync session (never mutates the graph)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newNamespaceCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// options collects the configuration-pass options from the invoked
// command's flag set. The mode overrides stay nil unless the user set the
// corresponding flag, so the manifest values keep applying by default.
func (c *CLI) options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()

	opts := app.Options{}
	opts.ConfigPath, _ = flags.GetString("config")
	opts.Sync, _ = flags.GetBool("sync")

	if flags.Changed("debug-only") {
		v, _ := flags.GetBool("debug-only")
		opts.DebugOnly = &v
	}
	if flags.Changed("enable-ios") {
		v, _ := flags.GetBool("enable-ios")
		opts.EnableIOS = &v
	}

	return opts
}
