// Package cmd assembles the taskdesk command tree.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
	"github.com/thenoetrevino/taskdesk/internal/cli/configcmd"
	"github.com/thenoetrevino/taskdesk/internal/cli/task"
	"github.com/thenoetrevino/taskdesk/internal/cli/user"
	"github.com/thenoetrevino/taskdesk/internal/launcher"
)

// NewRootCmd builds the root command. Without a subcommand it opens the TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskdesk",
		Short: "taskdesk - a terminal task manager",
		Long: `taskdesk keeps a personal task list per user account.

Run without arguments to open the interactive dashboard, or use the
subcommands to script it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.Exit(cli.ExitUsage, err)
	})
	usageArgs(rootCmd)

	return rootCmd
}

// usageArgs makes positional argument errors exit with ExitUsage
func usageArgs(cmd *cobra.Command) {
	if validate := cmd.Args; validate != nil {
		cmd.Args = func(c *cobra.Command, args []string) error {
			if err := validate(c, args); err != nil {
				return cli.Exit(cli.ExitUsage, err)
			}
			return nil
		}
	}
	for _, child := range cmd.Commands() {
		usageArgs(child)
	}
}

// Execute runs the command tree
func Execute() error {
	return NewRootCmd().Execute()
}
