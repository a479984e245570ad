package task

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage your tasks",
		Long: `Add, list, complete and delete tasks.

Every task command logs in first and acts as that user.`,
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// parseTaskID parses a positional task ID
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, cli.Usagef("invalid task ID: %s", arg)
	}
	return id, nil
}
