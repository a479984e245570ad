package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Long: `Add a pending task for the logged-in user.

Examples:
  # Simple task (human-readable output)
  taskdesk task add --title="Buy milk"

  # JSON output for agents
  taskdesk task add --title="Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(taskdesk task add --title="Buy milk" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	_ = cmd.MarkFlagRequired("title")

	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	title, _ := cmd.Flags().GetString("title")

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	u, err := cli.Authenticate(ctx, cliInstance, cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	task, err := cliInstance.App.TaskService.AddTask(ctx, u.Username, title)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(task)
	}

	fmt.Printf("✓ Task %d created: %s\n", task.ID, task.Title)
	return nil
}
