package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List your tasks in the order they were added.

At most tasks.limit tasks are shown (100 by default).`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	u, err := cli.Authenticate(ctx, cliInstance, cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	tasks, err := cliInstance.App.TaskService.FetchTasks(ctx, u.Username)
	if err != nil {
		return formatter.Fail(err)
	}
	summary, err := cliInstance.App.TaskService.CountTasks(ctx, u.Username)
	if err != nil {
		return formatter.Fail(err)
	}

	// Output in appropriate format
	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":   true,
			"tasks":     tasks,
			"total":     summary.Total,
			"completed": summary.Completed,
			"truncated": summary.Truncated(),
		})
	}

	// Human-readable output
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("%d tasks, %d completed, %d pending:\n\n", summary.Total, summary.Completed, summary.Pending())
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "✓"
		}
		fmt.Printf("  [%s] %d. %s\n", mark, t.ID, t.Title)
	}
	if summary.Truncated() {
		fmt.Printf("\nShowing the first %d of %d tasks\n", summary.Shown, summary.Total)
	}

	return nil
}
