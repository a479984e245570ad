package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task_id>",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed. Completing a finished task again is not an error.

Examples:
  # Mark task 42 as completed
  taskdesk task done 42

  # JSON output for agents
  taskdesk task done 42 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runDone,
	}

	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := parseTaskID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	u, err := cli.Authenticate(ctx, cliInstance, cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	svc := cliInstance.App.TaskService
	task, err := svc.GetTask(ctx, u.Username, taskID)
	if err != nil {
		return formatter.Fail(err)
	}
	wasCompleted := task.Completed

	if err := svc.MarkComplete(ctx, u.Username, taskID); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", taskID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":           true,
			"task_id":           taskID,
			"already_completed": wasCompleted,
		})
	}

	if wasCompleted {
		fmt.Fprintf(os.Stderr, "Task %d was already completed\n", taskID)
		return nil
	}
	fmt.Printf("✓ Task %d completed: %s\n", taskID, task.Title)
	return nil
}
