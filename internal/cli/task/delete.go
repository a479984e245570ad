package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task_id>",
		Short: "Delete a task",
		Long:  "Delete a task by ID (asks for confirmation on a terminal unless --force, --json or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

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

	// Ask for confirmation unless forced or scripted
	if !force && !formatter.Quiet && !formatter.JSON && cli.Interactive() {
		confirmed, err := cli.Confirm(fmt.Sprintf("Delete task #%d: '%s'?", taskID, task.Title))
		if err != nil {
			return formatter.Fail(err)
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := svc.DeleteTask(ctx, u.Username, taskID); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task_id": taskID,
		})
	}

	fmt.Printf("✓ Task %d deleted successfully\n", taskID)
	return nil
}
