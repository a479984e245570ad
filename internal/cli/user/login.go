package user

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
)

// LoginCmd returns the user login subcommand
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check a username and password",
		Long: `Check a username and password without changing anything.

Exits with status 6 when the credentials are rejected, so scripts can test
them before running task commands.`,
		Args: cobra.NoArgs,
		RunE: runLogin,
	}

	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
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

	summary, err := cliInstance.App.TaskService.CountTasks(ctx, u.Username)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", u.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"user_id":  u.ID,
			"username": u.Username,
			"pending":  summary.Pending(),
		})
	}

	fmt.Printf("✓ Logged in as %s (%d pending tasks)\n", u.Username, summary.Pending())
	return nil
}
