package user

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
)

// RegisterCmd returns the user register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long: `Create an account. Usernames are unique.

Examples:
  # Prompt for the password
  taskdesk user register --user alice

  # Non-interactive
  TASKDESK_PASSWORD=secret taskdesk user register --user alice --json
`,
		Args: cobra.NoArgs,
		RunE: runRegister,
	}

	cli.AddCredentialFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	username, password, err := cli.Credentials(cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := cliInstance.App.AuthService.Register(ctx, username, password); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"username": username,
		})
	}

	fmt.Printf("✓ User %s registered\n", username)
	return nil
}
