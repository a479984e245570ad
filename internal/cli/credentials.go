package cli

import (
	"context"
	"os"
	"strings"

	"charm.land/huh/v2"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/user"
)

// Interactive reports whether prompts can be shown. Tests replace it.
var Interactive = func() bool {
	return term.IsTerminal(os.Stdin.Fd())
}

// AddCredentialFlags registers --user and --password on cmd.
// --user defaults to the operating-system user name.
func AddCredentialFlags(cmd *cobra.Command) {
	cmd.Flags().String("user", user.DefaultUsername(), "Username (defaults to the current OS user)")
	cmd.Flags().String("password", "", "Password (or set "+config.EnvPassword+"; prompted when omitted)")
}

// Credentials resolves the username and password for cmd.
// The password comes from --password, then the environment, then a masked
// prompt when stdin is a terminal.
func Credentials(cmd *cobra.Command) (username, password string, err error) {
	username, _ = cmd.Flags().GetString("user")
	username = strings.TrimSpace(username)
	if username == "" {
		return "", "", Usagef("--user is required")
	}

	password, _ = cmd.Flags().GetString("password")
	if password != "" {
		return username, password, nil
	}
	if password = os.Getenv(config.EnvPassword); password != "" {
		return username, password, nil
	}
	if !Interactive() {
		return "", "", ErrPasswordRequired
	}

	password, err = PromptPassword("Password for " + username)
	if err != nil {
		return "", "", err
	}
	if password == "" {
		return "", "", models.ErrEmptyPassword
	}
	return username, password, nil
}

// Authenticate resolves the credentials of cmd and logs in
func Authenticate(ctx context.Context, c *CLI, cmd *cobra.Command) (*models.User, error) {
	username, password, err := Credentials(cmd)
	if err != nil {
		return nil, err
	}
	return c.App.AuthService.Login(ctx, username, password)
}

// PromptPassword asks for a password with masked input
func PromptPassword(title string) (string, error) {
	var password string
	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Run()
	return password, err
}

// Confirm asks a yes/no question, defaulting to no
func Confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	return confirmed, err
}
