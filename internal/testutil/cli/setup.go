// Package cli provides helpers for command tests. It lives apart from
// testutil so service tests can import testutil without pulling in the app.
package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/taskdesk/internal/app"
	"github.com/thenoetrevino/taskdesk/internal/cli"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/services/auth"
	"github.com/thenoetrevino/taskdesk/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// Prompts are disabled for the duration of the test.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	return SetupCLITestWithConfig(t, config.Default())
}

// SetupCLITestWithConfig is SetupCLITest with a custom configuration
func SetupCLITestWithConfig(t *testing.T, cfg *config.Config) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(database.NewRepository(db), cfg,
		app.WithHasher(auth.NewBcryptHasher(bcrypt.MinCost)))

	interactive := cli.Interactive
	cli.Interactive = func() bool { return false }
	t.Cleanup(func() { cli.Interactive = interactive })

	// The password environment variable would otherwise leak into tests
	t.Setenv(config.EnvPassword, "")

	return db, appInstance
}

// RegisterTestUser creates an account through the auth service
func RegisterTestUser(t *testing.T, testApp *app.App, username, password string) {
	t.Helper()
	if err := testApp.AuthService.Register(context.Background(), username, password); err != nil {
		t.Fatalf("Failed to register %s: %v", username, err)
	}
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, username, title string) int {
	t.Helper()
	return testutil.CreateTestTask(t, db, username, title)
}
