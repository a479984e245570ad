package tui

import (
	"context"
	"database/sql"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/taskdesk/internal/app"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/services/auth"
	"github.com/thenoetrevino/taskdesk/internal/testutil"
)

// setupTestModel creates a sized model over an in-memory store.
// Passwords use the digest hasher to keep the tests fast.
func setupTestModel(t *testing.T) (Model, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	cfg := config.Default()
	application := app.New(database.NewRepository(db), cfg, app.WithHasher(auth.DigestHasher{}))

	m := InitialModel(context.Background(), application, cfg)
	m.Init()
	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, db
}

// update sends msg through Update and returns the new model
func update(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// press sends one key. Named keys use their bubbletea codes, anything else
// is typed as text.
func press(m Model, key string) Model {
	return update(m, keyMsg(key))
}

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "ctrl+l":
		return tea.KeyPressMsg(tea.Key{Code: 'l', Mod: tea.ModCtrl})
	case "ctrl+r":
		return tea.KeyPressMsg(tea.Key{Code: 'r', Mod: tea.ModCtrl})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: key})
}

// typeText types s one rune at a time into the focused input
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = update(m, tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)}))
	}
	return m
}

// dismiss clears a visible notification the way a user would
func dismiss(m Model) Model {
	if m.NotificationState.HasAny() {
		return press(m, "x")
	}
	return m
}

// notification returns the visible message, or ""
func notification(m Model) string {
	n, ok := m.NotificationState.Current()
	if !ok {
		return ""
	}
	return n.Message
}

// render returns the view content without escape sequences
func render(m Model) string {
	return ansi.Strip(m.View().Content)
}

// registerAndLogin drives the UI from the registration screen to the dashboard
func registerAndLogin(t *testing.T, m Model, username, password string) Model {
	t.Helper()
	m.Registration.Username.SetValue(username)
	m.Registration.Password.SetValue(password)
	m = dismiss(press(m, "enter"))

	m.Login.Password.SetValue(password)
	m = dismiss(press(m, "enter"))
	if m.Session == nil {
		t.Fatalf("login as %q failed: %q", username, notification(m))
	}
	return m
}
