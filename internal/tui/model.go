// Package tui implements the interactive terminal front end: registration,
// login and the task dashboard as one screen-state machine.
package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/app"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"github.com/thenoetrevino/taskdesk/internal/services/auth"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
	"github.com/thenoetrevino/taskdesk/internal/tui/theme"
	"github.com/thenoetrevino/taskdesk/internal/user"
)

// Model represents the application state for the TUI.
// Every piece of per-screen state lives in an explicit state object; nothing
// is kept in package variables between frames.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	Screen            state.Screen
	UiState           *state.UIState
	Registration      *state.CredentialsForm
	Login             *state.CredentialsForm
	Dashboard         *state.DashboardState
	NotificationState *state.NotificationState

	// Session is non-nil only while the dashboard is active
	Session *auth.Session
}

// InitialModel creates the TUI model on the registration screen.
// The login form is pre-filled with the operating-system user name.
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = a.Config()
	}
	theme.Init(cfg.ColorScheme)

	return Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		Screen:            state.ScreenRegistration,
		UiState:           state.NewUIState(),
		Registration:      state.NewCredentialsForm(""),
		Login:             state.NewCredentialsForm(user.DefaultUsername()),
		NotificationState: state.NewNotificationState(),
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.Registration.Focus(state.FieldUsername)
}

// DbContext returns a context bounded by the configured database timeout
func (m *Model) DbContext() (context.Context, context.CancelFunc) {
	return m.App.DBContext(m.Ctx)
}

// logger returns the session logger once signed in
func (m *Model) logger() *slog.Logger {
	if m.Session != nil {
		return m.Session.Logger()
	}
	return m.App.Logger()
}

// transition applies event to the screen machine and focuses the new screen.
// Undefined transitions are logged and ignored.
func (m *Model) transition(event state.Event) tea.Cmd {
	next, ok := state.Next(m.Screen, event)
	if !ok {
		m.logger().Debug("ignored screen event", "screen", m.Screen.String(), "event", event.String())
		return nil
	}

	m.logger().Debug("screen transition", "from", m.Screen.String(), "to", next.String(), "event", event.String())
	m.Screen = next
	m.UiState.CloseHelp()

	switch next {
	case state.ScreenRegistration:
		return m.Registration.Focus(state.FieldUsername)
	case state.ScreenLogin:
		return m.Login.FocusFirstEmpty()
	case state.ScreenDashboard:
		m.Dashboard.FocusList()
	}
	return nil
}
