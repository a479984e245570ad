package tui

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/services/auth"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// ============================================================================
// CREDENTIAL SCREEN HANDLERS
// ============================================================================

// handleCredentialKeys handles the keys shared by both credential screens.
// handled is false when the key should be typed into the focused input.
func (m *Model) handleCredentialKeys(form *state.CredentialsForm, msg tea.KeyPressMsg) (cmd tea.Cmd, handled bool) {
	km := m.Config.KeyMappings
	switch msg.String() {
	case "esc":
		return tea.Quit, true
	case km.NextField, "down":
		return form.NextField(), true
	case km.PrevField, "up":
		return form.PrevField(), true
	case km.ShowHelp:
		// "?" is a legal password character, so only open help from an empty field
		if focusedValue(form) == "" {
			m.UiState.ToggleHelp()
			return nil, true
		}
	}
	return nil, false
}

func focusedValue(form *state.CredentialsForm) string {
	if form.Focused() == state.FieldPassword {
		return form.Password.Value()
	}
	return form.Username.Value()
}

// handleRegistrationKey handles input on the registration screen.
func (m *Model) handleRegistrationKey(msg tea.KeyPressMsg) tea.Cmd {
	if cmd, handled := m.handleCredentialKeys(m.Registration, msg); handled {
		return cmd
	}

	switch msg.String() {
	case m.Config.KeyMappings.Submit:
		return m.submitRegistration()
	case m.Config.KeyMappings.ShowLogin:
		m.Registration.ClearPassword()
		return m.transition(state.EventShowLogin)
	}
	return m.Registration.Update(msg)
}

// submitRegistration creates the account and moves to the login screen with
// the new username filled in.
func (m *Model) submitRegistration() tea.Cmd {
	if !m.Registration.Complete() {
		m.NotificationState.Add(state.LevelWarning, msgFillAllFields)
		return nil
	}
	username, password := m.Registration.Values()

	ctx, cancel := m.DbContext()
	defer cancel()
	if err := m.App.AuthService.Register(ctx, username, password); err != nil {
		m.Registration.ClearPassword()
		if errors.Is(err, models.ErrStorage) {
			m.NotificationState.Add(state.LevelError, msgStorageUnavailable)
			return nil
		}
		m.NotificationState.Add(state.LevelError, msgRegisterFailed)
		return nil
	}

	m.Registration.Reset("")
	m.Login.Reset(username)
	m.NotificationState.Add(state.LevelInfo, msgRegistered)
	return m.transition(state.EventRegistered)
}

// handleLoginKey handles input on the login screen.
func (m *Model) handleLoginKey(msg tea.KeyPressMsg) tea.Cmd {
	if cmd, handled := m.handleCredentialKeys(m.Login, msg); handled {
		return cmd
	}

	switch msg.String() {
	case m.Config.KeyMappings.Submit:
		return m.submitLogin()
	case m.Config.KeyMappings.ShowRegistration:
		m.Login.ClearPassword()
		return m.transition(state.EventShowRegistration)
	}
	return m.Login.Update(msg)
}

// submitLogin verifies credentials and opens the dashboard for the user.
func (m *Model) submitLogin() tea.Cmd {
	if !m.Login.Complete() {
		m.NotificationState.Add(state.LevelWarning, msgFillAllFields)
		return nil
	}
	username, password := m.Login.Values()

	ctx, cancel := m.DbContext()
	defer cancel()
	u, err := m.App.AuthService.Login(ctx, username, password)
	m.Login.ClearPassword()
	if err != nil {
		if errors.Is(err, models.ErrStorage) {
			m.NotificationState.Add(state.LevelError, msgStorageUnavailable)
			return nil
		}
		m.NotificationState.Add(state.LevelError, msgLoginFailed)
		return nil
	}

	m.Session = auth.NewSession(u)
	m.Dashboard = state.NewDashboardState(u.Username)
	m.logger().Info("session started")
	m.reloadTasks()

	// Only replace the welcome message if loading tasks did not report an error
	if !m.NotificationState.HasAny() {
		m.NotificationState.Add(state.LevelInfo, msgLoggedIn)
	}
	return m.transition(state.EventLoggedIn)
}
