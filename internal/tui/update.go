package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	// Everything else (cursor blink and friends) goes to the focused input
	return m, m.forwardToInput(msg)
}

// handleKey routes a key press. A visible notification swallows the first key.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.NotificationState.HasAny() {
		m.NotificationState.Dismiss()
		return nil
	}

	if m.UiState.ShowHelp() {
		return m.handleHelpKey(msg)
	}

	switch m.Screen {
	case state.ScreenRegistration:
		return m.handleRegistrationKey(msg)
	case state.ScreenLogin:
		return m.handleLoginKey(msg)
	case state.ScreenDashboard:
		return m.handleDashboardKey(msg)
	}
	return nil
}

// handleHelpKey closes the help overlay on its own key, quit, esc or enter.
func (m *Model) handleHelpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", " ":
		m.UiState.CloseHelp()
	}
	return nil
}

func (m *Model) forwardToInput(msg tea.Msg) tea.Cmd {
	switch m.Screen {
	case state.ScreenRegistration:
		return m.Registration.Update(msg)
	case state.ScreenLogin:
		return m.Login.Update(msg)
	case state.ScreenDashboard:
		if m.Dashboard != nil && m.Dashboard.Focus() == state.FocusInput {
			return m.Dashboard.UpdateInput(msg)
		}
	}
	return nil
}
