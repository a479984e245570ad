package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui/layers"
	"github.com/thenoetrevino/taskdesk/internal/tui/notifications"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
	"github.com/thenoetrevino/taskdesk/internal/tui/theme"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	var base string
	switch m.Screen {
	case state.ScreenRegistration:
		base = m.viewCredentials("Register", m.Registration, m.registrationHints())
	case state.ScreenLogin:
		base = m.viewCredentials("Login", m.Login, m.loginHints())
	case state.ScreenDashboard:
		base = m.viewDashboard()
	}

	// Fill the whole terminal so overlays can be positioned anywhere
	base = lipgloss.Place(m.UiState.Width(), m.UiState.Height(), lipgloss.Center, lipgloss.Center, base)

	var helpLayer *lipgloss.Layer
	if m.UiState.ShowHelp() {
		helpLayer = m.renderHelpLayer()
	}

	view.Content = layers.Compose(base,
		helpLayer,
		m.NotificationState.GetLayer(notifications.RenderFromState),
	)
	return view
}
