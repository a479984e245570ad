package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

const credentialsWidth = 44

// viewCredentials renders a registration or login form.
func (m Model) viewCredentials(title string, form *state.CredentialsForm, hints string) string {
	usernameBox := components.InputBoxStyle(form.Focused() == state.FieldUsername).
		Width(credentialsWidth).
		Render(form.Username.View())
	passwordBox := components.InputBoxStyle(form.Focused() == state.FieldPassword).
		Width(credentialsWidth).
		Render(form.Password.View())

	body := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle().Render(title),
		"",
		components.LabelStyle().Render("Username"),
		usernameBox,
		components.LabelStyle().Render("Password"),
		passwordBox,
		"",
		components.SubtleStyle().Width(credentialsWidth).Render(hints),
	)

	return components.PanelStyle().Render(body)
}

func (m Model) registrationHints() string {
	km := m.Config.KeyMappings
	return fmt.Sprintf("%s register • %s switch field • %s have an account? log in • esc quit",
		km.Submit, km.NextField, km.ShowLogin)
}

func (m Model) loginHints() string {
	km := m.Config.KeyMappings
	return fmt.Sprintf("%s log in • %s switch field • %s create an account • esc quit",
		km.Submit, km.NextField, km.ShowRegistration)
}
