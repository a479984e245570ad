package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
	"github.com/thenoetrevino/taskdesk/internal/tui/theme"
)

const dismissHint = "press any key to continue"

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	style := severity.style()

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message), lipgloss.Width(dismissHint))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(message)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Width(maxWidth).
		Render(dismissHint)

	content := lipgloss.JoinVertical(lipgloss.Left, header, body, "", hint)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.background)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(FromLevel(n.Level), n.Message)
}
