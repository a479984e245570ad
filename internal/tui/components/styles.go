package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui/theme"
)

// Styles are functions rather than package vars because theme.Init may run
// after package initialization.

// TitleStyle renders screen headings
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))
}

// SubtleStyle renders hints and secondary text
func SubtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

// LabelStyle renders field labels
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
}

// InputBoxStyle frames a text input; focused inputs use the focus colour
func InputBoxStyle(focused bool) lipgloss.Style {
	border := theme.InputBorder
	if focused {
		border = theme.FocusedBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
}

// PanelStyle frames a whole screen body
func PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)
}

// HelpBoxStyle frames the help overlay
func HelpBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Background(lipgloss.Color(theme.Background)).
		Padding(0, 1)
}
