package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/layers"
)

const helpWidth = 60

// renderHelpLayer renders the keyboard shortcuts help screen as a layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.HelpBoxStyle().
		Width(helpWidth).
		Render(components.RenderMarkdown(m.helpMarkdown(), helpWidth-4))

	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

// helpMarkdown lists the current key mappings
func (m Model) helpMarkdown() string {
	km := m.Config.KeyMappings
	return fmt.Sprintf("# taskdesk shortcuts\n\n"+
		"## Register / Login\n\n"+
		"| Key | Action |\n|---|---|\n"+
		"| `%s` | Submit |\n"+
		"| `%s` / `%s` | Next / previous field |\n"+
		"| `%s` | Go to login |\n"+
		"| `%s` | Go to registration |\n"+
		"| `esc` | Quit |\n\n"+
		"## Dashboard\n\n"+
		"| Key | Action |\n|---|---|\n"+
		"| `%s` | Add a task |\n"+
		"| `%s` / `%s` | Move selection |\n"+
		"| `%s` | Mark selected task complete |\n"+
		"| `%s` | Delete selected task |\n"+
		"| `%s` | Reload tasks |\n"+
		"| `%s` | Log out |\n"+
		"| `%s` | Quit |\n\n"+
		"Any key dismisses a message. `%s` closes this help.",
		km.Submit, km.NextField, km.PrevField, km.ShowLogin, km.ShowRegistration,
		km.AddTask, km.PrevTask, km.NextTask, km.CompleteTask, km.DeleteTask,
		km.Refresh, km.Logout, km.Quit, km.ShowHelp)
}
