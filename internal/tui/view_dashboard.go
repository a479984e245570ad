package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskdesk/internal/tui/components"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// dashboardChrome is the number of rows the dashboard uses around the task list
const dashboardChrome = 14

// viewDashboard renders the task list, summary line and title input.
func (m Model) viewDashboard() string {
	d := m.Dashboard
	width := min(max(m.UiState.Width()-8, 30), 100)

	header := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle().Render("Here is your dashboard"),
		components.SubtleStyle().Render("Logged in as "+d.Owner()),
		components.SubtleStyle().Render(summaryLine(d.Counts())),
	)

	input := components.InputBoxStyle(d.Focus() == state.FocusInput).
		Width(width).
		Render(d.TitleInput.View())

	return components.PanelStyle().Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.viewTaskList(width),
		"",
		input,
		components.SubtleStyle().Width(width).Render(m.dashboardHints()),
	))
}

// viewTaskList renders as many rows as fit, scrolled so the selection is visible.
func (m Model) viewTaskList(width int) string {
	tasks := m.Dashboard.Tasks()
	if len(tasks) == 0 {
		return components.SubtleStyle().Italic(true).Render("No tasks yet. Press " + m.Config.KeyMappings.AddTask + " to add one.")
	}

	rows := make([]string, len(tasks))
	for i, task := range tasks {
		rows[i] = components.RenderTaskRow(components.TaskRowProps{
			Task:     task,
			Selected: i == m.Dashboard.Selected(),
			Width:    width,
		})
	}

	budget := max(m.UiState.Height()-dashboardChrome, 3)
	start := visibleStart(rows, m.Dashboard.Selected(), budget)

	var b strings.Builder
	used := 0
	for _, row := range rows[start:] {
		h := lipgloss.Height(row)
		if used > 0 && used+h > budget {
			break
		}
		if used > 0 {
			b.WriteString("\n")
		}
		b.WriteString(row)
		used += h
	}
	return b.String()
}

// visibleStart returns the first row index so that selected fits in budget lines
func visibleStart(rows []string, selected, budget int) int {
	start := selected
	used := lipgloss.Height(rows[selected])
	for start > 0 {
		h := lipgloss.Height(rows[start-1])
		if used+h > budget {
			break
		}
		used += h
		start--
	}
	return start
}

func summaryLine(c state.TaskCounts) string {
	line := fmt.Sprintf("%d tasks • %d completed • %d pending", c.Total, c.Completed, c.Total-c.Completed)
	if c.Shown < c.Total {
		line += fmt.Sprintf(" • showing the first %d", c.Shown)
	}
	return line
}

func (m Model) dashboardHints() string {
	km := m.Config.KeyMappings
	if m.Dashboard.Focus() == state.FocusInput {
		return fmt.Sprintf("%s save • esc cancel", km.Submit)
	}
	return fmt.Sprintf("%s add • %s complete • %s delete • %s refresh • %s log out • %s help • %s quit",
		km.AddTask, km.CompleteTask, km.DeleteTask, km.Refresh, km.Logout, km.ShowHelp, km.Quit)
}
