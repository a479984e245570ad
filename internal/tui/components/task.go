package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/tui/theme"
)

const (
	checkDone    = "[✓]"
	checkPending = "[ ]"
	cursorMark   = "›"
)

// TaskRowProps describes one row of the dashboard list
type TaskRowProps struct {
	Task     *models.Task
	Selected bool
	Width    int
}

// RenderTaskRow renders a task with its check box. Long titles wrap onto
// continuation lines indented under the title. Completed tasks are muted.
func RenderTaskRow(props TaskRowProps) string {
	check := checkPending
	if props.Task.Completed {
		check = checkDone
	}

	cursor := " "
	if props.Selected {
		cursor = cursorMark
	}

	prefix := cursor + " " + check + " "
	indent := strings.Repeat(" ", lipgloss.Width(prefix))
	titleWidth := max(props.Width-lipgloss.Width(prefix), 10)

	// wordwrap breaks on spaces; wrap then hard-splits words longer than a line
	wrapped := wrap.String(wordwrap.String(props.Task.Title, titleWidth), titleWidth)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if props.Task.Completed {
		style = style.Foreground(lipgloss.Color(theme.CompletedTask)).Strikethrough(true)
	}
	if props.Selected {
		style = style.Background(lipgloss.Color(theme.SelectedBg)).Bold(true)
	}

	return style.Width(props.Width).Render(strings.Join(lines, "\n"))
}
