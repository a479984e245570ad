package tui

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/tui/state"
)

// ============================================================================
// DASHBOARD HANDLERS
// ============================================================================

// handleDashboardKey dispatches on whether the title input has focus.
func (m *Model) handleDashboardKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.Dashboard.Focus() == state.FocusInput {
		return m.handleTitleInputKey(msg)
	}

	km := m.Config.KeyMappings
	switch msg.String() {
	case km.Quit:
		return tea.Quit
	case km.ShowHelp:
		m.UiState.ToggleHelp()
	case km.AddTask:
		return m.Dashboard.FocusInput()
	case km.NextTask, "down":
		m.Dashboard.MoveDown()
	case km.PrevTask, "up":
		m.Dashboard.MoveUp()
	case km.CompleteTask:
		m.completeSelectedTask()
	case km.DeleteTask:
		m.deleteSelectedTask()
	case km.Refresh:
		m.reloadTasks()
	case km.Logout:
		return m.logout()
	}
	return nil
}

// handleTitleInputKey handles keys while a new task title is being typed.
func (m *Model) handleTitleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.Dashboard.FocusList()
		return nil
	case m.Config.KeyMappings.Submit:
		m.addTask()
		return nil
	}
	return m.Dashboard.UpdateInput(msg)
}

// addTask stores the drafted title. On a validation error the draft is kept
// so the user can fix it.
func (m *Model) addTask() {
	title := m.Dashboard.TitleInput.Value()

	ctx, cancel := m.DbContext()
	defer cancel()
	_, err := m.App.TaskService.AddTask(ctx, m.Dashboard.Owner(), title)
	switch {
	case errors.Is(err, models.ErrEmptyTitle):
		m.NotificationState.Add(state.LevelWarning, msgEmptyTitle)
		return
	case errors.Is(err, models.ErrTitleTooLong):
		m.NotificationState.Add(state.LevelWarning, msgTitleTooLong)
		return
	case errors.Is(err, models.ErrTaskLimitReached):
		m.NotificationState.Add(state.LevelWarning, msgTaskLimit)
		return
	case err != nil:
		m.HandleDBError(err, "adding task", msgSaveFailed)
		return
	}

	m.Dashboard.TakeTitle()
	m.Dashboard.FocusList()
	m.reloadTasks()
	m.Dashboard.SelectLast()
}

// completeSelectedTask marks the highlighted task as done.
func (m *Model) completeSelectedTask() {
	task := m.Dashboard.SelectedTask()
	if task == nil {
		m.NotificationState.Add(state.LevelWarning, msgNoTaskSelected)
		return
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	if err := m.App.TaskService.MarkComplete(ctx, m.Dashboard.Owner(), task.ID); err != nil {
		m.HandleDBError(err, "completing task", msgSaveFailed)
		return
	}
	m.reloadTasks()
}

// deleteSelectedTask removes the highlighted task.
func (m *Model) deleteSelectedTask() {
	task := m.Dashboard.SelectedTask()
	if task == nil {
		m.NotificationState.Add(state.LevelWarning, msgNoTaskSelected)
		return
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	if err := m.App.TaskService.DeleteTask(ctx, m.Dashboard.Owner(), task.ID); err != nil {
		m.HandleDBError(err, "deleting task", msgSaveFailed)
		return
	}
	m.reloadTasks()
}

// reloadTasks replaces the dashboard snapshot from the store.
// Preserves the cursor position where possible.
func (m *Model) reloadTasks() {
	ctx, cancel := m.DbContext()
	defer cancel()

	owner := m.Dashboard.Owner()
	tasks, err := m.App.TaskService.FetchTasks(ctx, owner)
	if err != nil {
		m.HandleDBError(err, "reload tasks", msgLoadFailed)
		return
	}
	summary, err := m.App.TaskService.CountTasks(ctx, owner)
	if err != nil {
		m.HandleDBError(err, "count tasks", msgLoadFailed)
		return
	}

	m.Dashboard.SetTasks(tasks)
	m.Dashboard.SetCounts(state.TaskCounts{
		Total:     summary.Total,
		Completed: summary.Completed,
		Shown:     summary.Shown,
	})
}

// logout ends the session and returns to the login screen with the
// username kept.
func (m *Model) logout() tea.Cmd {
	if m.Session != nil {
		m.logger().Info("session ended", "duration", time.Since(m.Session.StartedAt).Round(time.Second))
		m.Login.Reset(m.Session.Username())
	}
	cmd := m.transition(state.EventLoggedOut)
	m.Session = nil
	m.Dashboard = nil
	m.NotificationState.Add(state.LevelInfo, msgLoggedOut)
	return cmd
}

// HandleDBError logs err with the session context and shows userMessage.
func (m *Model) HandleDBError(err error, operation, userMessage string) {
	m.logger().Error("store operation failed", "operation", operation, "error", err)
	m.NotificationState.Add(state.LevelError, userMessage)
}
