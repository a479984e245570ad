package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// DashboardFocus says whether keys drive the task list or the title input.
type DashboardFocus int

const (
	FocusList DashboardFocus = iota
	FocusInput
)

// TaskCounts mirrors the owner's totals, independent of the fetch limit.
type TaskCounts struct {
	Total     int
	Completed int
	Shown     int
}

// DashboardState manages the signed-in user's task list.
// The snapshot is only replaced by SetTasks; nothing pushes updates into it.
type DashboardState struct {
	owner  string
	tasks  []*models.Task
	counts TaskCounts

	// selected is the index of the highlighted task
	selected int

	TitleInput textinput.Model
	focus      DashboardFocus
}

// NewDashboardState creates an empty dashboard for owner
func NewDashboardState(owner string) *DashboardState {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = models.MaxTitleLength

	return &DashboardState{
		owner:      owner,
		tasks:      []*models.Task{},
		TitleInput: ti,
		focus:      FocusList,
	}
}

// Owner returns the username whose tasks are shown
func (s *DashboardState) Owner() string {
	return s.owner
}

// Tasks returns the current snapshot. Callers should not modify it.
func (s *DashboardState) Tasks() []*models.Task {
	return s.tasks
}

// SetTasks replaces the snapshot and keeps the selection in range
func (s *DashboardState) SetTasks(tasks []*models.Task) {
	if tasks == nil {
		tasks = []*models.Task{}
	}
	s.tasks = tasks
	s.clampSelection()
}

// Counts returns the totals recorded by SetCounts
func (s *DashboardState) Counts() TaskCounts {
	return s.counts
}

// SetCounts records the owner's totals
func (s *DashboardState) SetCounts(counts TaskCounts) {
	s.counts = counts
}

// Selected returns the highlighted index
func (s *DashboardState) Selected() int {
	return s.selected
}

// SelectedTask returns the highlighted task, or nil when the list is empty
func (s *DashboardState) SelectedTask() *models.Task {
	if s.selected < 0 || s.selected >= len(s.tasks) {
		return nil
	}
	return s.tasks[s.selected]
}

// MoveUp moves the highlight one row up, stopping at the first task
func (s *DashboardState) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

// MoveDown moves the highlight one row down, stopping at the last task
func (s *DashboardState) MoveDown() {
	if s.selected < len(s.tasks)-1 {
		s.selected++
	}
}

// SelectLast highlights the most recently added task
func (s *DashboardState) SelectLast() {
	s.selected = max(len(s.tasks)-1, 0)
}

func (s *DashboardState) clampSelection() {
	if s.selected >= len(s.tasks) {
		s.selected = len(s.tasks) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// Focus returns which element receives keys
func (s *DashboardState) Focus() DashboardFocus {
	return s.focus
}

// FocusInput starts title entry
func (s *DashboardState) FocusInput() tea.Cmd {
	s.focus = FocusInput
	return s.TitleInput.Focus()
}

// FocusList returns keys to the task list, keeping any draft title
func (s *DashboardState) FocusList() {
	s.focus = FocusList
	s.TitleInput.Blur()
}

// TakeTitle returns the draft title and clears the input
func (s *DashboardState) TakeTitle() string {
	title := s.TitleInput.Value()
	s.TitleInput.Reset()
	return title
}

// UpdateInput forwards msg to the title input
func (s *DashboardState) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.TitleInput, cmd = s.TitleInput.Update(msg)
	return cmd
}
