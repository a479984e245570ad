package state

import "charm.land/lipgloss/v2"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (blue, bell icon)
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications (yellow, warning icon)
	LevelWarning
	// LevelError represents error notifications (red, error icon)
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the transient message shown over the current screen.
// Only one message is visible at a time; a newer one replaces it and any key
// press dismisses it.
type NotificationState struct {
	current *Notification

	windowWidth  int
	windowHeight int
}

// NewNotificationState creates a new NotificationState with no notification.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add shows message at level, replacing any visible notification.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.current = &Notification{Level: level, Message: message}
}

// Dismiss hides the visible notification, if any.
func (s *NotificationState) Dismiss() {
	s.current = nil
}

// Current returns the visible notification.
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}

// HasAny returns true if a notification is visible.
func (s *NotificationState) HasAny() bool {
	return s.current != nil
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayer creates a floating layer for the visible notification, centred
// horizontally in the lower third of the screen. Returns nil when there is
// nothing to show or the window size is unknown.
func (s *NotificationState) GetLayer(renderFunc func(Notification) string) *lipgloss.Layer {
	if s.current == nil || s.windowWidth == 0 {
		return nil
	}

	view := renderFunc(*s.current)
	col := max((s.windowWidth-lipgloss.Width(view))/2, 0)
	row := max(s.windowHeight*2/3-lipgloss.Height(view)/2, 0)
	if row+lipgloss.Height(view) > s.windowHeight {
		row = max(s.windowHeight-lipgloss.Height(view), 0)
	}

	return lipgloss.NewLayer(view).X(col).Y(row)
}
