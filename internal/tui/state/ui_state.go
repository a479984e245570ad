package state

// UIState tracks terminal geometry and overlays that are independent of the
// active screen.
type UIState struct {
	width    int
	height   int
	showHelp bool
}

// NewUIState creates a new UIState with zero size.
func NewUIState() *UIState {
	return &UIState{}
}

// Width returns the terminal width in cells
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height in cells
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ShowHelp reports whether the help overlay is open
func (s *UIState) ShowHelp() bool {
	return s.showHelp
}

// ToggleHelp opens or closes the help overlay
func (s *UIState) ToggleHelp() {
	s.showHelp = !s.showHelp
}

// CloseHelp closes the help overlay
func (s *UIState) CloseHelp() {
	s.showHelp = false
}
