package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// Field identifies an input on a credentials form.
type Field int

const (
	FieldUsername Field = iota
	FieldPassword
)

// CredentialsForm holds the inputs of the registration and login screens.
// Each screen owns its own instance, so switching screens never leaks
// what was typed on the other one.
type CredentialsForm struct {
	Username textinput.Model
	Password textinput.Model

	focus Field
}

// NewCredentialsForm creates a form with username pre-filled
func NewCredentialsForm(username string) *CredentialsForm {
	u := textinput.New()
	u.Placeholder = "username"
	u.CharLimit = models.MaxUsernameLength
	u.SetValue(username)

	p := textinput.New()
	p.Placeholder = "password"
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'

	return &CredentialsForm{
		Username: u,
		Password: p,
		focus:    FieldUsername,
	}
}

// Focused returns the field receiving keystrokes
func (f *CredentialsForm) Focused() Field {
	return f.focus
}

// Focus moves keyboard focus to field
func (f *CredentialsForm) Focus(field Field) tea.Cmd {
	f.focus = field
	if field == FieldPassword {
		f.Username.Blur()
		return f.Password.Focus()
	}
	f.Password.Blur()
	return f.Username.Focus()
}

// FocusFirstEmpty focuses the username field unless it already has a value
func (f *CredentialsForm) FocusFirstEmpty() tea.Cmd {
	if strings.TrimSpace(f.Username.Value()) != "" {
		return f.Focus(FieldPassword)
	}
	return f.Focus(FieldUsername)
}

// NextField cycles focus forward. With two fields it is the same as PrevField.
func (f *CredentialsForm) NextField() tea.Cmd {
	return f.Focus((f.focus + 1) % 2)
}

// PrevField cycles focus backward
func (f *CredentialsForm) PrevField() tea.Cmd {
	return f.Focus((f.focus + 1) % 2)
}

// Values returns the trimmed username and the raw password
func (f *CredentialsForm) Values() (username, password string) {
	return strings.TrimSpace(f.Username.Value()), f.Password.Value()
}

// Complete reports whether both fields have content
func (f *CredentialsForm) Complete() bool {
	username, password := f.Values()
	return username != "" && password != ""
}

// Update forwards msg to the focused input
func (f *CredentialsForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == FieldPassword {
		f.Password, cmd = f.Password.Update(msg)
	} else {
		f.Username, cmd = f.Username.Update(msg)
	}
	return cmd
}

// Reset clears the password and replaces the username
func (f *CredentialsForm) Reset(username string) {
	f.Username.SetValue(username)
	f.Password.Reset()
}

// ClearPassword drops whatever was typed into the password field
func (f *CredentialsForm) ClearPassword() {
	f.Password.Reset()
}
