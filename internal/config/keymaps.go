package config

// KeyMappings defines all configurable key bindings.
// Credential screens take free text, so their bindings must be
// non-printable keys (tab, ctrl+…); dashboard bindings only apply
// while the task list, not the title input, has focus.
type KeyMappings struct {
	// Credential screens
	NextField        string `yaml:"next_field"`
	PrevField        string `yaml:"prev_field"`
	Submit           string `yaml:"submit"`
	ShowLogin        string `yaml:"show_login"`
	ShowRegistration string `yaml:"show_registration"`

	// Dashboard
	AddTask      string `yaml:"add_task"`
	CompleteTask string `yaml:"complete_task"`
	DeleteTask   string `yaml:"delete_task"`
	PrevTask     string `yaml:"prev_task"`
	NextTask     string `yaml:"next_task"`
	Refresh      string `yaml:"refresh"`
	Logout       string `yaml:"logout"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NextField:        "tab",
		PrevField:        "shift+tab",
		Submit:           "enter",
		ShowLogin:        "ctrl+l",
		ShowRegistration: "ctrl+r",

		AddTask:      "a",
		CompleteTask: "c",
		DeleteTask:   "d",
		PrevTask:     "k",
		NextTask:     "j",
		Refresh:      "r",
		Logout:       "L",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	for _, pair := range []struct{ dst, src *string }{
		{&k.NextField, &defaults.NextField},
		{&k.PrevField, &defaults.PrevField},
		{&k.Submit, &defaults.Submit},
		{&k.ShowLogin, &defaults.ShowLogin},
		{&k.ShowRegistration, &defaults.ShowRegistration},
		{&k.AddTask, &defaults.AddTask},
		{&k.CompleteTask, &defaults.CompleteTask},
		{&k.DeleteTask, &defaults.DeleteTask},
		{&k.PrevTask, &defaults.PrevTask},
		{&k.NextTask, &defaults.NextTask},
		{&k.Refresh, &defaults.Refresh},
		{&k.Logout, &defaults.Logout},
		{&k.ShowHelp, &defaults.ShowHelp},
		{&k.Quit, &defaults.Quit},
	} {
		if *pair.dst == "" {
			*pair.dst = *pair.src
		}
	}
}
