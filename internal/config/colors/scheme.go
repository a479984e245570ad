package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Background of the whole screen
	Background string `yaml:"background"`

	// Semantic colors
	Create string `yaml:"create"` // Green - successful registration, new tasks
	Delete string `yaml:"delete"` // Red - delete actions

	// UI element colors
	InputBorder   string `yaml:"input_border"`
	FocusedBorder string `yaml:"focused_border"`
	SelectedBg    string `yaml:"selected_bg"`
	CompletedTask string `yaml:"completed_task"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields returns pointers to every color value, in declaration order
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Background,
		&c.Create, &c.Delete,
		&c.InputBorder, &c.FocusedBorder, &c.SelectedBg, &c.CompletedTask,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset).fields()
	for i, field := range c.fields() {
		if *field == "" {
			*field = *preset[i]
		}
	}
}

// MergeFrom copies every non-empty value of other over c.
// A non-empty preset in other replaces the base before the copy.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}
	theirs := other.fields()
	for i, field := range c.fields() {
		if *theirs[i] != "" {
			*field = *theirs[i]
		}
	}
}
