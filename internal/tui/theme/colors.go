// Package theme exposes the active colour scheme to the render code.
package theme

import "github.com/thenoetrevino/taskdesk/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent        string
	Background    string
	Create        string
	Delete        string
	InputBorder   string
	FocusedBorder string
	SelectedBg    string
	CompletedTask string
	Title         string
	Subtle        string
	Normal        string
	InfoFg        string
	InfoBg        string
	WarningFg     string
	WarningBg     string
	ErrorFg       string
	ErrorBg       string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	Accent = scheme.Accent
	Background = scheme.Background
	Create = scheme.Create
	Delete = scheme.Delete
	InputBorder = scheme.InputBorder
	FocusedBorder = scheme.FocusedBorder
	SelectedBg = scheme.SelectedBg
	CompletedTask = scheme.CompletedTask
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
