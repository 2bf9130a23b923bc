// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DarkTheme returns the dark palette.
func DarkTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Bar:        lipgloss.Color("#181825"),
	}
}

// LightTheme returns the light palette.
func LightTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#6D28D9"),
		Secondary:  lipgloss.Color("#0E7490"),
		Foreground: lipgloss.Color("#1F2937"),
		Muted:      lipgloss.Color("#6B7280"),
		Success:    lipgloss.Color("#15803D"),
		Warning:    lipgloss.Color("#B45309"),
		Error:      lipgloss.Color("#B91C1C"),
		Border:     lipgloss.Color("#D1D5DB"),
		Bar:        lipgloss.Color("#E5E7EB"),
	}
}

// ThemeFor returns the palette for a theme setting. Unknown values get dark.
func ThemeFor(t domain.Theme) *Theme {
	if t == domain.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for pane labels.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// Pane style for an unfocused editor or preview.
	Pane lipgloss.Style

	// FocusedPane style for the pane receiving keys.
	FocusedPane lipgloss.Style

	// ToggleOn style for an enabled option.
	ToggleOn lipgloss.Style

	// ToggleOff style for a disabled option.
	ToggleOff lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DarkTheme()
	}

	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Pane: pane,

		FocusedPane: pane.BorderForeground(theme.Primary),

		ToggleOn: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success),

		ToggleOff: lipgloss.NewStyle().
			Foreground(theme.Muted),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the dark theme.
func DefaultStyles() *Styles {
	return NewStyles(DarkTheme())
}

// ForTheme returns styles for a theme setting.
func ForTheme(t domain.Theme) *Styles {
	return NewStyles(ThemeFor(t))
}

// Theme returns the palette used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
