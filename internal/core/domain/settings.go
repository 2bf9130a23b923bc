package domain

// Theme is the colour scheme used by interactive surfaces.
type Theme string

// Available themes.
const (
	// ThemeDark is the default dark palette.
	ThemeDark Theme = "dark"

	// ThemeLight is the light palette.
	ThemeLight Theme = "light"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// SqueezeSettings holds the preferred squeeze preset.
type SqueezeSettings struct {
	// Level is the default level for the squeeze command.
	Level SqueezeLevel
}

// UISettings holds presentation preferences.
type UISettings struct {
	// Theme is the colour scheme for the TUI.
	Theme Theme
}

// AppSettings holds all persisted user preferences.
type AppSettings struct {
	Transform TransformConfig
	Squeeze   SqueezeSettings
	UI        UISettings
}

// DefaultAppSettings returns settings used when nothing has been saved.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Transform: DefaultTransformConfig(),
		Squeeze: SqueezeSettings{
			Level: SqueezeLow,
		},
		UI: UISettings{
			Theme: ThemeDark,
		},
	}
}
