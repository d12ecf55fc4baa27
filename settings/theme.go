package settings

import (
	"encoding/json"
	"fmt"
)

// UserSettingsKey is the store key holding the user settings record
const UserSettingsKey = "user_settings"

// Theme is the light/dark preference
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme parses "light" or "dark"
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("unknown theme %q (want light or dark)", s)
}

type userSettings struct {
	ThemeMode Theme `json:"theme_mode"`
}

// LoadTheme reads the theme preference. Absent, unreadable or unparsable records yield light.
func LoadTheme(store Store) Theme {
	raw, ok, err := store.Get(UserSettingsKey)
	if err != nil || !ok {
		return ThemeLight
	}

	var record userSettings
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return ThemeLight
	}
	if record.ThemeMode != ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// SaveTheme stores the theme preference
func SaveTheme(store Store, theme Theme) error {
	data, err := json.Marshal(userSettings{ThemeMode: theme})
	if err != nil {
		return err
	}
	if err := store.Set(UserSettingsKey, string(data)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// ToggleTheme flips the stored preference and returns the new theme
func ToggleTheme(store Store) (Theme, error) {
	next := LoadTheme(store).Toggle()
	return next, SaveTheme(store, next)
}
