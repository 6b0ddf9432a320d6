package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
)

// ValidThemes is the list of supported theme names for the --theme flag.
var ValidThemes = []string{
	"base",
	"base16",
	"catppuccin",
	"charm",
	"dracula",
}

// currentTheme holds the currently configured theme for TUI components.
// When nil, currentThemeOrDefault() returns the charm theme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Unknown or empty names fall back to the default charm theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

// GetTheme returns the huh.Theme for the given theme name.
// Returns nil if the theme name is not recognized.
func GetTheme(name string) *huh.Theme {
	switch name {
	case "base":
		return huh.ThemeBase()
	case "base16":
		return huh.ThemeBase16()
	case "catppuccin":
		return huh.ThemeCatppuccin()
	case "charm":
		return huh.ThemeCharm()
	case "dracula":
		return huh.ThemeDracula()
	default:
		return nil
	}
}

// IsValidTheme returns true if the given theme name is valid.
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// currentThemeOrDefault returns the current theme for TUI components.
func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return huh.ThemeCharm()
	}
	return currentTheme
}

// resetTheme resets the current theme to the default.
// This is primarily useful for testing.
func resetTheme() {
	currentTheme = nil
}
