// Package tui provides the interactive prompt layer built on huh.
// Every prompt runs as its own single-field form so callers can drive a
// strictly sequential flow and react to cancellation after each step.
package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
)

// Confirm shows a yes/no confirmation prompt.
// Cancellation surfaces as huh.ErrUserAborted.
func Confirm(title, description string, defaultValue bool) (bool, error) {
	value := defaultValue
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Value(&value),
	)).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return false, err
	}
	return value, nil
}

// Select shows a single-select prompt with the default value preselected.
func Select(title, description string, options []huh.Option[string], defaultValue string) (string, error) {
	value := defaultValue
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Description(description).
			Options(options...).
			Value(&value),
	)).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// MultiSelect shows a multi-select prompt with the given defaults
// preselected. The returned values keep the option order.
func MultiSelect(title, description string, options []huh.Option[string], defaults []string) ([]string, error) {
	opts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		opts[i] = opt.Selected(slices.Contains(defaults, opt.Value))
	}

	var selected []string
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title(title).
			Description(description).
			Options(opts...).
			Value(&selected),
	)).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return nil, err
	}
	return selected, nil
}

// Input shows a free-text prompt. The validate function, when non-nil, is
// applied by huh on submission so invalid input reprompts in place.
func Input(title, description, placeholder string, validate func(string) error) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}

	form := huh.NewForm(huh.NewGroup(field)).WithTheme(currentThemeOrDefault())
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}
