package scaffold

import (
	"context"

	"github.com/charmbracelet/huh"
	"github.com/teneplaysofficial/create-release-hub/internal/pkgmanager"
	"github.com/teneplaysofficial/create-release-hub/internal/tui"
)

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title, description string, defaultValue bool) (bool, error)
	Select(title, description string, options []huh.Option[string], defaultValue string) (string, error)
	MultiSelect(title, description string, options []huh.Option[string], defaults []string) ([]string, error)
	Input(title, description, placeholder string, validate func(string) error) (string, error)
}

// InstallRunner abstracts the package manager installer for testability.
type InstallRunner interface {
	Install(ctx context.Context, pm pkgmanager.PackageManager, dir, pkg string) error
}

// TUIPrompter implements Prompter using the tui package.
type TUIPrompter struct{}

// NewPrompter creates a new TUIPrompter.
func NewPrompter() Prompter {
	return &TUIPrompter{}
}

// Confirm shows a yes/no confirmation prompt.
func (p *TUIPrompter) Confirm(title, description string, defaultValue bool) (bool, error) {
	return tui.Confirm(title, description, defaultValue)
}

// Select shows a single-select prompt.
func (p *TUIPrompter) Select(title, description string, options []huh.Option[string], defaultValue string) (string, error) {
	return tui.Select(title, description, options, defaultValue)
}

// MultiSelect shows a multi-select prompt.
func (p *TUIPrompter) MultiSelect(title, description string, options []huh.Option[string], defaults []string) ([]string, error) {
	return tui.MultiSelect(title, description, options, defaults)
}

// Input shows a free-text prompt.
func (p *TUIPrompter) Input(title, description, placeholder string, validate func(string) error) (string, error) {
	return tui.Input(title, description, placeholder, validate)
}
