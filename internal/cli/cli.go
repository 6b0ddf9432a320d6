// Package cli wires the create-release-hub command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/teneplaysofficial/create-release-hub/internal/commands/scaffold"
	"github.com/teneplaysofficial/create-release-hub/internal/printer"
	"github.com/teneplaysofficial/create-release-hub/internal/tui"
	"github.com/teneplaysofficial/create-release-hub/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command. The root action runs the
// scaffold workflow directly, so the tool works with no arguments.
func New() *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "create-release-hub",
		Version: fmt.Sprintf("v%s", version.GetVersion()),
		Usage:   "Scaffold release-hub configuration for your project",
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Project directory",
				Value:   ".",
			},
			&urfavecli.StringFlag{
				Name:  "preset",
				Usage: "Preset file (.json, .yaml or .toml) for a non-interactive run",
			},
			&urfavecli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Accept all defaults without prompting",
			},
			&urfavecli.BoolFlag{
				Name:  "skip-install",
				Usage: "Do not offer to install release-hub",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
			&urfavecli.StringFlag{
				Name:  "theme",
				Usage: "Prompt theme: base, base16, catppuccin, charm, dracula",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			tui.SetTheme(cmd.String("theme"))
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return scaffold.Execute(ctx, scaffold.Options{
				Dir:         cmd.String("dir"),
				PresetPath:  cmd.String("preset"),
				Yes:         cmd.Bool("yes"),
				SkipInstall: cmd.Bool("skip-install"),
			})
		},
	}
}

// Run executes the CLI and reports any fatal error once. The caller maps a
// non-nil return to a nonzero exit status.
func Run(ctx context.Context, args []string) error {
	if err := New().Run(ctx, args); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			printer.PrintError("Cancelled. No configuration was written.")
		} else {
			printer.PrintError(err.Error())
		}
		return err
	}
	return nil
}
