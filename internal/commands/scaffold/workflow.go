// Package scaffold implements the interactive config-assembly workflow:
// project inspection, optional dependency install, the sequential prompt
// flow, and the final config write.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/teneplaysofficial/create-release-hub/internal/pkgmanager"
	"github.com/teneplaysofficial/create-release-hub/internal/preset"
	"github.com/teneplaysofficial/create-release-hub/internal/printer"
	"github.com/teneplaysofficial/create-release-hub/internal/project"
	"github.com/teneplaysofficial/create-release-hub/internal/releasecfg"
	"github.com/teneplaysofficial/create-release-hub/internal/tui"
)

// Options configures a scaffold run.
type Options struct {
	Dir         string
	PresetPath  string
	Yes         bool
	SkipInstall bool
}

// Workflow drives the scaffold steps against a project.
type Workflow struct {
	prompter  Prompter
	installer InstallRunner
	opts      Options
}

// NewWorkflow creates a new workflow handler.
func NewWorkflow(prompter Prompter, installer InstallRunner, opts Options) *Workflow {
	return &Workflow{
		prompter:  prompter,
		installer: installer,
		opts:      opts,
	}
}

// Execute runs the scaffold workflow with production collaborators.
func Execute(ctx context.Context, opts Options) error {
	if opts.PresetPath == "" && !opts.Yes && !tui.IsInteractive() {
		return errors.New("interactive terminal required; pass --preset or --yes for non-interactive runs")
	}
	return NewWorkflow(NewPrompter(), pkgmanager.NewInstaller(), opts).Run(ctx)
}

// Run executes the scaffold workflow end to end. Nothing is written until
// every step has succeeded; cancellation at any prompt aborts the run with
// huh.ErrUserAborted and no config file.
func (w *Workflow) Run(ctx context.Context) error {
	proj := project.NewContext(w.opts.Dir)

	var exists, installed bool
	inspect := func() {
		exists = project.HasExistingConfig(proj)
		installed = project.IsLibraryInstalled(proj)
	}
	if tui.IsTTY() {
		if err := spinner.New().Title("Inspecting project...").Action(inspect).Run(); err != nil {
			return err
		}
	} else {
		inspect()
	}

	if exists {
		return errors.New("a release-hub configuration already exists in this project")
	}

	if w.opts.PresetPath != "" || w.opts.Yes {
		return w.runNonInteractive(proj)
	}
	return w.runInteractive(ctx, proj, installed)
}

// runNonInteractive assembles the config from a preset file or, with --yes,
// from the built-in defaults.
func (w *Workflow) runNonInteractive(proj *project.Context) error {
	var cfg releasecfg.Config
	if w.opts.PresetPath != "" {
		p, err := preset.Load(w.opts.PresetPath)
		if err != nil {
			return err
		}
		cfg, err = p.Config()
		if err != nil {
			return fmt.Errorf("invalid preset %q: %w", w.opts.PresetPath, err)
		}
	} else {
		cfg = releasecfg.NewBuilder().
			WithTarget(releasecfg.Node, releasecfg.Node.DefaultPath()).
			Build()
	}
	return w.writeConfig(cfg, proj)
}

// runInteractive walks the prompt flow in order: install decision, release
// type, targets, per-target paths, sync policy, sync groups.
func (w *Workflow) runInteractive(ctx context.Context, proj *project.Context, installed bool) error {
	if !installed && !w.opts.SkipInstall {
		if err := w.offerInstall(ctx, proj); err != nil {
			return err
		}
	}

	b := releasecfg.NewBuilder()

	rt, err := w.prompter.Select(
		"Default release type",
		"The semver increment applied when none is specified.",
		releaseTypeOptions(), releasecfg.Patch.String(),
	)
	if err != nil {
		return err
	}
	b = b.WithReleaseType(releasecfg.ReleaseType(rt))

	selected, err := w.prompter.MultiSelect(
		"Version targets to manage",
		"Manifest files release-hub will keep versioned.",
		targetOptions(), []string{releasecfg.Node.String()},
	)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		printer.PrintWarning("No targets selected; release-hub will not manage any version files.")
	}

	for _, name := range selected {
		t := releasecfg.Target(name)
		path, err := w.prompter.Input(
			fmt.Sprintf("Path to the %s manifest", t),
			"Relative path, starting with ./ or ../",
			t.DefaultPath(), validatePath,
		)
		if err != nil {
			return err
		}
		if path == "" {
			path = t.DefaultPath()
		}
		b = b.WithTarget(t, path)
	}

	mode, err := w.prompter.Select(
		"Version sync policy",
		"How target versions relate to each other during releases.",
		syncModeOptions(), string(releasecfg.SyncAll),
	)
	if err != nil {
		return err
	}
	b = b.WithSyncMode(releasecfg.SyncMode(mode))

	if releasecfg.SyncMode(mode) == releasecfg.SyncGroups {
		b, err = w.collectGroups(b)
		if err != nil {
			return err
		}
	}

	return w.writeConfig(b.Build(), proj)
}

// offerInstall asks whether to install release-hub and, on confirmation,
// detects the package manager and runs its install command. An install
// failure aborts the whole run.
func (w *Workflow) offerInstall(ctx context.Context, proj *project.Context) error {
	ok, err := w.prompter.Confirm(
		"Install release-hub?",
		"Adds release-hub to devDependencies with your package manager.",
		true,
	)
	if err != nil {
		return err
	}
	if !ok {
		printer.PrintFaint("Skipping install. You can add release-hub later.")
		return nil
	}

	pm := pkgmanager.Detect(proj)
	printer.PrintInfo(fmt.Sprintf("Installing release-hub with %s...", pm))
	if err := w.installer.Install(ctx, pm, proj.Dir(), project.LibraryName); err != nil {
		return err
	}
	printer.PrintSuccess("release-hub installed.")
	return nil
}

// collectGroups runs the sync-group sub-flow: a group needs at least two
// members, and the loop continues while the user keeps adding groups.
// Group members are offered from the full target universe and recorded
// verbatim, without deduplication across groups.
func (w *Workflow) collectGroups(b releasecfg.Builder) (releasecfg.Builder, error) {
	for {
		names, err := w.prompter.MultiSelect(
			"Targets to sync as one group",
			"Versions within a group are kept identical.",
			targetOptions(), nil,
		)
		if err != nil {
			return b, err
		}
		if len(names) < 2 {
			printer.PrintError("A sync group needs at least 2 targets.")
			continue
		}

		group := make([]releasecfg.Target, len(names))
		for i, name := range names {
			group[i] = releasecfg.Target(name)
		}
		b = b.WithGroup(group)

		again, err := w.prompter.Confirm("Add another group?", "", false)
		if err != nil {
			return b, err
		}
		if !again {
			return b, nil
		}
	}
}

// writeConfig writes the assembled config to the project root and prints
// the summary. This is the only mutation of the run besides the install.
func (w *Workflow) writeConfig(cfg releasecfg.Config, proj *project.Context) error {
	path := filepath.Join(proj.Dir(), releasecfg.DefaultFileName)
	if err := releasecfg.Write(cfg, path); err != nil {
		return err
	}
	w.printSummary(cfg, path)
	return nil
}

// printSummary prints the written file, its targets and next steps.
func (w *Workflow) printSummary(cfg releasecfg.Config, path string) {
	fmt.Println()
	printer.PrintSuccess(fmt.Sprintf("Created %s", path))

	if len(cfg.Targets) > 0 {
		fmt.Println()
		printer.PrintInfo("Configured targets:")
		for _, t := range cfg.Targets {
			fmt.Printf("  - %s %s\n", t, printer.Faint("("+cfg.Paths[t]+")"))
		}
	}

	fmt.Println()
	printer.PrintInfo("Next steps:")
	fmt.Println("  - Review " + releasecfg.DefaultFileName + " and adjust settings")
	fmt.Println("  - Run 'release-hub' to cut your first release")
}

// validatePath enforces the explicit relative form; empty input is allowed
// and falls back to the per-target default.
func validatePath(s string) error {
	if s == "" {
		return nil
	}
	if !releasecfg.IsRelativePath(s) {
		return errors.New("path must start with ./ or ../")
	}
	return nil
}

func releaseTypeOptions() []huh.Option[string] {
	types := releasecfg.ReleaseTypes()
	options := make([]huh.Option[string], len(types))
	for i, rt := range types {
		options[i] = huh.NewOption(rt.String(), rt.String())
	}
	return options
}

func targetOptions() []huh.Option[string] {
	targets := releasecfg.Targets()
	options := make([]huh.Option[string], len(targets))
	for i, t := range targets {
		label := fmt.Sprintf("%s - %s", t, t.DefaultPath())
		options[i] = huh.NewOption(label, t.String())
	}
	return options
}

func syncModeOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("all - keep every target version identical", string(releasecfg.SyncAll)),
		huh.NewOption("none - let versions drift independently", string(releasecfg.SyncNone)),
		huh.NewOption("groups - sync versions within explicit groups", string(releasecfg.SyncGroups)),
	}
}
