package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// InstallError describes a failed dependency installation.
type InstallError struct {
	PackageManager PackageManager
	ExitCode       int // -1 when the process could not be started
	Err            error
}

func (e *InstallError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s install exited with code %d", e.PackageManager, e.ExitCode)
	}
	return fmt.Sprintf("failed to run %s install: %v", e.PackageManager, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// installArgs maps each package manager to its dev-dependency install
// command for the given package.
func installArgs(pm PackageManager, pkg string) []string {
	switch pm {
	case Yarn:
		return []string{"yarn", "add", "-D", pkg}
	case Pnpm:
		return []string{"pnpm", "add", "-D", pkg}
	case Bun:
		return []string{"bun", "add", "-d", pkg}
	default:
		return []string{"npm", "install", "-D", pkg}
	}
}

// Installer runs package manager install commands.
type Installer struct {
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// NewInstaller creates an Installer using exec.CommandContext.
func NewInstaller() *Installer {
	return &Installer{execCommand: exec.CommandContext}
}

// Install adds pkg as a development dependency of the project in dir. The
// child process inherits the terminal so native install output is shown
// live, and the call blocks until it exits. A nonzero exit or spawn failure
// is returned as an *InstallError.
func (i *Installer) Install(ctx context.Context, pm PackageManager, dir, pkg string) error {
	args := installArgs(pm, pkg)
	cmd := i.execCommand(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &InstallError{PackageManager: pm, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &InstallError{PackageManager: pm, ExitCode: -1, Err: err}
	}
	return nil
}
