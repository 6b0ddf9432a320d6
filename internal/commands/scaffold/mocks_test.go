package scaffold

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/teneplaysofficial/create-release-hub/internal/pkgmanager"
)

// fakePrompter replays scripted answers in order. Setting cancelOn makes the
// named prompt kind return huh.ErrUserAborted, simulating a user interrupt.
type fakePrompter struct {
	t *testing.T

	confirms []bool
	selects  []string
	multis   [][]string
	inputs   []string

	cancelOn string
}

func (p *fakePrompter) Confirm(title, description string, defaultValue bool) (bool, error) {
	if p.cancelOn == "confirm" {
		return false, huh.ErrUserAborted
	}
	if len(p.confirms) == 0 {
		p.t.Fatalf("unexpected Confirm(%q)", title)
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

func (p *fakePrompter) Select(title, description string, options []huh.Option[string], defaultValue string) (string, error) {
	if p.cancelOn == "select" {
		return "", huh.ErrUserAborted
	}
	if len(p.selects) == 0 {
		p.t.Fatalf("unexpected Select(%q)", title)
	}
	v := p.selects[0]
	p.selects = p.selects[1:]
	return v, nil
}

func (p *fakePrompter) MultiSelect(title, description string, options []huh.Option[string], defaults []string) ([]string, error) {
	if p.cancelOn == "multiselect" {
		return nil, huh.ErrUserAborted
	}
	if len(p.multis) == 0 {
		p.t.Fatalf("unexpected MultiSelect(%q)", title)
	}
	v := p.multis[0]
	p.multis = p.multis[1:]
	return v, nil
}

func (p *fakePrompter) Input(title, description, placeholder string, validate func(string) error) (string, error) {
	if p.cancelOn == "input" {
		return "", huh.ErrUserAborted
	}
	if len(p.inputs) == 0 {
		p.t.Fatalf("unexpected Input(%q)", title)
	}
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	if validate != nil {
		if err := validate(v); err != nil {
			p.t.Fatalf("scripted input %q rejected: %v", v, err)
		}
	}
	return v, nil
}

// fakeInstaller records install invocations and optionally fails.
type fakeInstaller struct {
	calls []pkgmanager.PackageManager
	err   error
}

func (f *fakeInstaller) Install(ctx context.Context, pm pkgmanager.PackageManager, dir, pkg string) error {
	f.calls = append(f.calls, pm)
	return f.err
}

var errInstallFailed = errors.New("install failed")
