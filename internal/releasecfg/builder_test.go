package releasecfg

import (
	"reflect"
	"testing"
)

func TestBuilder_Defaults(t *testing.T) {
	cfg := NewBuilder().Build()

	if cfg.ReleaseType != Patch {
		t.Errorf("default ReleaseType = %v, want %v", cfg.ReleaseType, Patch)
	}
	if len(cfg.Targets) != 0 {
		t.Errorf("default Targets = %v, want empty", cfg.Targets)
	}
	if cfg.SyncMode != SyncAll {
		t.Errorf("default SyncMode = %v, want %v", cfg.SyncMode, SyncAll)
	}
}

func TestBuilder_AssemblesConfig(t *testing.T) {
	cfg := NewBuilder().
		WithReleaseType(Minor).
		WithTarget(Node, "./package.json").
		WithTarget(Deno, "./deno.json").
		WithSyncMode(SyncGroups).
		WithGroup([]Target{Node, Deno}).
		Build()

	if cfg.ReleaseType != Minor {
		t.Errorf("ReleaseType = %v, want %v", cfg.ReleaseType, Minor)
	}
	if !reflect.DeepEqual(cfg.Targets, []Target{Node, Deno}) {
		t.Errorf("Targets = %v, want [node deno]", cfg.Targets)
	}
	wantPaths := map[Target]string{Node: "./package.json", Deno: "./deno.json"}
	if !reflect.DeepEqual(cfg.Paths, wantPaths) {
		t.Errorf("Paths = %v, want %v", cfg.Paths, wantPaths)
	}
	if !reflect.DeepEqual(cfg.Groups, [][]Target{{Node, Deno}}) {
		t.Errorf("Groups = %v, want [[node deno]]", cfg.Groups)
	}
}

// Each builder step must derive a new value: extending a derived builder
// may not leak into the one it came from.
func TestBuilder_StepsAreImmutable(t *testing.T) {
	base := NewBuilder().WithTarget(Node, "./package.json")

	derived := base.
		WithReleaseType(Major).
		WithTarget(Deno, "./deno.json").
		WithGroup([]Target{Node, Deno})

	baseCfg := base.Build()
	if len(baseCfg.Targets) != 1 {
		t.Errorf("base Targets = %v, want only node", baseCfg.Targets)
	}
	if baseCfg.ReleaseType != Patch {
		t.Errorf("base ReleaseType = %v, want %v", baseCfg.ReleaseType, Patch)
	}
	if len(baseCfg.Groups) != 0 {
		t.Errorf("base Groups = %v, want empty", baseCfg.Groups)
	}

	derivedCfg := derived.Build()
	if len(derivedCfg.Targets) != 2 {
		t.Errorf("derived Targets = %v, want node and deno", derivedCfg.Targets)
	}
}

func TestBuilder_WithGroupCopiesInput(t *testing.T) {
	group := []Target{Node, Deno}
	cfg := NewBuilder().WithGroup(group).Build()

	group[0] = WebExt
	if cfg.Groups[0][0] != Node {
		t.Errorf("Groups[0][0] = %v after caller mutation, want %v", cfg.Groups[0][0], Node)
	}
}
