// Package preset loads scaffold answers from a file so the config can be
// assembled without prompts, for CI and scripted runs.
package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/teneplaysofficial/create-release-hub/internal/releasecfg"
)

// Preset mirrors the generated config schema, with the sync policy kept
// loose until validation.
type Preset struct {
	DefaultReleaseType string            `json:"defaultReleaseType" yaml:"defaultReleaseType" toml:"defaultReleaseType"`
	Targets            []string          `json:"targets" yaml:"targets" toml:"targets"`
	TargetsPath        map[string]string `json:"targetsPath" yaml:"targetsPath" toml:"targetsPath"`
	Sync               any               `json:"sync" yaml:"sync" toml:"sync"`
}

// Load reads a preset file, dispatching on its extension (.json, .yaml,
// .yml, .toml).
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file %q: %w", path, err)
	}

	var p Preset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &p)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &p)
	case ".toml":
		err = toml.Unmarshal(data, &p)
	default:
		return nil, fmt.Errorf("unsupported preset format %q (expected .json, .yaml or .toml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse preset file %q: %w", path, err)
	}

	return &p, nil
}

// Config validates the preset and converts it to a release configuration.
// Omitted fields take the same defaults as the interactive flow: patch
// releases, the node target, per-target default paths, sync all.
func (p *Preset) Config() (releasecfg.Config, error) {
	b := releasecfg.NewBuilder()

	if p.DefaultReleaseType != "" {
		rt := releasecfg.ReleaseType(p.DefaultReleaseType)
		if !rt.IsValid() {
			return releasecfg.Config{}, fmt.Errorf("invalid defaultReleaseType %q (expected major, minor or patch)", p.DefaultReleaseType)
		}
		b = b.WithReleaseType(rt)
	}

	targets := p.Targets
	if targets == nil {
		targets = []string{releasecfg.Node.String()}
	}
	for _, name := range targets {
		t := releasecfg.Target(name)
		if !t.IsValid() {
			return releasecfg.Config{}, fmt.Errorf("unknown target %q", name)
		}
		path := p.TargetsPath[name]
		if path == "" {
			path = t.DefaultPath()
		}
		if !releasecfg.IsRelativePath(path) {
			return releasecfg.Config{}, fmt.Errorf("path %q for target %q must start with ./ or ../", path, name)
		}
		b = b.WithTarget(t, path)
	}
	for name := range p.TargetsPath {
		if !slices.Contains(targets, name) {
			return releasecfg.Config{}, fmt.Errorf("targetsPath entry %q is not an enabled target", name)
		}
	}

	mode, groups, err := p.syncPolicy()
	if err != nil {
		return releasecfg.Config{}, err
	}
	b = b.WithSyncMode(mode)
	for _, group := range groups {
		b = b.WithGroup(group)
	}

	return b.Build(), nil
}

// syncPolicy normalizes the polymorphic sync field: a bool, the strings
// "all"/"none", or a list of target groups.
func (p *Preset) syncPolicy() (releasecfg.SyncMode, [][]releasecfg.Target, error) {
	switch v := p.Sync.(type) {
	case nil:
		return releasecfg.SyncAll, nil, nil
	case bool:
		if v {
			return releasecfg.SyncAll, nil, nil
		}
		return releasecfg.SyncNone, nil, nil
	case string:
		switch v {
		case "all":
			return releasecfg.SyncAll, nil, nil
		case "none":
			return releasecfg.SyncNone, nil, nil
		default:
			return "", nil, fmt.Errorf("invalid sync value %q (expected all, none or a list of groups)", v)
		}
	case []any:
		groups, err := parseGroups(v)
		if err != nil {
			return "", nil, err
		}
		return releasecfg.SyncGroups, groups, nil
	default:
		return "", nil, fmt.Errorf("invalid sync value of type %T", v)
	}
}

func parseGroups(raw []any) ([][]releasecfg.Target, error) {
	groups := make([][]releasecfg.Target, 0, len(raw))
	for _, entry := range raw {
		members, ok := entry.([]any)
		if !ok {
			return nil, fmt.Errorf("sync group %v must be a list of targets", entry)
		}
		if len(members) < 2 {
			return nil, fmt.Errorf("sync group %v needs at least 2 targets", entry)
		}
		group := make([]releasecfg.Target, len(members))
		for i, member := range members {
			name, ok := member.(string)
			if !ok {
				return nil, fmt.Errorf("sync group member %v must be a target name", member)
			}
			t := releasecfg.Target(name)
			if !t.IsValid() {
				return nil, fmt.Errorf("unknown target %q in sync group", name)
			}
			group[i] = t
		}
		groups = append(groups, group)
	}
	return groups, nil
}
