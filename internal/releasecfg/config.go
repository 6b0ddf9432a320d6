// Package releasecfg models the release-hub configuration artifact and its
// JSON serialization.
package releasecfg

import "strings"

// SchemaURL is the JSON schema reference embedded in every generated config.
const SchemaURL = "https://unpkg.com/release-hub/schema.json"

// DefaultFileName is the config file emitted at the project root.
const DefaultFileName = "release-hub.json"

// ReleaseType is the default semver increment applied by release-hub.
type ReleaseType string

const (
	Major ReleaseType = "major"
	Minor ReleaseType = "minor"
	Patch ReleaseType = "patch"
)

// String returns the string representation of the release type.
func (r ReleaseType) String() string {
	return string(r)
}

// IsValid returns true if r is a known release type.
func (r ReleaseType) IsValid() bool {
	switch r {
	case Major, Minor, Patch:
		return true
	default:
		return false
	}
}

// ReleaseTypes returns all release types in display order.
func ReleaseTypes() []ReleaseType {
	return []ReleaseType{Major, Minor, Patch}
}

// Target is a distribution ecosystem whose manifest file carries a version
// number to keep synchronized.
type Target string

const (
	Node   Target = "node"
	JSR    Target = "jsr"
	Deno   Target = "deno"
	WebExt Target = "webext"
)

// String returns the string representation of the target.
func (t Target) String() string {
	return string(t)
}

// IsValid returns true if t is a known target.
func (t Target) IsValid() bool {
	switch t {
	case Node, JSR, Deno, WebExt:
		return true
	default:
		return false
	}
}

// Targets returns all targets in display order.
func Targets() []Target {
	return []Target{Node, JSR, Deno, WebExt}
}

// DefaultPath returns the conventional manifest path for a target, used
// when the user submits an empty path.
func (t Target) DefaultPath() string {
	switch t {
	case JSR:
		return "./jsr.json"
	case Deno:
		return "./deno.json"
	case WebExt:
		return "./manifest.json"
	default:
		return "./package.json"
	}
}

// SyncMode is the version synchronization policy.
type SyncMode string

const (
	// SyncAll keeps every target version identical (serialized as true).
	SyncAll SyncMode = "all"

	// SyncNone lets target versions drift independently (serialized as false).
	SyncNone SyncMode = "none"

	// SyncGroups synchronizes versions within explicit target groups.
	SyncGroups SyncMode = "groups"
)

// IsRelativePath reports whether path uses the explicit relative form the
// config schema requires ("./..." or "../...").
func IsRelativePath(path string) bool {
	return strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../")
}

// Config is an assembled release-hub configuration. Enabled targets are
// kept as an ordered list; the sparse {"target": true} map only exists in
// the serialized form.
type Config struct {
	ReleaseType ReleaseType
	Targets     []Target          // enabled targets, in selection order
	Paths       map[Target]string // keys are exactly the enabled targets
	SyncMode    SyncMode
	Groups      [][]Target // sync groups, used when SyncMode is SyncGroups
}

func (c Config) clone() Config {
	out := c
	out.Targets = append([]Target(nil), c.Targets...)
	out.Paths = make(map[Target]string, len(c.Paths))
	for k, v := range c.Paths {
		out.Paths[k] = v
	}
	out.Groups = make([][]Target, len(c.Groups))
	for i, g := range c.Groups {
		out.Groups[i] = append([]Target(nil), g...)
	}
	return out
}
