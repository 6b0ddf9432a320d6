// Package pkgmanager identifies which JavaScript package manager governs a
// project and runs its install command.
package pkgmanager

import (
	"os"
	"strings"

	"github.com/teneplaysofficial/create-release-hub/internal/project"
)

// PackageManager identifies a JavaScript package manager.
type PackageManager string

const (
	Npm  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	Pnpm PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// String returns the string representation of the package manager.
func (pm PackageManager) String() string {
	return string(pm)
}

// IsValid returns true if pm is a known package manager.
func (pm PackageManager) IsValid() bool {
	switch pm {
	case Npm, Yarn, Pnpm, Bun:
		return true
	default:
		return false
	}
}

// Parse converts a string to a PackageManager, reporting whether it names a
// known identity.
func Parse(s string) (PackageManager, bool) {
	pm := PackageManager(s)
	return pm, pm.IsValid()
}

// userAgentEnv is set by npm-compatible package managers when they spawn
// lifecycle scripts, e.g. "pnpm/9.1.0 npm/? node/v22.0.0 linux x64".
const userAgentEnv = "npm_config_user_agent"

// probe inspects the project for one detection signal. A probe reports
// (identity, true) when its signal is present and falls through otherwise.
// Probes never fail: unreadable inputs count as an absent signal.
type probe func(ctx *project.Context) (PackageManager, bool)

// probes is the detection chain, strongest signal first: lockfiles reflect
// what actually ran, the packageManager manifest field is an explicit
// declaration, and the user agent is a weaker runtime hint.
var probes = []probe{
	lockfileProbe("pnpm-lock.yaml", Pnpm),
	lockfileProbe("yarn.lock", Yarn),
	lockfileProbe("bun.lock", Bun),
	lockfileProbe("bun.lockb", Bun),
	lockfileProbe("package-lock.json", Npm),
	manifestProbe,
	userAgentProbe,
}

// Detect returns the package manager governing the project, falling back to
// npm when no signal is present.
func Detect(ctx *project.Context) PackageManager {
	for _, p := range probes {
		if pm, ok := p(ctx); ok {
			return pm
		}
	}
	return Npm
}

func lockfileProbe(name string, pm PackageManager) probe {
	return func(ctx *project.Context) (PackageManager, bool) {
		if ctx.HasFile(name) {
			return pm, true
		}
		return "", false
	}
}

// manifestProbe reads the "packageManager" manifest field ("name@version")
// and takes the name before the "@" when it is a known identity.
func manifestProbe(ctx *project.Context) (PackageManager, bool) {
	field, ok := ctx.ManifestField("packageManager")
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(field.String(), "@")
	return Parse(name)
}

// userAgentProbe matches the npm_config_user_agent prefix against known
// package manager names.
func userAgentProbe(_ *project.Context) (PackageManager, bool) {
	agent := os.Getenv(userAgentEnv)
	if agent == "" {
		return "", false
	}
	for _, pm := range []PackageManager{Pnpm, Yarn, Bun, Npm} {
		if strings.HasPrefix(agent, pm.String()) {
			return pm, true
		}
	}
	return "", false
}
