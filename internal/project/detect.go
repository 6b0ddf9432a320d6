package project

import (
	"fmt"
	"os"
	"regexp"

	"github.com/teneplaysofficial/create-release-hub/internal/printer"
	"github.com/tidwall/gjson"
)

// configFilePattern matches dedicated release-hub config files, with or
// without a leading dot and an optional .config suffix.
var configFilePattern = regexp.MustCompile(`^\.?release-hub(\.config)?\.(json|js|cjs|mjs|ts|cts|mts)$`)

// HasExistingConfig reports whether the project already carries release-hub
// configuration, either as a dedicated config file or as a truthy
// "release-hub" field in package.json. An unreadable directory or manifest
// counts as "no config".
func HasExistingConfig(ctx *Context) bool {
	entries, err := os.ReadDir(ctx.Dir())
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if configFilePattern.MatchString(entry.Name()) {
				printer.PrintInfo(fmt.Sprintf("Found existing config file %s", entry.Name()))
				return true
			}
		}
	}

	if field, ok := ctx.ManifestField(LibraryName); ok && isTruthy(field) {
		printer.PrintInfo(`Found "release-hub" configuration in package.json`)
		return true
	}

	return false
}

// isTruthy applies JavaScript truthiness to a manifest value: null, false,
// 0 and "" are falsy, everything else (including objects and arrays) is
// truthy.
func isTruthy(value gjson.Result) bool {
	switch value.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return value.Num != 0
	case gjson.String:
		return value.Str != ""
	default:
		return value.Exists()
	}
}
