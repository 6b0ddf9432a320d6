package project

import (
	"fmt"

	"github.com/teneplaysofficial/create-release-hub/internal/printer"
)

// dependencySections are the manifest mappings consulted for the library.
var dependencySections = []string{"dependencies", "devDependencies"}

// IsLibraryInstalled reports whether release-hub is declared in the
// manifest's dependencies or devDependencies. A missing or unreadable
// manifest reports false, with a status message distinguishing it from
// "not installed".
func IsLibraryInstalled(ctx *Context) bool {
	root, ok := ctx.Manifest()
	if !ok {
		printer.PrintFaint(fmt.Sprintf("No readable %s found; assuming %s is not installed.", ManifestFile, LibraryName))
		return false
	}

	for _, section := range dependencySections {
		if root.Get(section).Get(LibraryName).Exists() {
			return true
		}
	}

	printer.PrintFaint(fmt.Sprintf("%s is not listed in dependencies or devDependencies.", LibraryName))
	return false
}
