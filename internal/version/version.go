package version

// version is overridable at build time via
// -ldflags "-X github.com/teneplaysofficial/create-release-hub/internal/version.version=x.y.z".
var version = "0.1.0"

// GetVersion returns the current create-release-hub version.
func GetVersion() string {
	return version
}
