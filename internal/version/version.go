// Package version provides build version information.
package version

// Version is the CLI version, overridden at build time via
// -ldflags "-X github.com/solforge/cli/internal/version.Version=...".
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "unknown"

// Info describes the running build.
type Info struct {
	Version string
	Commit  string
}

// GetInfo returns the build information.
func GetInfo() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
	}
}
