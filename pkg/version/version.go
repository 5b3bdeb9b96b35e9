// Package version exposes the build version of greenstream.
package version

// Set at build time with
// -ldflags "-X github.com/rshade/greenstream/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version = "dev"
	commit  = ""
)

// GetVersion returns the build version, with the commit when known.
func GetVersion() string {
	if commit == "" {
		return version
	}
	return version + " (" + commit + ")"
}
