// Package version exposes the tool's own release version.
package version

import "runtime/debug"

// version is set at build time with
// -ldflags "-X github.com/indaco/update-plist/internal/version.version=1.2.3".
var version = ""

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the ldflags version, the module version recorded by
// `go install`, or "dev" when neither is available.
func GetVersion() string {
	if version != "" {
		return version
	}

	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}

	return "dev"
}
