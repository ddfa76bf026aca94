package version

import (
	"runtime/debug"
	"testing"
)

func TestGetVersion(t *testing.T) {
	origVersion, origRead := version, readBuildInfo
	t.Cleanup(func() {
		version, readBuildInfo = origVersion, origRead
	})

	tests := []struct {
		name    string
		ldflags string
		info    *debug.BuildInfo
		want    string
	}{
		{"ldflags wins", "1.2.3", &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}}, "1.2.3"},
		{"module version", "", &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}}, "v0.9.0"},
		{"devel build", "", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, "dev"},
		{"no build info", "", nil, "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version = tt.ldflags
			readBuildInfo = func() (*debug.BuildInfo, bool) {
				return tt.info, tt.info != nil
			}

			if got := GetVersion(); got != tt.want {
				t.Errorf("GetVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
