// Package version exposes build metadata stamped into the binary.
package version

import "runtime"

// Stamped at build time via -ldflags "-X .../version.Version=...". The zero
// values identify an unstamped development build.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info describes the running build. The readiness endpoint reports it so a
// deployment can be matched to its commit.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}
