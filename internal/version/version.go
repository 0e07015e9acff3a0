// Package version holds the build metadata of the swatch binary, set with
// -ldflags "-X github.com/jmylchreest/swatch/internal/version.Version=x.y.z".
package version

import (
	"fmt"
	"runtime"
)

const unknown = "unknown"

var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// Info describes one build. It is what "swatch version --json" prints.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the running binary's build information. Commit and date
// are left empty for builds without ldflags.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if Commit != unknown {
		info.Commit = Commit
	}
	if Date != unknown {
		info.Date = Date
	}
	return info
}

// String formats info on one line, abbreviating the commit hash.
func (info Info) String() string {
	if info.Commit == "" || info.Date == "" {
		return fmt.Sprintf("swatch version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	commit := info.Commit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	return fmt.Sprintf("swatch version %s (commit: %s, built: %s, %s, %s)",
		info.Version, commit, info.Date, info.GoVersion, info.Platform)
}

// String returns the one line version of the running binary.
func String() string {
	return GetInfo().String()
}

// Short returns the bare version, as shown by --version.
func Short() string {
	return Version
}
