// Package version reports what build of vibrant is running.
// Release builds inject the values with ldflags; other builds fall back to
// the module and VCS data the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const unknown = "unknown"

// Injected via -ldflags "-X github.com/jmylchreest/vibrant/internal/version.Version=x.y.z"
// and likewise for Commit and Date.
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build information, preferring injected values.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(&info, bi)
	}
	return info
}

// applyBuildInfo fills fields that were not injected from bi.
func applyBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// String formats the info as a single line.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "vibrant version %s", i.Version)
	if i.Commit != unknown {
		fmt.Fprintf(&b, " (commit: %s", shortCommit(i.Commit))
		if i.Modified {
			b.WriteString("-dirty")
		}
		if i.Date != unknown {
			fmt.Fprintf(&b, ", built: %s", i.Date)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(&b, " %s %s", i.GoVersion, i.Platform)
	return b.String()
}

// String returns the running build as a single line.
func String() string {
	return GetInfo().String()
}

// Short returns just the version.
func Short() string {
	return GetInfo().Version
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
