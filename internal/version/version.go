// Package version holds build metadata injected with -ldflags -X.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

var (
	// Version is the release version, e.g. -X github.com/jmylchreest/tonal/internal/version.Version=1.2.0.
	Version = "dev"

	// Commit is the git commit of the build, e.g. -X ...version.Commit=$(git rev-parse HEAD).
	Commit = "unknown"

	// Date is the RFC3339 build time, e.g. -X ...version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ).
	Date = "unknown"

	// GoVersion is the toolchain the binary was built with.
	GoVersion = runtime.Version()
)

// Info is the build metadata.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build metadata.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// IsRelease reports whether Version is a semantic version rather than a
// development build.
func IsRelease() bool {
	_, err := semver.StrictNewVersion(Version)
	return err == nil
}

// String returns the line printed by `tonal version`.
func String() string {
	info := GetInfo()
	if Commit == "unknown" || Date == "unknown" {
		return fmt.Sprintf("tonal version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	commit := info.Commit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	return fmt.Sprintf("tonal version %s (commit: %s, built: %s, %s, %s)",
		info.Version, commit, info.Date, info.GoVersion, info.Platform)
}

// Short returns Version.
func Short() string {
	return Version
}
