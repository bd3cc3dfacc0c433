// Package version reports which tonal build is running. The release
// pipeline sets the variables below with -ldflags "-X"; local builds keep
// the placeholders.
package version

import (
	"fmt"
	"runtime"
)

const unset = "unknown"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the full git hash the binary was built from.
	Commit = unset

	// Date is when the binary was built, RFC3339.
	Date = unset

	// GoVersion is the toolchain that compiled the binary.
	GoVersion = runtime.Version()
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current collects the build variables and the host platform.
func Current() Build {
	return Build{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// released reports whether the release pipeline stamped the binary.
func (b Build) released() bool {
	return b.Commit != unset && b.Date != unset
}

// String is the line printed by `tonal version` and `tonal --version`.
func String() string {
	b := Current()
	if !b.released() {
		return fmt.Sprintf("tonal version %s (%s, %s)", b.Version, b.GoVersion, b.Platform)
	}
	return fmt.Sprintf("tonal version %s (commit: %s, built: %s, %s, %s)",
		b.Version, shortCommit(b.Commit), b.Date, b.GoVersion, b.Platform)
}

// Short is the bare release tag cobra shows for the root command.
func Short() string {
	return Version
}

// shortCommit trims a git hash to eight characters.
func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
