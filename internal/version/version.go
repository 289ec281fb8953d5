// Package version carries build metadata injected via -ldflags.
package version

var (
	// Version is the semantic version of this build.
	Version = "0.3.0"
	// Commit is the VCS revision, when known.
	Commit = ""
	// BuildDate is the build timestamp, when known.
	BuildDate = ""
)
