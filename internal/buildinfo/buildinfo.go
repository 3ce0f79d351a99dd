package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for window titles and logs.
// Without ldflags it falls back to the VCS revision stamped by the go tool.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return shorten(Commit)
	}
	if rev := vcsRevision(); rev != "" {
		return shorten(rev)
	}
	return "dev"
}

// Title formats a window or status title for the named program.
func Title(name string) string {
	return fmt.Sprintf("%s %s", name, Short())
}

// String is the long form printed by -version.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

func shorten(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
