package app

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit may be set with -ldflags "-X". When Commit is left
// empty it is taken from the VCS stamp of the build.
var (
	Version = "dev"
	Commit  = ""
)

// BuildVersion formats the version for startup logs and the health probe.
func BuildVersion() string {
	commit, modified := Commit, false
	if commit == "" {
		commit, modified = vcsRevision()
	}
	if commit == "" {
		return Version
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}

func vcsRevision() (rev string, modified bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return rev, modified
}
