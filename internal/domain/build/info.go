// Package build holds build information injected via ldflags.
package build

import "runtime"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// NewInfo fills GoVersion from the running binary.
func NewInfo(version, commit, buildDate string) Info {
	return Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/tabmaster"
}
