// Package version reports build information for the astgen binary.
package version

import (
	"fmt"
	"runtime"
)

// Build information, set at build time via ldflags:
//
//	go build -ldflags "-X github.com/teranos/astgen/version.Version=v1.2.0"
var (
	CommitHash = "dev"
	BuildTime  = "unknown"
	Version    = "dev"
)

// DescriptionVersions is the range of structured description versions this
// build reads.
const DescriptionVersions = "^1"

// Info contains version and build information
type Info struct {
	Version             string `json:"version"`
	CommitHash          string `json:"commit_hash"`
	BuildTime           string `json:"build_time"`
	DescriptionVersions string `json:"description_versions"`
	GoVersion           string `json:"go_version"`
	Platform            string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		Version:             Version,
		CommitHash:          CommitHash,
		BuildTime:           BuildTime,
		DescriptionVersions: DescriptionVersions,
		GoVersion:           runtime.Version(),
		Platform:            fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	return fmt.Sprintf("astgen %s (commit %s, built %s)", i.Version, i.Short(), i.BuildTime)
}

// Short returns the abbreviated commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
