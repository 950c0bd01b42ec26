// Package version provides version information and build metadata for poncoocr.
// The variables are set during the build process with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// AppVersion represents the application version, set during build.
	AppVersion = ""
	// GitCommit represents the git commit hash, set during build.
	GitCommit = ""
	// BuildDate represents the build date, set during build.
	BuildDate = ""
)

func init() {
	if len(AppVersion) == 0 {
		AppVersion = "dev"
	}
	if len(GitCommit) == 0 {
		GitCommit = "unknown"
	}
	if len(BuildDate) == 0 {
		BuildDate = "unknown"
	}
}

// Info is the build metadata of the running binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build metadata.
func Get() Info {
	return Info{
		Version:   AppVersion,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Version returns a formatted version string with build information.
func Version() string {
	info := Get()
	return fmt.Sprintf(
		"Version %s (%s)\nCompiled at %s using Go %s (%s)",
		info.Version,
		info.GitCommit,
		info.BuildDate,
		info.GoVersion,
		info.Platform,
	)
}
