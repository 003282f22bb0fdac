// Package version exposes build metadata injected at link time.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags, e.g.
// -X github.com/mcllerena/R2X/version.Version=v0.3.0
var (
	Version = "dev"
	Commit  = ""
	Built   = ""
)

// Info is the version report the CLI prints.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Built   string `json:"built,omitempty"`
	Runtime string `json:"runtime"`
}

// Get assembles the build report. When the Commit ldflag was not set it
// falls back to the VCS revision stamped by the Go toolchain, so plain
// `go build` binaries still identify themselves.
func Get() Info {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	return Info{
		Version: Version,
		Commit:  commit,
		Built:   Built,
		Runtime: fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}
}

func (i Info) String() string {
	s := fmt.Sprintf("r2x %s", i.Version)
	if i.Commit != "" {
		s += fmt.Sprintf(" (%s)", shorten(i.Commit))
	}
	if i.Built != "" {
		s += " built " + i.Built
	}
	return s
}

func vcsRevision() string {
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range build.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}
	return ""
}

func shorten(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
