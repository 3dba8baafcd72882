// Package version provides build version information and runtime metadata.
package version

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// These are set via ldflags at build time
	Version = ""
	Commit  = ""
	Date    = ""

	once sync.Once
)

func ensureInitialized() {
	once.Do(func() {
		if Date == "" {
			Date = time.Now().Format("2006-01-02")
		}
		if Commit == "" {
			Commit = gitDescribe("--always", "--dirty")
		}
		if Version == "" {
			Version = gitVersion()
		}
	})
}

func gitDescribe(args ...string) string {
	cmd := exec.Command("git", append([]string{"describe"}, args...)...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out.String())
}

func gitVersion() string {
	v := gitDescribe("--tags", "--abbrev=0")
	if v != "" && v != "unknown" {
		return strings.TrimPrefix(v, "v")
	}
	return "dev"
}

// Short returns just the version string, e.g. "1.2.0" or "dev".
func Short() string {
	ensureInitialized()
	return Version
}

// Info returns the full build banner for --version output and the info tab.
func Info() string {
	ensureInitialized()
	return fmt.Sprintf("footfall-tui %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
