package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, "footfall-tui ") {
		t.Errorf("Info() = %q, want footfall-tui prefix", info)
	}
	if !strings.Contains(info, "commit:") {
		t.Errorf("Info() = %q, want commit field", info)
	}
}

func TestShort(t *testing.T) {
	if Short() == "" {
		t.Error("Short() returned empty string")
	}
}

func TestGitVersionFallback(t *testing.T) {
	// Outside a tagged repo gitVersion falls back to "dev"; inside one it
	// returns the tag without the v prefix. Either way it is never empty.
	if gitVersion() == "" {
		t.Error("gitVersion() returned empty string")
	}
}
