package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "key=value") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestSetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	if err := SetFile(path); err != nil {
		t.Fatalf("SetFile failed: %v", err)
	}
	defer func() {
		_ = Close()
		SetOutput(os.Stderr)
	}()

	Warn("file sink works")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "file sink works") {
		t.Errorf("log file missing entry: %q", string(data))
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Error("e")
	Warn("w")
	Info("i")

	out := buf.String()
	for _, level := range []string{"ERROR", "WARN", "INFO"} {
		if !strings.Contains(out, level) {
			t.Errorf("expected %s entry in output: %q", level, out)
		}
	}
}
