// Package logger provides a simple wrapper around slog for structured logging.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu sync.RWMutex

	// Logger is the shared logger instance. It writes to stderr until the
	// TUI takes over the terminal, after which SetFile redirects it.
	Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	logFile *os.File
)

// SetFile redirects logging to the given file path. The TUI owns stdout and
// stderr while running, so everything after startup goes to a file.
func SetFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	Logger = slog.New(slog.NewTextHandler(f, nil))
	return nil
}

// SetOutput points the logger at an arbitrary writer. Used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	Logger = slog.New(slog.NewTextHandler(w, nil))
}

// Close closes the log file if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return Logger
}

// Error logs an error message.
func Error(msg string, args ...any) {
	current().Error(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}
