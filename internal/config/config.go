// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	FeedPath            string
	DatabasePath        string
	WeatherBaseURL      string
	VenueLatitude       float64
	VenueLongitude      float64
	FeedRefreshInterval time.Duration
	LogPath             string
}

// Default values
const (
	defaultFeedRefreshInterval = 5 * time.Minute

	// Oslo city centre; overridden per venue via VENUE_LAT / VENUE_LON.
	defaultLatitude  = 59.9139
	defaultLongitude = 10.7522
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		FeedPath:            getEnvString("FOOTFALL_FEED_PATH", ""),
		DatabasePath:        getEnvString("DATABASE_PATH", getDefaultDatabasePath()),
		WeatherBaseURL:      getEnvString("WEATHER_API_URL", ""),
		VenueLatitude:       getEnvFloat("VENUE_LAT", defaultLatitude),
		VenueLongitude:      getEnvFloat("VENUE_LON", defaultLongitude),
		FeedRefreshInterval: getEnvDuration("FEED_REFRESH_INTERVAL", defaultFeedRefreshInterval),
		LogPath:             getEnvString("LOG_PATH", getDefaultLogPath()),
	}

	if cfg.FeedPath == "" {
		return nil, fmt.Errorf("FOOTFALL_FEED_PATH is required (path to the people-counter CSV export)")
	}

	if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
		return nil, err
	}
	if err := ensureDir(filepath.Dir(cfg.LogPath)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "footfall", ".env"),
			filepath.Join(home, ".footfall", ".env"),
		)
	}

	return paths
}

// getDefaultDatabasePath returns the default path for the snapshot cache.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "footfall.db"
	}
	return filepath.Join(home, ".config", "footfall", "footfall.db")
}

// getDefaultLogPath returns the default log file path. Logging goes to a
// file because the TUI owns the terminal.
func getDefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "footfall.log"
	}
	return filepath.Join(home, ".config", "footfall", "footfall.log")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "5m", "1h".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
