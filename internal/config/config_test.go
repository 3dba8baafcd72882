package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_RequiresFeedPath(t *testing.T) {
	t.Setenv("FOOTFALL_FEED_PATH", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when FOOTFALL_FEED_PATH is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FOOTFALL_FEED_PATH", filepath.Join(dir, "feed.csv"))
	t.Setenv("DATABASE_PATH", filepath.Join(dir, "cache.db"))
	t.Setenv("LOG_PATH", filepath.Join(dir, "footfall.log"))
	t.Setenv("VENUE_LAT", "")
	t.Setenv("VENUE_LON", "")
	t.Setenv("WEATHER_API_URL", "")
	t.Setenv("FEED_REFRESH_INTERVAL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.VenueLatitude != defaultLatitude || cfg.VenueLongitude != defaultLongitude {
		t.Errorf("default coordinates wrong: %v, %v", cfg.VenueLatitude, cfg.VenueLongitude)
	}
	if cfg.FeedRefreshInterval != defaultFeedRefreshInterval {
		t.Errorf("default refresh interval = %v", cfg.FeedRefreshInterval)
	}
	if cfg.WeatherBaseURL != "" {
		t.Errorf("expected empty weather base URL (client picks its default), got %q", cfg.WeatherBaseURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FOOTFALL_FEED_PATH", filepath.Join(dir, "feed.csv"))
	t.Setenv("DATABASE_PATH", filepath.Join(dir, "cache.db"))
	t.Setenv("LOG_PATH", filepath.Join(dir, "footfall.log"))
	t.Setenv("VENUE_LAT", "48.8566")
	t.Setenv("VENUE_LON", "2.3522")
	t.Setenv("FEED_REFRESH_INTERVAL", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.VenueLatitude != 48.8566 || cfg.VenueLongitude != 2.3522 {
		t.Errorf("coordinates = %v, %v", cfg.VenueLatitude, cfg.VenueLongitude)
	}
	if cfg.FeedRefreshInterval != 30*time.Second {
		t.Errorf("refresh interval = %v, want 30s", cfg.FeedRefreshInterval)
	}
}

func TestGetEnvDuration_PlainSeconds(t *testing.T) {
	t.Setenv("TEST_DURATION", "45")
	if got := getEnvDuration("TEST_DURATION", time.Minute); got != 45*time.Second {
		t.Errorf("plain seconds = %v, want 45s", got)
	}

	t.Setenv("TEST_DURATION", "bogus")
	if got := getEnvDuration("TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("invalid duration must fall back to default, got %v", got)
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "12.5")
	if got := getEnvFloat("TEST_FLOAT", 1); got != 12.5 {
		t.Errorf("getEnvFloat = %v, want 12.5", got)
	}
	t.Setenv("TEST_FLOAT", "not-a-number")
	if got := getEnvFloat("TEST_FLOAT", 1); got != 1 {
		t.Errorf("invalid float must fall back to default, got %v", got)
	}
}
