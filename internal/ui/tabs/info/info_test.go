package info

import (
	"strings"
	"testing"
	"time"

	"github.com/venuepulse/footfall-tui/internal/app"
	"github.com/venuepulse/footfall-tui/internal/config"
	"github.com/venuepulse/footfall-tui/internal/engine"
	"github.com/venuepulse/footfall-tui/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		FeedPath:            "/data/feed.csv",
		DatabasePath:        "/data/footfall.db",
		LogPath:             "/data/footfall.log",
		VenueLatitude:       59.9139,
		VenueLongitude:      10.7522,
		FeedRefreshInterval: 5 * time.Minute,
	}
}

func TestViewShowsConfigPaths(t *testing.T) {
	state := app.NewState()
	m := New(state, testConfig(), nil)
	m.SetSize(100, 60)

	view := m.View()
	for _, want := range []string{"/data/feed.csv", "/data/footfall.db", "5m0s", "59.9139"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewShowsOpeningHours(t *testing.T) {
	rows := []models.SensorRow{
		{Timestamp: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), VisitorsIn: 5, VisitorsOut: 5},
	}
	ds := engine.NewDataset(rows, models.DefaultOpeningHours(), nil)
	state := app.NewState()
	state.SetDataset(ds, false)

	m := New(state, testConfig(), nil)
	m.SetSize(100, 80)

	view := m.View()
	if !strings.Contains(view, "Opening Hours") {
		t.Fatal("view missing opening hours card")
	}
	if !strings.Contains(view, "Monday") {
		t.Error("view missing weekday schedule")
	}
}

func TestViewWithoutConfig(t *testing.T) {
	m := New(app.NewState(), nil, nil)
	m.SetSize(100, 40)

	if !strings.Contains(m.View(), "Configuration not loaded") {
		t.Error("nil config should render a placeholder")
	}
}

func TestViewShowsVersion(t *testing.T) {
	m := New(app.NewState(), testConfig(), nil)
	m.SetSize(100, 60)

	if !strings.Contains(m.View(), "footfall-tui") {
		t.Error("about card should include the build banner")
	}
}
