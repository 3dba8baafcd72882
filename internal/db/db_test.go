package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/venuepulse/footfall-tui/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	database, err := New(path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func sampleRows() []models.SensorRow {
	return []models.SensorRow{
		{
			Timestamp:  time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
			VisitorsIn: 10, VisitorsOut: 8,
			RawMenIn: 6, RawWomenIn: 5,
			GroupIn: 2, Passersby: 50,
		},
		{
			Timestamp:  time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC),
			VisitorsIn: 20, VisitorsOut: 18,
			Passersby: 60,
		},
	}
}

func TestNew(t *testing.T) {
	database := newTestDB(t)
	if database.Path() == "" {
		t.Error("expected non-empty database path")
	}
}

func TestSensorRowsRoundTrip(t *testing.T) {
	database := newTestDB(t)

	if err := database.ReplaceSensorRows(sampleRows()); err != nil {
		t.Fatalf("ReplaceSensorRows failed: %v", err)
	}

	loaded, err := database.LoadSensorRows()
	if err != nil {
		t.Fatalf("LoadSensorRows failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(loaded))
	}

	first := loaded[0]
	if !first.Timestamp.Equal(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("timestamp = %v, want 2024-01-15 08:00", first.Timestamp)
	}
	if first.VisitorsIn != 10 || first.RawMenIn != 6 || first.Passersby != 50 {
		t.Errorf("row fields wrong: %+v", first)
	}
}

func TestReplaceSensorRows_ReplacesPrevious(t *testing.T) {
	database := newTestDB(t)

	if err := database.ReplaceSensorRows(sampleRows()); err != nil {
		t.Fatal(err)
	}
	replacement := []models.SensorRow{{
		Timestamp:  time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		VisitorsIn: 5,
	}}
	if err := database.ReplaceSensorRows(replacement); err != nil {
		t.Fatal(err)
	}

	loaded, err := database.LoadSensorRows()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0].VisitorsIn != 5 {
		t.Errorf("snapshot not replaced: %+v", loaded)
	}
}

func TestDayWeatherRoundTrip(t *testing.T) {
	database := newTestDB(t)

	weather := map[string]*models.DayWeather{
		"2024-01-15": {
			Date:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Code:          61,
			Temperature:   4.5,
			Precipitation: 3.1,
			WindSpeed:     22,
		},
	}
	if err := database.UpsertDayWeather(weather); err != nil {
		t.Fatalf("UpsertDayWeather failed: %v", err)
	}

	// Upsert again with new values: must update, not duplicate.
	weather["2024-01-15"].Temperature = 6.0
	if err := database.UpsertDayWeather(weather); err != nil {
		t.Fatal(err)
	}

	loaded, err := database.LoadDayWeather()
	if err != nil {
		t.Fatalf("LoadDayWeather failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 weather day, got %d", len(loaded))
	}
	if loaded["2024-01-15"].Temperature != 6.0 || loaded["2024-01-15"].Code != 61 {
		t.Errorf("weather round trip wrong: %+v", loaded["2024-01-15"])
	}
}

func TestCachedRange(t *testing.T) {
	database := newTestDB(t)

	stats, err := database.CachedRange()
	if err != nil {
		t.Fatalf("CachedRange on empty cache failed: %v", err)
	}
	if stats.RowCount != 0 {
		t.Errorf("empty cache RowCount = %d, want 0", stats.RowCount)
	}

	if err := database.ReplaceSensorRows(sampleRows()); err != nil {
		t.Fatal(err)
	}
	stats, err = database.CachedRange()
	if err != nil {
		t.Fatal(err)
	}
	if stats.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", stats.RowCount)
	}
	if stats.First.Day() != 15 || stats.Last.Day() != 16 {
		t.Errorf("range = %v..%v, want Jan 15..16", stats.First, stats.Last)
	}
}

func TestWeekdayVisitorTotals(t *testing.T) {
	database := newTestDB(t)

	// 2024-01-15 is a Monday (1), 2024-01-16 a Tuesday (2).
	if err := database.ReplaceSensorRows(sampleRows()); err != nil {
		t.Fatal(err)
	}

	totals, err := database.WeekdayVisitorTotals()
	if err != nil {
		t.Fatalf("WeekdayVisitorTotals failed: %v", err)
	}
	if totals[1] != 10 {
		t.Errorf("monday total = %d, want 10", totals[1])
	}
	if totals[2] != 20 {
		t.Errorf("tuesday total = %d, want 20", totals[2])
	}
	if totals[0] != 0 {
		t.Errorf("sunday total = %d, want 0", totals[0])
	}
}
