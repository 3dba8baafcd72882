package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleResponse = `{
	"daily": {
		"time": ["2024-01-15", "2024-01-16"],
		"weathercode": [61, 0],
		"temperature_2m_max": [4.5, 7.2],
		"precipitation_sum": [3.1, 0.0],
		"windspeed_10m_max": [22.0, 10.5]
	}
}`

func TestFetchRange(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := New(server.URL, 59.9139, 10.7522)
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	weather, err := client.FetchRange(context.Background(), start, end)
	if err != nil {
		t.Fatalf("FetchRange failed: %v", err)
	}

	if len(weather) != 2 {
		t.Fatalf("expected 2 days of weather, got %d", len(weather))
	}
	day := weather["2024-01-15"]
	if day == nil {
		t.Fatal("missing weather for 2024-01-15")
	}
	if day.Code != 61 || day.Temperature != 4.5 || day.Precipitation != 3.1 || day.WindSpeed != 22.0 {
		t.Errorf("weather mapped wrong: %+v", day)
	}
	if day.Description() != "Rain" {
		t.Errorf("description = %q, want Rain", day.Description())
	}

	if got := gotQuery["start_date"]; len(got) != 1 || got[0] != "2024-01-15" {
		t.Errorf("start_date = %v, want 2024-01-15", got)
	}
	if got := gotQuery["latitude"]; len(got) != 1 || got[0] != "59.9139" {
		t.Errorf("latitude = %v, want 59.9139", got)
	}
}

func TestFetchRange_ShortArrays(t *testing.T) {
	// The time axis is longer than the value arrays: trailing entries are
	// skipped instead of guessed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"daily": {
				"time": ["2024-01-15", "2024-01-16"],
				"weathercode": [61],
				"temperature_2m_max": [4.5],
				"precipitation_sum": [3.1],
				"windspeed_10m_max": [22.0]
			}
		}`))
	}))
	defer server.Close()

	client := New(server.URL, 0, 0)
	weather, err := client.FetchRange(context.Background(),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FetchRange failed: %v", err)
	}
	if len(weather) != 1 {
		t.Errorf("expected only the complete day, got %d entries", len(weather))
	}
}

func TestFetchRange_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, 0, 0)
	_, err := client.FetchRange(context.Background(), time.Now(), time.Now())
	if err == nil {
		t.Fatal("expected error for server failure")
	}
}

func TestFetchRange_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(server.URL, 0, 0)
	if _, err := client.FetchRange(ctx, time.Now(), time.Now()); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
