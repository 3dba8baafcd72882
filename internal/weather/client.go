// Package weather fetches daily-resolution historical weather for the venue.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/venuepulse/footfall-tui/internal/logger"
	"github.com/venuepulse/footfall-tui/internal/models"
)

// DefaultBaseURL is the Open-Meteo historical archive endpoint.
const DefaultBaseURL = "https://archive-api.open-meteo.com/v1/archive"

const requestTimeout = 15 * time.Second

// Client queries a daily weather API by venue coordinates and date range.
type Client struct {
	baseURL    string
	latitude   float64
	longitude  float64
	httpClient *http.Client
}

// New creates a weather client for the given venue coordinates. An empty
// baseURL selects the default endpoint.
func New(baseURL string, latitude, longitude float64) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		latitude:   latitude,
		longitude:  longitude,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// response mirrors the API's parallel-array shape: every daily field is an
// array indexed positionally by day offset from the requested start date.
type response struct {
	Daily struct {
		Time          []string  `json:"time"`
		WeatherCode   []int     `json:"weathercode"`
		Temperature   []float64 `json:"temperature_2m_max"`
		Precipitation []float64 `json:"precipitation_sum"`
		WindSpeed     []float64 `json:"windspeed_10m_max"`
	} `json:"daily"`
}

// FetchRange returns daily weather keyed by ISO date ("2006-01-02") for the
// inclusive [start, end] range. The arrays are assumed contiguous and
// gap-free for the requested range; entries whose parallel arrays run short
// are skipped rather than guessed.
func (c *Client) FetchRange(ctx context.Context, start, end time.Time) (map[string]*models.DayWeather, error) {
	req, err := c.buildRequest(ctx, start, end)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	return c.mapByDate(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, start, end time.Time) (*http.Request, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", c.latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", c.longitude))
	params.Set("start_date", start.Format("2006-01-02"))
	params.Set("end_date", end.Format("2006-01-02"))
	params.Set("daily", "weathercode,temperature_2m_max,precipitation_sum,windspeed_10m_max")
	params.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}
	return req, nil
}

func (c *Client) mapByDate(payload response) map[string]*models.DayWeather {
	daily := payload.Daily
	result := make(map[string]*models.DayWeather, len(daily.Time))

	for i, dateStr := range daily.Time {
		if i >= len(daily.WeatherCode) || i >= len(daily.Temperature) ||
			i >= len(daily.Precipitation) || i >= len(daily.WindSpeed) {
			logger.Warn("weather response arrays shorter than time axis", "index", i)
			break
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			logger.Warn("unparseable date in weather response", "date", dateStr)
			continue
		}
		result[dateStr] = &models.DayWeather{
			Date:          date,
			Code:          daily.WeatherCode[i],
			Temperature:   daily.Temperature[i],
			Precipitation: daily.Precipitation[i],
			WindSpeed:     daily.WindSpeed[i],
		}
	}
	return result
}
