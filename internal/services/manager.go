// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/venuepulse/footfall-tui/internal/config"
	"github.com/venuepulse/footfall-tui/internal/db"
	"github.com/venuepulse/footfall-tui/internal/engine"
	"github.com/venuepulse/footfall-tui/internal/feed"
	"github.com/venuepulse/footfall-tui/internal/logger"
	"github.com/venuepulse/footfall-tui/internal/models"
	"github.com/venuepulse/footfall-tui/internal/weather"
)

type (
	// DatasetLoadedEvent is emitted when a dataset load or reload completes.
	DatasetLoadedEvent struct {
		Dataset     *engine.Dataset
		FromCache   bool
		WeatherDays int
		LoadedAt    time.Time
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (DatasetLoadedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()         {}

// Manager owns dataset construction and reload. Aggregation stays in the
// engine package; the manager's job is fetching inputs (feed file, weather
// API, snapshot cache), building the immutable dataset, and broadcasting a
// single load-completion event that all tabs consume; nobody polls.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	database    *db.DB
	weather     *weather.Client
	watcher     *feed.Watcher
	hours       models.OpeningHours
	dataset     *engine.Dataset
	loadedAt    time.Time
	fromCache   bool
	eventChan   chan ServiceEvent
	stopChan    chan struct{}
	subscribers []chan<- ServiceEvent
	readyOnce   sync.Once
	ready       chan struct{}
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		cfg:       cfg,
		hours:     models.DefaultOpeningHours(),
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
		ready:     make(chan struct{}),
	}

	var err error
	m.database, err = db.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot cache: %w", err)
	}

	m.weather = weather.New(cfg.WeatherBaseURL, cfg.VenueLatitude, cfg.VenueLongitude)

	m.watcher, err = feed.NewWatcher(cfg.FeedPath, func() {
		logger.Info("feed file changed, reloading")
		m.Reload(context.Background())
	})
	if err != nil {
		// The watcher is a convenience; without it reloads still happen on
		// keypress and timer.
		logger.Warn("feed watcher unavailable", "error", err)
	}

	go m.routeEvents()

	return m, nil
}

// Load builds the dataset: feed rows (file, falling back to the cache),
// weather (API, falling back to the cache), daily/hourly aggregation. It
// never fails outright: the dashboard shows whatever partial state exists.
func (m *Manager) Load(ctx context.Context) *engine.Dataset {
	rows, fromCache := m.loadRows()
	weatherByDate := m.loadWeather(ctx, rows)

	ds := engine.NewDataset(rows, m.hours, weatherByDate)

	m.mu.Lock()
	m.dataset = ds
	m.loadedAt = time.Now()
	m.fromCache = fromCache
	m.mu.Unlock()

	m.readyOnce.Do(func() { close(m.ready) })

	m.publish(DatasetLoadedEvent{
		Dataset:     ds,
		FromCache:   fromCache,
		WeatherDays: len(weatherByDate),
		LoadedAt:    time.Now(),
	})

	logger.Info("dataset loaded",
		"rows", ds.Len(), "days", ds.DayCount(),
		"weatherDays", len(weatherByDate), "fromCache", fromCache)
	return ds
}

// Reload re-runs Load and raises a desktop notification on failure to read
// any fresh data.
func (m *Manager) Reload(ctx context.Context) {
	ds := m.Load(ctx)
	if ds.Len() == 0 {
		if err := beeep.Alert("Footfall", "Feed reload produced no data", ""); err != nil {
			logger.Debug("desktop notification failed", "error", err)
		}
	}
}

func (m *Manager) loadRows() (rows []models.SensorRow, fromCache bool) {
	rows, err := feed.ParseFile(m.cfg.FeedPath)
	if err == nil {
		if cacheErr := m.database.ReplaceSensorRows(rows); cacheErr != nil {
			logger.Warn("failed to cache feed snapshot", "error", cacheErr)
		}
		return rows, false
	}

	logger.Error("failed to read feed, falling back to cache", "error", err)
	m.publish(ErrorEvent{Service: "feed", Error: err})

	rows, cacheErr := m.database.LoadSensorRows()
	if cacheErr != nil {
		logger.Error("snapshot cache unavailable", "error", cacheErr)
		m.publish(ErrorEvent{Service: "cache", Error: cacheErr})
		return nil, false
	}
	return rows, true
}

func (m *Manager) loadWeather(ctx context.Context, rows []models.SensorRow) map[string]*models.DayWeather {
	if len(rows) == 0 {
		return nil
	}

	first, last := rows[0].Timestamp, rows[0].Timestamp
	for _, row := range rows {
		if row.Timestamp.Before(first) {
			first = row.Timestamp
		}
		if row.Timestamp.After(last) {
			last = row.Timestamp
		}
	}

	fetched, err := m.weather.FetchRange(ctx, first, last)
	if err == nil {
		if cacheErr := m.database.UpsertDayWeather(fetched); cacheErr != nil {
			logger.Warn("failed to cache weather", "error", cacheErr)
		}
		return fetched
	}

	logger.Error("weather fetch failed, falling back to cache", "error", err)
	m.publish(ErrorEvent{Service: "weather", Error: err})

	cached, cacheErr := m.database.LoadDayWeather()
	if cacheErr != nil {
		logger.Error("weather cache unavailable", "error", cacheErr)
		return nil
	}
	return cached
}

// Dataset returns the current dataset handle, or nil before the first load.
func (m *Manager) Dataset() *engine.Dataset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dataset
}

// LoadedAt returns the time of the last completed load and whether it came
// from the snapshot cache.
func (m *Manager) LoadedAt() (time.Time, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadedAt, m.fromCache
}

// Ready returns a channel closed once the first load completes. This is the
// single load-completion signal dependent components wait on.
func (m *Manager) Ready() <-chan struct{} {
	return m.ready
}

// SnapshotStats reports cache bounds for the info tab.
func (m *Manager) SnapshotStats() (*db.SnapshotStats, error) {
	return m.database.CachedRange()
}

// CachedWeekdayTotals reports cached per-weekday visitor sums.
func (m *Manager) CachedWeekdayTotals() ([7]int, error) {
	return m.database.WeekdayVisitorTotals()
}

// OpeningHours returns the venue schedule in effect.
func (m *Manager) OpeningHours() models.OpeningHours {
	return m.hours
}

// Database returns the database instance for direct access.
func (m *Manager) Database() *db.DB {
	return m.database
}

func (m *Manager) publish(event ServiceEvent) {
	select {
	case m.eventChan <- event:
	default:
		// Event buffer full, drop rather than block a load.
	}
}

// routeEvents routes events from the manager to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.eventChan:
			m.mu.RLock()
			for _, sub := range m.subscribers {
				select {
				case sub <- event:
				default:
					// Subscriber channel full, skip
				}
			}
			m.mu.RUnlock()

		case <-m.stopChan:
			return
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, WaitForEvent(ch)
}

// WaitForEvent returns a tea.Cmd that waits for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	var errs []error

	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if m.database != nil {
		if err := m.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
