// Package trends provides the long-range trend analysis tab.
package trends

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/venuepulse/footfall-tui/internal/app"
	"github.com/venuepulse/footfall-tui/internal/models"
)

// trendMetrics are the series the metric selector cycles through.
var trendMetrics = []models.Metric{
	models.MetricVisitorsIn,
	models.MetricPassersby,
	models.MetricCaptureRate,
	models.MetricConversion,
	models.MetricDwellTime,
}

// keyMap defines the key bindings specific to the trends tab.
type keyMap struct {
	ToggleRange key.Binding
	ToggleGrain key.Binding
	NextMetric  key.Binding
	PrevMetric  key.Binding
	Weekends    key.Binding
	Up          key.Binding
	Down        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ToggleRange: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle time range"),
		),
		ToggleGrain: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "weekly/monthly"),
		),
		NextMetric: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "next metric"),
		),
		PrevMetric: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "prev metric"),
		),
		Weekends: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "all/weekdays/weekends"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "scroll down"),
		),
	}
}

// dayFilter selects which weekdays contribute to the period tables.
type dayFilter int

const (
	filterAll dayFilter = iota
	filterWeekdays
	filterWeekends
)

func (f dayFilter) String() string {
	switch f {
	case filterWeekdays:
		return "Weekdays"
	case filterWeekends:
		return "Weekends"
	default:
		return "All days"
	}
}

func (f dayFilter) next() dayFilter {
	return (f + 1) % 3
}

var weekendDays = map[time.Weekday]bool{
	time.Saturday: true,
	time.Sunday:   true,
}

var weekdayDays = map[time.Weekday]bool{
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
	time.Friday:    true,
}

// Model represents the trends tab state.
type Model struct {
	state     *app.State
	keys      keyMap
	viewport  viewport.Model
	timeRange models.TimeRange
	grain     models.PeriodKind
	metricIdx int
	filter    dayFilter
	width     int
	height    int
}

// New creates a new trends tab model.
func New(state *app.State) *Model {
	return &Model{
		state:     state,
		keys:      defaultKeyMap(),
		viewport:  viewport.New(80, 20),
		timeRange: models.TimeRange4Weeks,
		grain:     models.PeriodWeek,
	}
}

// Init initializes the trends tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the trends tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleRange):
		m.timeRange = m.timeRange.Next()
	case key.Matches(msg, m.keys.ToggleGrain):
		if m.grain == models.PeriodWeek {
			m.grain = models.PeriodMonth
		} else {
			m.grain = models.PeriodWeek
		}
	case key.Matches(msg, m.keys.NextMetric):
		m.metricIdx = (m.metricIdx + 1) % len(trendMetrics)
	case key.Matches(msg, m.keys.PrevMetric):
		m.metricIdx = (m.metricIdx + len(trendMetrics) - 1) % len(trendMetrics)
	case key.Matches(msg, m.keys.Weekends):
		m.filter = m.filter.next()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// metric returns the currently selected trend metric.
func (m *Model) metric() models.Metric {
	return trendMetrics[m.metricIdx]
}

// windowDays returns the daily records covered by the selected time range,
// newest last.
func (m *Model) windowDays() []models.DailyRecord {
	ds := m.state.Dataset()
	if ds == nil {
		return nil
	}
	if n := m.timeRange.Days(); n > 0 {
		return ds.RecentDays(n)
	}
	return ds.Daily()
}

// SetSize updates the tab dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	m.viewport.Height = height - 2
}

// ShortHelp returns the short help for this tab.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.ToggleRange, m.keys.NextMetric, m.keys.ToggleGrain}
}

// FullHelp returns the full help for this tab.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.ToggleRange, m.keys.ToggleGrain, m.keys.Weekends},
		{m.keys.NextMetric, m.keys.PrevMetric, m.keys.Up, m.keys.Down},
	}
}
