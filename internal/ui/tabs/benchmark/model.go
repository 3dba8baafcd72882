// Package benchmark provides the comparison tab: the selected day against
// its historical weekday profile, and recent periods against each other.
package benchmark

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/venuepulse/footfall-tui/internal/app"
	"github.com/venuepulse/footfall-tui/internal/engine"
	"github.com/venuepulse/footfall-tui/internal/models"
)

// compareMode selects what the benchmark cards compare against.
type compareMode int

const (
	// modeWeekdayAvg compares the selected day against the historical
	// average for that weekday.
	modeWeekdayAvg compareMode = iota
	// modePrevDay compares the selected day against the day before it.
	modePrevDay
	// modePrevWeek compares the two most recent ISO weeks.
	modePrevWeek
	// modePrevMonth compares the two most recent calendar months.
	modePrevMonth
)

func (c compareMode) String() string {
	switch c {
	case modePrevDay:
		return "Day vs previous day"
	case modePrevWeek:
		return "Week vs previous week"
	case modePrevMonth:
		return "Month vs previous month"
	default:
		return "Day vs weekday average"
	}
}

func (c compareMode) next() compareMode {
	return (c + 1) % 4
}

// keyMap defines the key bindings specific to the benchmark tab.
type keyMap struct {
	Mode       key.Binding
	NextDay    key.Binding
	PrevDay    key.Binding
	RangeStart key.Binding
	RangeEnd   key.Binding
	Up         key.Binding
	Down       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Mode: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comparison mode"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("l", "right", "n"),
			key.WithHelp("l/→", "next day"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("h", "left", "p"),
			key.WithHelp("h/←", "prev day"),
		),
		RangeStart: key.NewBinding(
			key.WithKeys("[", "]"),
			key.WithHelp("[/]", "custom range start"),
		),
		RangeEnd: key.NewBinding(
			key.WithKeys("{", "}"),
			key.WithHelp("{/}", "custom range end"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "scroll down"),
		),
	}
}

// Model represents the benchmark tab state.
type Model struct {
	state    *app.State
	keys     keyMap
	viewport viewport.Model
	mode     compareMode

	// Inclusive hour bounds of the adjustable custom capture window.
	customStart int
	customEnd   int

	width  int
	height int
}

// New creates a new benchmark tab model.
func New(state *app.State) *Model {
	return &Model{
		state:       state,
		keys:        defaultKeyMap(),
		viewport:    viewport.New(80, 20),
		customStart: 7,
		customEnd:   20,
	}
}

// Init initializes the benchmark tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the benchmark tab.
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
	case key.Matches(msg, m.keys.Mode):
		m.mode = m.mode.next()
	case key.Matches(msg, m.keys.NextDay):
		m.moveDay(1)
	case key.Matches(msg, m.keys.PrevDay):
		m.moveDay(-1)
	case msg.String() == "[":
		m.adjustCustomRange(-1, 0)
	case msg.String() == "]":
		m.adjustCustomRange(1, 0)
	case msg.String() == "{":
		m.adjustCustomRange(0, -1)
	case msg.String() == "}":
		m.adjustCustomRange(0, 1)
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// adjustCustomRange shifts the custom window bounds, kept inside 0-23 with
// start never passing end.
func (m *Model) adjustCustomRange(dStart, dEnd int) {
	start := m.customStart + dStart
	end := m.customEnd + dEnd
	if start < 0 || end > 23 || start > end {
		return
	}
	m.customStart = start
	m.customEnd = end
}

func (m *Model) moveDay(delta int) {
	ds := m.state.Dataset()
	if ds == nil || ds.DayCount() == 0 {
		return
	}
	days := ds.Daily()
	idx := m.selectedIndex(days) + delta
	if idx < 0 || idx >= len(days) {
		return
	}
	m.state.SetSelectedDate(days[idx].Date)
}

func (m *Model) selectedIndex(days []models.DailyRecord) int {
	selected := m.state.SelectedDate()
	for i := range days {
		if sameDate(days[i].Date, selected) {
			return i
		}
	}
	return len(days) - 1
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// comparisons builds the benchmark rows for the current mode. The second
// return names the comparison target for the card subtitle.
func (m *Model) comparisons() ([]models.BenchmarkComparison, string) {
	ds := m.state.Dataset()
	if ds == nil || ds.DayCount() == 0 {
		return nil, ""
	}

	switch m.mode {
	case modePrevDay:
		days := ds.Daily()
		idx := m.selectedIndex(days)
		if idx == 0 {
			return nil, ""
		}
		day, prev := days[idx], days[idx-1]
		cmps := engine.BenchmarkDiff(&day, &prev, models.BenchmarkMetrics)
		return cmps, prev.Date.Format("Monday, Jan 2")
	case modePrevWeek:
		return periodComparisons(engine.WeeklyAggregates(ds.Daily(), nil))
	case modePrevMonth:
		return periodComparisons(engine.MonthlyAggregates(ds.Daily(), nil))
	default:
		days := ds.Daily()
		day := days[m.selectedIndex(days)]
		profile := engine.MetricValues(engine.WeekdayAggregate(days, day.Weekday()))
		cmps := engine.BenchmarkDiff(&day, profile, models.BenchmarkMetrics)
		return cmps, day.Weekday().String() + " average"
	}
}

func periodComparisons(aggs []models.PeriodAggregate) ([]models.BenchmarkComparison, string) {
	if len(aggs) < 2 {
		return nil, ""
	}
	primary := aggs[len(aggs)-1]
	previous := aggs[len(aggs)-2]
	cmps := engine.BenchmarkDiff(&primary, &previous, models.BenchmarkMetrics)
	return cmps, periodLabel(previous)
}

func periodLabel(agg models.PeriodAggregate) string {
	if agg.Kind == models.PeriodMonth {
		return agg.Start.Format("January 2006")
	}
	return agg.Start.Format("week of Jan 2")
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
	return []key.Binding{m.keys.Mode, m.keys.NextDay, m.keys.PrevDay}
}

// FullHelp returns the full help for this tab.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Mode, m.keys.NextDay, m.keys.PrevDay},
		{m.keys.RangeStart, m.keys.RangeEnd},
		{m.keys.Up, m.keys.Down},
	}
}

// isDayMode reports whether the current mode compares a single selected day.
func (m *Model) isDayMode() bool {
	return m.mode == modeWeekdayAvg || m.mode == modePrevDay
}
