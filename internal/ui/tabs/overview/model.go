// Package overview provides the day-focused overview tab.
package overview

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/venuepulse/footfall-tui/internal/app"
	"github.com/venuepulse/footfall-tui/internal/models"
	"github.com/venuepulse/footfall-tui/internal/ui/components"
)

// keyMap defines the key bindings specific to the overview tab.
type keyMap struct {
	NextDay  key.Binding
	PrevDay  key.Binding
	FirstDay key.Binding
	LastDay  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextDay: key.NewBinding(
			key.WithKeys("l", "right", "n"),
			key.WithHelp("l/→", "next day"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("h", "left", "p"),
			key.WithHelp("h/←", "prev day"),
		),
		FirstDay: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first day"),
		),
		LastDay: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last day"),
		),
	}
}

// Model represents the overview tab state.
type Model struct {
	state    *app.State
	spinner  components.LoadingSpinner
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new overview model.
func New(state *app.State) *Model {
	return &Model{
		state:    state,
		spinner:  components.NewSpinner("Loading feed..."),
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	ds := m.state.Dataset()
	if ds == nil || ds.DayCount() == 0 {
		return nil
	}
	days := ds.Daily()
	idx := m.selectedIndex(days)

	switch {
	case key.Matches(msg, m.keys.NextDay):
		if idx < len(days)-1 {
			m.state.SetSelectedDate(days[idx+1].Date)
		}
	case key.Matches(msg, m.keys.PrevDay):
		if idx > 0 {
			m.state.SetSelectedDate(days[idx-1].Date)
		}
	case key.Matches(msg, m.keys.FirstDay):
		m.state.SetSelectedDate(days[0].Date)
	case key.Matches(msg, m.keys.LastDay):
		m.state.SetSelectedDate(days[len(days)-1].Date)
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// selectedIndex finds the daily record matching the selected date, falling
// back to the most recent day.
func (m *Model) selectedIndex(days []models.DailyRecord) int {
	sel := m.state.SelectedDate()
	for i := range days {
		if sameDate(days[i].Date, sel) {
			return i
		}
	}
	return len(days) - 1
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SetSize sets the available size for the overview.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.PrevDay,
		m.keys.NextDay,
		m.keys.LastDay,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.PrevDay, m.keys.NextDay},
		{m.keys.FirstDay, m.keys.LastDay},
	}
}
