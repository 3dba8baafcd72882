package overview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/venuepulse/footfall-tui/internal/app"
	"github.com/venuepulse/footfall-tui/internal/engine"
	"github.com/venuepulse/footfall-tui/internal/models"
)

func loadedState(t *testing.T) *app.State {
	t.Helper()
	rows := []models.SensorRow{
		{Timestamp: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
			VisitorsIn: 30, VisitorsOut: 28, RawMenIn: 12, RawWomenIn: 18,
			GroupIn: 4, Passersby: 120},
		{Timestamp: time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC),
			VisitorsIn: 50, VisitorsOut: 48, Passersby: 200},
		{Timestamp: time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC),
			VisitorsIn: 10, VisitorsOut: 10, Passersby: 40},
	}
	ds := engine.NewDataset(rows, models.DefaultOpeningHours(), nil)
	state := app.NewState()
	state.SetDataset(ds, false)
	return state
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDayNavigation(t *testing.T) {
	state := loadedState(t)
	m := New(state)

	// Selection starts on the newest day; h moves back, l forward.
	m.Update(keyMsg("h"))
	if got := state.SelectedDate().Day(); got != 15 {
		t.Errorf("after h: selected day = %d, want 15", got)
	}
	m.Update(keyMsg("h"))
	if got := state.SelectedDate().Day(); got != 15 {
		t.Errorf("h at the first day should be a no-op, got day %d", got)
	}
	m.Update(keyMsg("l"))
	if got := state.SelectedDate().Day(); got != 16 {
		t.Errorf("after l: selected day = %d, want 16", got)
	}
}

func TestFirstLastNavigation(t *testing.T) {
	state := loadedState(t)
	m := New(state)

	m.Update(keyMsg("g"))
	if got := state.SelectedDate().Day(); got != 15 {
		t.Errorf("g should jump to the first day, got %d", got)
	}
	m.Update(keyMsg("G"))
	if got := state.SelectedDate().Day(); got != 16 {
		t.Errorf("G should jump to the last day, got %d", got)
	}
}

func TestViewRendersDayCard(t *testing.T) {
	state := loadedState(t)
	state.SetSelectedDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	m := New(state)
	m.SetSize(100, 50)

	view := m.View()
	for _, want := range []string{"Monday, 15 January 2024", "Day Summary", "Capture", "Conversion"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewEmptyDataset(t *testing.T) {
	state := app.NewState()
	state.SetDataset(engine.NewDataset(nil, models.DefaultOpeningHours(), nil), false)
	m := New(state)
	m.SetSize(80, 24)

	if !strings.Contains(m.View(), "No footfall data") {
		t.Error("empty dataset should render the placeholder")
	}
}

func TestViewInitialLoading(t *testing.T) {
	m := New(app.NewState())
	m.SetSize(80, 24)

	if m.View() == "" {
		t.Error("loading view should render the spinner")
	}
}
