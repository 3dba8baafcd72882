package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabIDString(t *testing.T) {
	tests := []struct {
		id   TabID
		want string
	}{
		{TabOverview, "Overview"},
		{TabTrends, "Trends"},
		{TabBenchmark, "Benchmark"},
		{TabInfo, "Info"},
		{TabID(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("TabID(%d).String() = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestModelTabSwitching(t *testing.T) {
	m := NewModel(nil, 0)

	m.Update(keyMsg("3"))
	if m.GetActiveTab() != TabBenchmark {
		t.Errorf("active tab = %v, want Benchmark", m.GetActiveTab())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.GetActiveTab() != TabInfo {
		t.Errorf("active tab after next = %v, want Info", m.GetActiveTab())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.GetActiveTab() != TabOverview {
		t.Errorf("active tab should wrap to Overview, got %v", m.GetActiveTab())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.GetActiveTab() != TabInfo {
		t.Errorf("active tab after prev = %v, want Info", m.GetActiveTab())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := NewModel(nil, 0)

	m.Update(keyMsg("?"))
	if !m.showHelp {
		t.Error("help should open on ?")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Error("help should close on esc")
	}
}

func TestModelWindowSize(t *testing.T) {
	m := NewModel(nil, 0)
	if m.IsReady() {
		t.Error("model should not be ready before a window size")
	}

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if !m.IsReady() {
		t.Error("model should be ready after window size")
	}
	if m.GetWidth() != 120 || m.GetHeight() != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.GetWidth(), m.GetHeight())
	}
}

func TestModelViewRendersNavbar(t *testing.T) {
	m := NewModel(nil, 0)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	for _, name := range []string{"Overview", "Trends", "Benchmark", "Info"} {
		if !strings.Contains(view, name) {
			t.Errorf("view missing tab name %q", name)
		}
	}
}

func TestModelDatasetReadyNotifies(t *testing.T) {
	m := NewModel(nil, 0)

	cmds := m.handleAppMsg(DatasetReadyMsg{Dataset: nil})
	if len(cmds) == 0 {
		t.Fatal("empty dataset should produce an error notification command")
	}
	msg := cmds[0]()
	notif, ok := msg.(AddNotificationMsg)
	if !ok {
		t.Fatalf("message type = %T, want AddNotificationMsg", msg)
	}
	if notif.Type != NotificationError {
		t.Errorf("notification type = %v, want error", notif.Type)
	}
}

func TestDefaultKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	if len(km.FullHelp()) == 0 {
		t.Error("FullHelp should not be empty")
	}
}
