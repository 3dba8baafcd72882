package app

import (
	"testing"
	"time"

	"github.com/venuepulse/footfall-tui/internal/engine"
	"github.com/venuepulse/footfall-tui/internal/models"
)

func testDataset(t *testing.T) *engine.Dataset {
	t.Helper()
	rows := []models.SensorRow{
		{
			Timestamp:  time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
			VisitorsIn: 30, VisitorsOut: 28,
			RawMenIn: 12, RawWomenIn: 18,
			Passersby: 100,
		},
		{
			Timestamp:  time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC),
			VisitorsIn: 45, VisitorsOut: 44,
			RawMenIn: 20, RawWomenIn: 25,
			Passersby: 150,
		},
	}
	return engine.NewDataset(rows, models.DefaultOpeningHours(), nil)
}

func TestStateInitial(t *testing.T) {
	s := NewState()

	if !s.IsInitialLoading() {
		t.Error("new state should be in initial loading")
	}
	if s.HasData() {
		t.Error("new state should not report data")
	}
	if s.Dataset() != nil {
		t.Error("new state should have nil dataset")
	}
}

func TestStateSetDataset(t *testing.T) {
	s := NewState()
	ds := testDataset(t)

	s.SetDataset(ds, false)

	if s.IsInitialLoading() {
		t.Error("initial loading should clear after first dataset")
	}
	if !s.HasData() {
		t.Error("state should report data")
	}
	if s.FromCache() {
		t.Error("fresh dataset should not be fromCache")
	}
	if s.LastUpdated().IsZero() {
		t.Error("last updated should be set")
	}

	// Selected date defaults to the newest record.
	sel := s.SelectedDate()
	if sel.Day() != 16 {
		t.Errorf("selected date day = %d, want 16", sel.Day())
	}
}

func TestStateSelectedDateSticks(t *testing.T) {
	s := NewState()
	s.SetDataset(testDataset(t), false)

	chosen := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	s.SetSelectedDate(chosen)

	// A reload must not reset an explicit selection.
	s.SetDataset(testDataset(t), true)
	if !s.SelectedDate().Equal(chosen) {
		t.Errorf("selected date = %v, want %v", s.SelectedDate(), chosen)
	}
	if !s.FromCache() {
		t.Error("state should report fromCache after cached reload")
	}
}

func TestStateReloading(t *testing.T) {
	s := NewState()
	s.SetReloading(true)
	if !s.IsReloading() {
		t.Error("expected reloading true")
	}
	s.SetDataset(testDataset(t), false)
	if s.IsReloading() {
		t.Error("dataset swap should clear reloading")
	}
}

func TestNotificationLifecycle(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationInfo, "hello", time.Minute)
	if id == "" {
		t.Fatal("AddNotification returned empty ID")
	}
	if got := len(s.GetNotifications()); got != 1 {
		t.Fatalf("notifications = %d, want 1", got)
	}

	s.RemoveNotification(id)
	if got := len(s.GetNotifications()); got != 0 {
		t.Errorf("notifications after removal = %d, want 0", got)
	}
}

func TestNotificationExpiry(t *testing.T) {
	n := Notification{CreatedAt: time.Now().Add(-time.Minute), Duration: time.Second}
	if !n.IsExpired() {
		t.Error("old notification should be expired")
	}

	persistent := Notification{CreatedAt: time.Now().Add(-time.Hour), Duration: 0}
	if persistent.IsExpired() {
		t.Error("zero-duration notification should never expire")
	}
}

func TestNotificationCap(t *testing.T) {
	s := NewState()
	for i := 0; i < 15; i++ {
		s.AddNotification(NotificationInfo, "n", time.Minute)
	}
	if got := len(s.GetNotifications()); got != 10 {
		t.Errorf("notifications = %d, want capped at 10", got)
	}
}

func TestLoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("Loading feed...")
	s.SetLoadingNotification("Still loading...")

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("loading notifications = %d, want 1", len(notifs))
	}
	if notifs[0].Message != "Still loading..." {
		t.Errorf("message = %q, want updated text", notifs[0].Message)
	}

	s.ClearLoadingNotification()
	if got := len(s.GetNotifications()); got != 0 {
		t.Errorf("notifications after clear = %d, want 0", got)
	}
}
