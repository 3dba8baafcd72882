// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/venuepulse/footfall-tui/internal/engine"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// State is the shared application state all tabs read from. The dataset
// handle is replaced wholesale on reload; tabs never see a half-updated
// dataset.
type State struct {
	mu sync.RWMutex

	dataset   *engine.Dataset
	fromCache bool

	selectedDate time.Time

	initialLoading bool
	reloading      bool

	lastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates the initial application state.
func NewState() *State {
	return &State{
		initialLoading: true,
		notifications:  make([]Notification, 0),
	}
}

// SetDataset swaps in a freshly built dataset.
func (s *State) SetDataset(ds *engine.Dataset, fromCache bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dataset = ds
	s.fromCache = fromCache
	s.initialLoading = false
	s.reloading = false
	s.lastUpdated = time.Now()

	// Default the selected date to the most recent day with data.
	if s.selectedDate.IsZero() && ds != nil {
		if _, last, ok := ds.Bounds(); ok {
			s.selectedDate = last
		}
	}
}

// Dataset returns the current dataset handle, nil before the first load.
func (s *State) Dataset() *engine.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// HasData reports whether a dataset with at least one record is loaded.
func (s *State) HasData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset != nil && s.dataset.Len() > 0
}

// FromCache reports whether the current dataset came from the snapshot cache
// rather than a fresh feed read.
func (s *State) FromCache() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fromCache
}

// SelectedDate returns the date the overview tab is focused on.
func (s *State) SelectedDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}

// SetSelectedDate moves the overview focus to a date.
func (s *State) SetSelectedDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = date
}

// IsInitialLoading returns true until the first dataset load completes.
func (s *State) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialLoading
}

// SetReloading marks a reload in flight.
func (s *State) SetReloading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloading = v
}

// IsReloading returns true while a reload is in flight.
func (s *State) IsReloading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reloading
}

// LastUpdated returns the last time the dataset was replaced.
func (s *State) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// TimeSinceUpdate returns the duration since the last dataset swap.
func (s *State) TimeSinceUpdate() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastUpdated.IsZero() {
		return 0
	}
	return time.Since(s.lastUpdated)
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	s.notifications = append(s.notifications, Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	})

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	return active
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}
