package app

import (
	"time"

	"github.com/venuepulse/footfall-tui/internal/engine"
	"github.com/venuepulse/footfall-tui/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// RefreshTickMsg fires on the feed refresh interval to trigger a reload.
type RefreshTickMsg struct {
	Time time.Time
}

// DatasetReadyMsg carries a freshly built dataset.
type DatasetReadyMsg struct {
	Dataset     *engine.Dataset
	FromCache   bool
	WeatherDays int
}

// ReloadMsg requests a dataset reload.
type ReloadMsg struct{}

// SelectedDateChangedMsg signals that the focused date changed.
type SelectedDateChangedMsg struct {
	Date time.Time
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}
