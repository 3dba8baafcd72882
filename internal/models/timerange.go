// Package models defines data structures and domain types.
package models

// TimeRange represents the selected trend time range.
type TimeRange int

const (
	// TimeRange4Weeks shows the last 4 weeks of data.
	TimeRange4Weeks TimeRange = iota
	// TimeRange12Weeks shows the last 12 weeks of data.
	TimeRange12Weeks
	// TimeRange6Months shows the last 6 months of data.
	TimeRange6Months
	// TimeRangeAllTime shows all available data.
	TimeRangeAllTime
)

// String returns the display name for a time range.
func (t TimeRange) String() string {
	switch t {
	case TimeRange4Weeks:
		return "4 Weeks"
	case TimeRange12Weeks:
		return "12 Weeks"
	case TimeRange6Months:
		return "6 Months"
	case TimeRangeAllTime:
		return "All Time"
	default:
		return "Unknown"
	}
}

// Days returns the number of days covered by the time range (0 = unlimited).
func (t TimeRange) Days() int {
	switch t {
	case TimeRange4Weeks:
		return 28
	case TimeRange12Weeks:
		return 84
	case TimeRange6Months:
		return 183
	case TimeRangeAllTime:
		return 0
	default:
		return 28
	}
}

// Next cycles to the next time range.
func (t TimeRange) Next() TimeRange {
	return (t + 1) % 4
}
