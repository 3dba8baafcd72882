package models

import "time"

// DayHours is one weekday's opening window. Close is exclusive: a record
// belongs to opening hours when hour >= Open && hour < Close.
type DayHours struct {
	Open  int
	Close int
}

// OpeningHours is the per-weekday open/close hour table used to mask
// capture-rate-relevant sums. Indexed by time.Weekday (Sunday = 0).
type OpeningHours [7]DayHours

// DefaultOpeningHours returns the venue's standard schedule.
func DefaultOpeningHours() OpeningHours {
	return OpeningHours{
		time.Sunday:    {Open: 8, Close: 16},
		time.Monday:    {Open: 7, Close: 20},
		time.Tuesday:   {Open: 7, Close: 20},
		time.Wednesday: {Open: 7, Close: 20},
		time.Thursday:  {Open: 7, Close: 20},
		time.Friday:    {Open: 7, Close: 20},
		time.Saturday:  {Open: 8, Close: 20},
	}
}

// IsOpen reports whether the venue is open at the given weekday and hour.
func (o OpeningHours) IsOpen(day time.Weekday, hour int) bool {
	h := o[day]
	return hour >= h.Open && hour < h.Close
}

// PeriodPreset is a fixed named hour range used for period capture-rate cards.
type PeriodPreset int

const (
	// PresetMorning covers 07:00-10:00 inclusive.
	PresetMorning PeriodPreset = iota
	// PresetNoon covers 12:00-14:00 inclusive.
	PresetNoon
	// PresetAfternoon covers 17:00-20:00 inclusive.
	PresetAfternoon
)

// Range returns the inclusive [start, end] hour bounds of the preset.
func (p PeriodPreset) Range() (start, end int) {
	switch p {
	case PresetMorning:
		return 7, 10
	case PresetNoon:
		return 12, 14
	case PresetAfternoon:
		return 17, 20
	default:
		return 0, 23
	}
}

// String returns the display name for a preset.
func (p PeriodPreset) String() string {
	switch p {
	case PresetMorning:
		return "Morning"
	case PresetNoon:
		return "Noon"
	case PresetAfternoon:
		return "Afternoon"
	default:
		return "All day"
	}
}
