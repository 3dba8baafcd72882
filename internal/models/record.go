// Package models defines data structures and domain types.
package models

import "time"

// SensorRow is one raw line from the people-counter export, after timestamp
// parsing but before reconciliation. Gender counts are the sensor's own split,
// which does not necessarily sum to the verified in/out totals.
type SensorRow struct {
	Timestamp   time.Time
	VisitorsIn  int
	VisitorsOut int
	RawMenIn    int
	RawMenOut   int
	RawWomenIn  int
	RawWomenOut int
	GroupIn     int
	GroupOut    int
	Passersby   int
}

// HourlyRecord is one normalized sensor observation bucket (one hour).
// After reconciliation MenIn+WomenIn == VisitorsIn and MenOut+WomenOut == VisitorsOut.
type HourlyRecord struct {
	Timestamp   time.Time
	VisitorsIn  int
	VisitorsOut int
	MenIn       int
	MenOut      int
	WomenIn     int
	WomenOut    int
	GroupIn     int
	GroupOut    int
	Passersby   int

	// CaptureRate is visitorsIn/passersby*100, 0 when no passersby.
	CaptureRate float64

	// AccumulatedIn/Out are running totals since midnight of the record's
	// calendar day. LiveVisitors is the occupancy estimate derived from them,
	// never negative.
	AccumulatedIn  int
	AccumulatedOut int
	LiveVisitors   int

	// HasData distinguishes a legitimately quiet hour from a missing reading.
	// An all-zero row is treated as "sensor offline".
	HasData bool
}

// Date returns the record's calendar date at midnight.
func (h *HourlyRecord) Date() time.Time {
	y, m, d := h.Timestamp.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, h.Timestamp.Location())
}

// Hour returns the hour-of-day of the record (0-23).
func (h *HourlyRecord) Hour() int {
	return h.Timestamp.Hour()
}

// DailyRecord is one calendar day's rollup of HourlyRecords.
type DailyRecord struct {
	Date        time.Time
	VisitorsIn  int
	VisitorsOut int
	MenIn       int
	MenOut      int
	WomenIn     int
	WomenOut    int
	GroupIn     int
	GroupOut    int
	Passersby   int

	// In-hours subtotals, restricted by the opening-hours mask. Kept on the
	// record so coarser aggregates can reapply the capture formula without
	// walking hourly data again.
	InHoursVisitorsIn int
	InHoursPassersby  int
	LiveVisitorSum    int
	LiveVisitorHours  int

	CaptureRate  float64
	Conversion   float64
	DwellTime    float64
	DataAccuracy float64

	// Weather is nil until enrichment succeeds for this date.
	Weather *DayWeather

	HasData bool
}

// Weekday returns the day of week for the record's date.
func (d *DailyRecord) Weekday() time.Weekday {
	return d.Date.Weekday()
}
