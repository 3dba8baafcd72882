package models

import (
	"testing"
	"time"
)

func TestTimeRangeCycle(t *testing.T) {
	r := TimeRange4Weeks
	seen := map[TimeRange]bool{}
	for i := 0; i < 4; i++ {
		seen[r] = true
		r = r.Next()
	}
	if len(seen) != 4 {
		t.Errorf("Next did not visit all ranges, saw %d", len(seen))
	}
	if r != TimeRange4Weeks {
		t.Errorf("Next did not wrap, got %v", r)
	}
}

func TestTimeRangeDays(t *testing.T) {
	tests := []struct {
		r    TimeRange
		days int
	}{
		{TimeRange4Weeks, 28},
		{TimeRange12Weeks, 84},
		{TimeRange6Months, 183},
		{TimeRangeAllTime, 0},
	}
	for _, tt := range tests {
		if got := tt.r.Days(); got != tt.days {
			t.Errorf("%v.Days() = %d, want %d", tt.r, got, tt.days)
		}
	}
}

func TestPeriodPresetRanges(t *testing.T) {
	tests := []struct {
		preset     PeriodPreset
		start, end int
	}{
		{PresetMorning, 7, 10},
		{PresetNoon, 12, 14},
		{PresetAfternoon, 17, 20},
	}
	for _, tt := range tests {
		start, end := tt.preset.Range()
		if start != tt.start || end != tt.end {
			t.Errorf("%v.Range() = %d-%d, want %d-%d", tt.preset, start, end, tt.start, tt.end)
		}
	}
}

func TestOpeningHoursIsOpen(t *testing.T) {
	hours := DefaultOpeningHours()

	// Monday opens 07 and closes 20; the closing hour itself is shut.
	if !hours.IsOpen(time.Monday, 7) {
		t.Error("Monday 07:00 should be open")
	}
	if hours.IsOpen(time.Monday, 20) {
		t.Error("Monday 20:00 should be closed")
	}
	if hours.IsOpen(time.Sunday, 7) {
		t.Error("Sunday 07:00 should be closed (opens 08)")
	}
}

func TestDailyRecordValueCoverage(t *testing.T) {
	d := DailyRecord{
		VisitorsIn: 120, Passersby: 400,
		CaptureRate: 30, Conversion: 10, DwellTime: 240, DataAccuracy: 96.5,
	}
	tests := []struct {
		metric Metric
		want   float64
	}{
		{MetricVisitorsIn, 120},
		{MetricPassersby, 400},
		{MetricCaptureRate, 30},
		{MetricConversion, 10},
		{MetricDwellTime, 240},
		{MetricDataAccuracy, 96.5},
	}
	for _, tt := range tests {
		if got := d.Value(tt.metric); got != tt.want {
			t.Errorf("Value(%v) = %v, want %v", tt.metric, got, tt.want)
		}
	}
}

func TestMetricIsRate(t *testing.T) {
	if MetricVisitorsIn.IsRate() {
		t.Error("visitorsIn is a count, not a rate")
	}
	for _, m := range []Metric{MetricCaptureRate, MetricConversion, MetricDwellTime, MetricDataAccuracy} {
		if !m.IsRate() {
			t.Errorf("%v should be a rate", m)
		}
	}
}

func TestWeekdayAverageHasSamples(t *testing.T) {
	w := WeekdayAverage{SampleSize: 0}
	if w.HasSamples() {
		t.Error("sample size 0 means insufficient data")
	}
	w.SampleSize = 3
	if !w.HasSamples() {
		t.Error("sample size 3 should report samples")
	}
}
