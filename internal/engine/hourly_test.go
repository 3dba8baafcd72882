package engine

import (
	"testing"
	"time"

	"github.com/venuepulse/footfall-tui/internal/models"
)

func ts(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func row(day, hour, in, out, passersby int) models.SensorRow {
	return models.SensorRow{
		Timestamp:   ts(day, hour),
		VisitorsIn:  in,
		VisitorsOut: out,
		RawMenIn:    in, // raw split attributed fully to men for simple sums
		RawWomenIn:  0,
		RawMenOut:   out,
		RawWomenOut: 0,
		Passersby:   passersby,
	}
}

func TestBuildHourlyRecords_GenderInvariant(t *testing.T) {
	rows := []models.SensorRow{
		{Timestamp: ts(15, 8), VisitorsIn: 10, VisitorsOut: 7, RawMenIn: 4, RawWomenIn: 3, RawMenOut: 2, RawWomenOut: 3},
		{Timestamp: ts(15, 9), VisitorsIn: 13, VisitorsOut: 11, RawMenIn: 9, RawWomenIn: 2, RawMenOut: 6, RawWomenOut: 6},
		{Timestamp: ts(15, 10), VisitorsIn: 5, VisitorsOut: 5, RawMenIn: 0, RawWomenIn: 0, RawMenOut: 1, RawWomenOut: 0},
	}

	records := BuildHourlyRecords(rows)
	for _, rec := range records {
		if rec.MenIn+rec.WomenIn != rec.VisitorsIn {
			t.Errorf("%v: menIn(%d) + womenIn(%d) != visitorsIn(%d)",
				rec.Timestamp, rec.MenIn, rec.WomenIn, rec.VisitorsIn)
		}
		if rec.MenOut+rec.WomenOut != rec.VisitorsOut {
			t.Errorf("%v: menOut(%d) + womenOut(%d) != visitorsOut(%d)",
				rec.Timestamp, rec.MenOut, rec.WomenOut, rec.VisitorsOut)
		}
	}

	// Empty raw split infers nothing, even with a non-zero total.
	if records[2].MenIn != 0 || records[2].WomenIn != 0 {
		t.Errorf("empty raw split should reconcile to 0/0, got %d/%d",
			records[2].MenIn, records[2].WomenIn)
	}
}

func TestBuildHourlyRecords_CaptureRate(t *testing.T) {
	records := BuildHourlyRecords([]models.SensorRow{
		row(15, 8, 10, 5, 40),
		row(15, 9, 10, 5, 0), // no passersby: guarded to 0
		row(15, 10, 1, 0, 3),
	})

	if records[0].CaptureRate != 25.00 {
		t.Errorf("captureRate = %v, want 25.00", records[0].CaptureRate)
	}
	if records[1].CaptureRate != 0 {
		t.Errorf("captureRate with zero passersby = %v, want 0", records[1].CaptureRate)
	}
	if records[2].CaptureRate != 33.33 {
		t.Errorf("captureRate = %v, want 33.33 (two decimals)", records[2].CaptureRate)
	}
}

func TestBuildHourlyRecords_AccumulatorsResetAtDayBoundary(t *testing.T) {
	records := BuildHourlyRecords([]models.SensorRow{
		row(15, 8, 10, 2, 0),
		row(15, 9, 20, 8, 0),
		row(16, 8, 7, 1, 0), // new calendar day
	})

	if records[0].AccumulatedIn != 10 || records[1].AccumulatedIn != 30 {
		t.Errorf("same-day accumulation wrong: got %d, %d",
			records[0].AccumulatedIn, records[1].AccumulatedIn)
	}
	if records[1].AccumulatedOut != 10 {
		t.Errorf("accumulatedOut = %d, want 10", records[1].AccumulatedOut)
	}

	// First record of a new day restarts from its own counts.
	if records[2].AccumulatedIn != 7 {
		t.Errorf("accumulatedIn after day boundary = %d, want 7", records[2].AccumulatedIn)
	}
	if records[2].AccumulatedOut != 1 {
		t.Errorf("accumulatedOut after day boundary = %d, want 1", records[2].AccumulatedOut)
	}
}

func TestBuildHourlyRecords_LiveVisitorsNeverNegative(t *testing.T) {
	records := BuildHourlyRecords([]models.SensorRow{
		row(15, 8, 5, 0, 0),
		row(15, 9, 2, 10, 0), // more out than in
		row(16, 8, 1, 0, 0),  // day boundary against a large previous out
	})

	for _, rec := range records {
		if rec.LiveVisitors < 0 {
			t.Errorf("%v: liveVisitors = %d, must never be negative",
				rec.Timestamp, rec.LiveVisitors)
		}
	}

	// First record of the dataset uses 0 as the previous-out value.
	if records[0].LiveVisitors != 5 {
		t.Errorf("first record liveVisitors = %d, want 5", records[0].LiveVisitors)
	}
}

func TestBuildHourlyRecords_SortsByTimestamp(t *testing.T) {
	records := BuildHourlyRecords([]models.SensorRow{
		row(15, 10, 1, 0, 0),
		row(15, 8, 2, 0, 0),
		row(15, 9, 3, 0, 0),
	})

	for i := 1; i < len(records); i++ {
		if !records[i-1].Timestamp.Before(records[i].Timestamp) {
			t.Fatalf("records not in ascending timestamp order at %d", i)
		}
	}
	if records[0].VisitorsIn != 2 {
		t.Errorf("expected 08:00 row first, got visitorsIn=%d", records[0].VisitorsIn)
	}
}

func TestBuildHourlyRecords_HasData(t *testing.T) {
	records := BuildHourlyRecords([]models.SensorRow{
		{Timestamp: ts(15, 3)}, // all zero: sensor offline
		row(15, 8, 0, 0, 12),   // passersby only still counts as data
	})

	if records[0].HasData {
		t.Error("all-zero row must be flagged as no-data")
	}
	if !records[1].HasData {
		t.Error("row with passersby must be flagged as data")
	}
}
