package engine

import (
	"sort"
	"time"

	"github.com/venuepulse/footfall-tui/internal/models"
)

// BuildHourlyRecords turns raw sensor rows into normalized hourly records.
// Gender counts are reconciled against the verified direction totals, the
// per-hour capture rate is derived, and a single forward pass computes the
// day-scoped accumulators and the live-occupancy estimate.
func BuildHourlyRecords(rows []models.SensorRow) []models.HourlyRecord {
	records := make([]models.HourlyRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, newHourlyRecord(row))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})

	accumulate(records)
	return records
}

func newHourlyRecord(row models.SensorRow) models.HourlyRecord {
	menIn, womenIn := ReconcileGender(row.RawMenIn, row.RawWomenIn, row.VisitorsIn)
	menOut, womenOut := ReconcileGender(row.RawMenOut, row.RawWomenOut, row.VisitorsOut)

	rec := models.HourlyRecord{
		Timestamp:   row.Timestamp,
		VisitorsIn:  row.VisitorsIn,
		VisitorsOut: row.VisitorsOut,
		MenIn:       menIn,
		MenOut:      menOut,
		WomenIn:     womenIn,
		WomenOut:    womenOut,
		GroupIn:     row.GroupIn,
		GroupOut:    row.GroupOut,
		Passersby:   row.Passersby,
		CaptureRate: safeRate(float64(row.VisitorsIn), float64(row.Passersby)),
	}
	rec.HasData = rowHasData(row)
	return rec
}

// rowHasData reports whether any numeric field of the raw row is non-zero.
// An entirely zero row means the sensor was offline for that hour.
func rowHasData(row models.SensorRow) bool {
	return row.VisitorsIn != 0 || row.VisitorsOut != 0 ||
		row.RawMenIn != 0 || row.RawMenOut != 0 ||
		row.RawWomenIn != 0 || row.RawWomenOut != 0 ||
		row.GroupIn != 0 || row.GroupOut != 0 ||
		row.Passersby != 0
}

// accumulate walks records in ascending timestamp order maintaining running
// in/out totals that reset at calendar-day boundaries. LiveVisitors is the
// current accumulated-in minus the previous record's accumulated-out, clamped
// at zero; the first record of the dataset uses 0 as the previous-out value.
func accumulate(records []models.HourlyRecord) {
	var prevDate time.Time
	for i := range records {
		rec := &records[i]
		date := rec.Date()

		if i == 0 || !date.Equal(prevDate) {
			rec.AccumulatedIn = rec.VisitorsIn
			rec.AccumulatedOut = rec.VisitorsOut
		} else {
			rec.AccumulatedIn = records[i-1].AccumulatedIn + rec.VisitorsIn
			rec.AccumulatedOut = records[i-1].AccumulatedOut + rec.VisitorsOut
		}

		prevOut := 0
		if i > 0 {
			prevOut = records[i-1].AccumulatedOut
		}
		live := rec.AccumulatedIn - prevOut
		if live < 0 {
			live = 0
		}
		rec.LiveVisitors = live

		prevDate = date
	}
}
