package engine

import (
	"time"

	"github.com/venuepulse/footfall-tui/internal/models"
)

// Dataset is the immutable in-memory collection every aggregator operates
// on. It is built once per load by the services layer and passed by handle;
// aggregation functions are pure functions of (dataset, parameters) and never
// mutate it. Recomputation after a reload simply builds a fresh Dataset.
type Dataset struct {
	hourly []models.HourlyRecord
	daily  []models.DailyRecord
	byDate map[string]int
	hours  models.OpeningHours
}

// NewDataset builds a dataset from raw sensor rows: hourly normalization,
// daily rollups under the given opening-hours mask, and weather enrichment
// (weather may be nil or partial; unmatched days keep nil Weather).
func NewDataset(rows []models.SensorRow, hours models.OpeningHours, weather map[string]*models.DayWeather) *Dataset {
	hourly := BuildHourlyRecords(rows)
	daily := BuildDailyRecords(hourly, hours)
	AttachWeather(daily, weather)

	byDate := make(map[string]int, len(daily))
	for i := range daily {
		byDate[daily[i].Date.Format("2006-01-02")] = i
	}

	return &Dataset{
		hourly: hourly,
		daily:  daily,
		byDate: byDate,
		hours:  hours,
	}
}

// Hourly returns all hourly records in ascending timestamp order.
func (d *Dataset) Hourly() []models.HourlyRecord { return d.hourly }

// Daily returns all daily records in ascending date order.
func (d *Dataset) Daily() []models.DailyRecord { return d.daily }

// OpeningHours returns the mask the dataset was built with.
func (d *Dataset) OpeningHours() models.OpeningHours { return d.hours }

// Day looks up the daily record for a date.
func (d *Dataset) Day(date time.Time) (models.DailyRecord, bool) {
	idx, ok := d.byDate[date.Format("2006-01-02")]
	if !ok {
		return models.DailyRecord{}, false
	}
	return d.daily[idx], true
}

// DayHours returns the hourly records of one calendar date in order.
func (d *Dataset) DayHours(date time.Time) []models.HourlyRecord {
	y, m, day := date.Date()
	var out []models.HourlyRecord
	for i := range d.hourly {
		ry, rm, rd := d.hourly[i].Timestamp.Date()
		if ry == y && rm == m && rd == day {
			out = append(out, d.hourly[i])
		}
	}
	return out
}

// DaysInRange returns the daily records whose date lies in [start, end].
func (d *Dataset) DaysInRange(start, end time.Time) []models.DailyRecord {
	var out []models.DailyRecord
	for i := range d.daily {
		date := d.daily[i].Date
		if date.Before(start) || date.After(end) {
			continue
		}
		out = append(out, d.daily[i])
	}
	return out
}

// RecentDays returns the last n daily records (all of them when n <= 0).
func (d *Dataset) RecentDays(n int) []models.DailyRecord {
	if n <= 0 || n >= len(d.daily) {
		return d.daily
	}
	return d.daily[len(d.daily)-n:]
}

// First and Last bound the loaded time span; ok is false for empty datasets.
func (d *Dataset) Bounds() (first, last time.Time, ok bool) {
	if len(d.hourly) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return d.hourly[0].Timestamp, d.hourly[len(d.hourly)-1].Timestamp, true
}

// Len returns the number of hourly records.
func (d *Dataset) Len() int { return len(d.hourly) }

// DayCount returns the number of calendar days with records.
func (d *Dataset) DayCount() int { return len(d.daily) }
