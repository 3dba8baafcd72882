package engine

import (
	"sort"

	"github.com/venuepulse/footfall-tui/internal/models"
)

// dwellScale converts the live-occupancy-to-visitors ratio into a
// minutes-like dwell figure (60 minutes with a x10 calibration multiplier).
// The value is an empirical calibration constant carried over unchanged from
// the original sensor vendor tooling; outputs must stay numerically
// compatible with it.
const dwellScale = 600

// BuildDailyRecords folds hourly records into per-day rollups. All count
// fields are summed unconditionally; capture-rate-relevant sums (visitors in,
// passersby, live occupancy) are additionally tracked under the opening-hours
// mask so closed-hours passersby noise does not dilute the rate.
func BuildDailyRecords(hourly []models.HourlyRecord, hours models.OpeningHours) []models.DailyRecord {
	byDate := make(map[string]*models.DailyRecord)
	var order []string

	for i := range hourly {
		rec := &hourly[i]
		date := rec.Date()
		key := date.Format("2006-01-02")

		day, ok := byDate[key]
		if !ok {
			day = &models.DailyRecord{Date: date}
			byDate[key] = day
			order = append(order, key)
		}

		day.VisitorsIn += rec.VisitorsIn
		day.VisitorsOut += rec.VisitorsOut
		day.MenIn += rec.MenIn
		day.MenOut += rec.MenOut
		day.WomenIn += rec.WomenIn
		day.WomenOut += rec.WomenOut
		day.GroupIn += rec.GroupIn
		day.GroupOut += rec.GroupOut
		day.Passersby += rec.Passersby
		if rec.HasData {
			day.HasData = true
		}

		if hours.IsOpen(date.Weekday(), rec.Hour()) {
			day.InHoursVisitorsIn += rec.VisitorsIn
			day.InHoursPassersby += rec.Passersby
			day.LiveVisitorSum += rec.LiveVisitors
			day.LiveVisitorHours++
		}
	}

	sort.Strings(order)
	days := make([]models.DailyRecord, 0, len(order))
	for _, key := range order {
		day := byDate[key]
		deriveDailyMetrics(day)
		days = append(days, *day)
	}
	return days
}

func deriveDailyMetrics(day *models.DailyRecord) {
	day.CaptureRate = safeRate(float64(day.InHoursVisitorsIn), float64(day.InHoursPassersby))
	day.Conversion = safeRate(float64(day.GroupIn), float64(day.VisitorsIn))
	day.DwellTime = dwellTime(day.LiveVisitorSum, day.LiveVisitorHours, day.InHoursVisitorsIn)
	day.DataAccuracy = dataAccuracy(day.VisitorsIn, day.VisitorsOut)
}

// dwellTime estimates average visit duration from the mean in-hours live
// occupancy relative to the in-hours visitor count.
func dwellTime(liveSum, liveHours, visitorsIn int) float64 {
	if liveHours == 0 {
		return 0
	}
	avgLive := float64(liveSum) / float64(liveHours)
	visitors := visitorsIn
	if visitors < 1 {
		visitors = 1
	}
	return round2(avgLive / float64(visitors) * dwellScale)
}

// dataAccuracy measures consistency between the independently sensed entry
// and exit counts: min/max*100.
func dataAccuracy(in, out int) float64 {
	lo, hi := in, out
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		hi = 1
	}
	return round2(float64(lo) / float64(hi) * 100)
}

// AttachWeather maps daily weather onto records by date. Days without a
// matching entry keep a nil Weather; display layers treat that as "no data".
func AttachWeather(days []models.DailyRecord, weather map[string]*models.DayWeather) {
	for i := range days {
		key := days[i].Date.Format("2006-01-02")
		if w, ok := weather[key]; ok {
			days[i].Weather = w
		}
	}
}
