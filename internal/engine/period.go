package engine

import (
	"sort"
	"time"

	"github.com/venuepulse/footfall-tui/internal/models"
)

// WeekdayFilter selects which weekdays contribute to a period aggregate.
// A nil filter admits every day.
type WeekdayFilter map[time.Weekday]bool

func (f WeekdayFilter) admits(day time.Weekday) bool {
	return f == nil || f[day]
}

// WeeklyAggregates folds daily records into ISO 8601 week buckets
// (Monday-start weeks, Thursday-anchored numbering), newest last.
func WeeklyAggregates(days []models.DailyRecord, filter WeekdayFilter) []models.PeriodAggregate {
	return bucketAggregates(days, filter, models.PeriodWeek, func(d time.Time) (int, int) {
		return d.ISOWeek()
	})
}

// MonthlyAggregates folds daily records into calendar month buckets.
func MonthlyAggregates(days []models.DailyRecord, filter WeekdayFilter) []models.PeriodAggregate {
	return bucketAggregates(days, filter, models.PeriodMonth, func(d time.Time) (int, int) {
		return d.Year(), int(d.Month())
	})
}

func bucketAggregates(
	days []models.DailyRecord,
	filter WeekdayFilter,
	kind models.PeriodKind,
	keyFn func(time.Time) (year, number int),
) []models.PeriodAggregate {
	type bucketKey struct{ year, number int }
	buckets := make(map[bucketKey]*models.PeriodAggregate)

	for i := range days {
		day := &days[i]
		if !filter.admits(day.Weekday()) {
			continue
		}
		year, number := keyFn(day.Date)
		key := bucketKey{year, number}

		agg, ok := buckets[key]
		if !ok {
			agg = &models.PeriodAggregate{
				Kind:   kind,
				Year:   year,
				Number: number,
				Start:  day.Date,
				End:    day.Date,
			}
			buckets[key] = agg
		}
		foldDay(agg, day)
	}

	result := make([]models.PeriodAggregate, 0, len(buckets))
	for _, agg := range buckets {
		derivePeriodMetrics(agg)
		result = append(result, *agg)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Number < result[j].Number
	})
	return result
}

// RangeAggregate folds the daily records inside [start, end] (inclusive,
// dates compared at day granularity) into a single custom-period aggregate.
func RangeAggregate(days []models.DailyRecord, start, end time.Time, filter WeekdayFilter) models.PeriodAggregate {
	agg := models.PeriodAggregate{
		Kind:  models.PeriodCustom,
		Start: start,
		End:   end,
	}
	for i := range days {
		day := &days[i]
		if day.Date.Before(start) || day.Date.After(end) {
			continue
		}
		if !filter.admits(day.Weekday()) {
			continue
		}
		foldDay(&agg, day)
	}
	derivePeriodMetrics(&agg)
	return agg
}

func foldDay(agg *models.PeriodAggregate, day *models.DailyRecord) {
	if day.Date.Before(agg.Start) || agg.Days == 0 {
		agg.Start = day.Date
	}
	if day.Date.After(agg.End) || agg.Days == 0 {
		agg.End = day.Date
	}

	agg.VisitorsIn += day.VisitorsIn
	agg.VisitorsOut += day.VisitorsOut
	agg.MenIn += day.MenIn
	agg.MenOut += day.MenOut
	agg.WomenIn += day.WomenIn
	agg.WomenOut += day.WomenOut
	agg.GroupIn += day.GroupIn
	agg.GroupOut += day.GroupOut
	agg.Passersby += day.Passersby
	agg.InHoursVisitorsIn += day.InHoursVisitorsIn
	agg.InHoursPassersby += day.InHoursPassersby

	// DwellTime and weather average across days rather than summing; keep
	// running totals here and divide once in derivePeriodMetrics.
	agg.DwellTime += day.DwellTime
	if day.Weather != nil {
		agg.AvgTemperature += day.Weather.Temperature
		agg.AvgPrecipitation += day.Weather.Precipitation
		agg.AvgWindSpeed += day.Weather.WindSpeed
		agg.WeatherDays++
	}

	agg.Days++
}

func derivePeriodMetrics(agg *models.PeriodAggregate) {
	agg.CaptureRate = safeRate(float64(agg.InHoursVisitorsIn), float64(agg.InHoursPassersby))
	agg.Conversion = safeRate(float64(agg.GroupIn), float64(agg.VisitorsIn))
	agg.DataAccuracy = dataAccuracy(agg.VisitorsIn, agg.VisitorsOut)

	if agg.Days > 0 {
		agg.DwellTime = round2(agg.DwellTime / float64(agg.Days))
	}
	if agg.WeatherDays > 0 {
		n := float64(agg.WeatherDays)
		agg.AvgTemperature = round2(agg.AvgTemperature / n)
		agg.AvgPrecipitation = round2(agg.AvgPrecipitation / n)
		agg.AvgWindSpeed = round2(agg.AvgWindSpeed / n)
	}
}
