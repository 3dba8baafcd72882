package engine

import (
	"time"

	"github.com/venuepulse/footfall-tui/internal/models"
)

// averagePositive is the mean of the values strictly greater than zero.
// Zeros are excluded from the sample, not counted as zero-valued days:
// averagePositive([0,0,10,20]) == 15. Returns the mean rounded to two
// decimals together with the contributing values.
func averagePositive(values []float64) (float64, []float64) {
	var positive []float64
	var sum float64
	for _, v := range values {
		if v > 0 {
			positive = append(positive, v)
			sum += v
		}
	}
	if len(positive) == 0 {
		return 0, nil
	}
	return round2(sum / float64(len(positive))), positive
}

// WeekdayAverage computes the historical mean of one metric across all daily
// records falling on the given weekday. Records without data (all-zero days,
// i.e. sensor offline) never contribute. Different metrics of the same
// "average day" may therefore be derived from different day subsets.
func WeekdayAverage(days []models.DailyRecord, weekday time.Weekday, metric models.Metric) models.WeekdayAverage {
	var values []float64
	for i := range days {
		day := &days[i]
		if day.Weekday() != weekday || !day.HasData {
			continue
		}
		values = append(values, day.Value(metric))
	}

	avg, contributing := averagePositive(values)
	return models.WeekdayAverage{
		Weekday:    weekday,
		Metric:     metric,
		Average:    avg,
		SampleSize: len(contributing),
		Values:     contributing,
	}
}

// WeekdayAggregate builds a full benchmark-shaped value set for a weekday by
// averaging each benchmark metric independently.
func WeekdayAggregate(days []models.DailyRecord, weekday time.Weekday) map[models.Metric]float64 {
	result := make(map[models.Metric]float64, len(models.BenchmarkMetrics))
	for _, metric := range models.BenchmarkMetrics {
		result[metric] = WeekdayAverage(days, weekday, metric).Average
	}
	return result
}

// WeekdayHourlyAverage builds the synthetic 24-slot "average day" for a
// weekday from all historical hourly records. Offline hours are excluded per
// slot; each slot's capture rate is re-derived from the averaged counts.
func WeekdayHourlyAverage(hourly []models.HourlyRecord, weekday time.Weekday) [24]models.HourlySlot {
	var sums [24]struct {
		visitorsIn, visitorsOut, passersby, groupIn float64
		n                                           int
	}

	for i := range hourly {
		rec := &hourly[i]
		if rec.Timestamp.Weekday() != weekday || !rec.HasData {
			continue
		}
		h := rec.Hour()
		sums[h].visitorsIn += float64(rec.VisitorsIn)
		sums[h].visitorsOut += float64(rec.VisitorsOut)
		sums[h].passersby += float64(rec.Passersby)
		sums[h].groupIn += float64(rec.GroupIn)
		sums[h].n++
	}

	var slots [24]models.HourlySlot
	for h := range slots {
		slots[h].Hour = h
		s := sums[h]
		if s.n == 0 {
			continue
		}
		n := float64(s.n)
		slots[h].VisitorsIn = round2(s.visitorsIn / n)
		slots[h].VisitorsOut = round2(s.visitorsOut / n)
		slots[h].Passersby = round2(s.passersby / n)
		slots[h].GroupIn = round2(s.groupIn / n)
		slots[h].CaptureRate = safeRate(slots[h].VisitorsIn, slots[h].Passersby)
		slots[h].SampleSize = s.n
	}
	return slots
}

// DayHourlySlots projects one concrete day's hourly records onto the 24-slot
// shape used by the period capture-rate calculator.
func DayHourlySlots(hourly []models.HourlyRecord, date time.Time) [24]models.HourlySlot {
	y, m, d := date.Date()
	var slots [24]models.HourlySlot
	for h := range slots {
		slots[h].Hour = h
	}
	for i := range hourly {
		rec := &hourly[i]
		ry, rm, rd := rec.Timestamp.Date()
		if ry != y || rm != m || rd != d {
			continue
		}
		h := rec.Hour()
		slots[h].VisitorsIn = float64(rec.VisitorsIn)
		slots[h].VisitorsOut = float64(rec.VisitorsOut)
		slots[h].Passersby = float64(rec.Passersby)
		slots[h].GroupIn = float64(rec.GroupIn)
		slots[h].CaptureRate = rec.CaptureRate
		if rec.HasData {
			slots[h].SampleSize = 1
		}
	}
	return slots
}
