package engine

import "github.com/venuepulse/footfall-tui/internal/models"

// PeriodCaptureRate computes the capture rate restricted to the inclusive
// [startHour, endHour] range over a 24-slot hourly series (a concrete day or
// a weekday average). Returns 0 when no passersby fall in the range. The same
// path serves the fixed morning/noon/afternoon presets and user-chosen
// custom ranges.
func PeriodCaptureRate(slots [24]models.HourlySlot, startHour, endHour int) float64 {
	var visitorsIn, passersby float64
	for h := range slots {
		if h < startHour || h > endHour {
			continue
		}
		visitorsIn += slots[h].VisitorsIn
		passersby += slots[h].Passersby
	}
	return safeRate(visitorsIn, passersby)
}

// PresetCaptureRate computes the capture rate for a fixed named period.
func PresetCaptureRate(slots [24]models.HourlySlot, preset models.PeriodPreset) float64 {
	start, end := preset.Range()
	return PeriodCaptureRate(slots, start, end)
}
