package models

import "time"

// DayWeather is the daily-resolution weather attached to a DailyRecord.
type DayWeather struct {
	Date          time.Time
	Code          int
	Temperature   float64 // daily max, °C
	Precipitation float64 // daily sum, mm
	WindSpeed     float64 // daily max, km/h
}

// Description maps the WMO weather interpretation code to a short label.
func (w *DayWeather) Description() string {
	switch {
	case w.Code == 0:
		return "Clear"
	case w.Code <= 2:
		return "Partly cloudy"
	case w.Code == 3:
		return "Overcast"
	case w.Code <= 48:
		return "Fog"
	case w.Code <= 57:
		return "Drizzle"
	case w.Code <= 67:
		return "Rain"
	case w.Code <= 77:
		return "Snow"
	case w.Code <= 82:
		return "Rain showers"
	case w.Code <= 86:
		return "Snow showers"
	case w.Code <= 99:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}
