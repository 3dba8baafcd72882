package models

import "time"

// PeriodKind identifies the grain of a PeriodAggregate.
type PeriodKind int

const (
	// PeriodWeek buckets by ISO 8601 week (Monday start).
	PeriodWeek PeriodKind = iota
	// PeriodMonth buckets by calendar month.
	PeriodMonth
	// PeriodCustom is an explicit date range.
	PeriodCustom
)

// String returns the display name for a period kind.
func (k PeriodKind) String() string {
	switch k {
	case PeriodWeek:
		return "Week"
	case PeriodMonth:
		return "Month"
	case PeriodCustom:
		return "Range"
	default:
		return "Unknown"
	}
}

// PeriodAggregate is the rollup of the DailyRecords in one bucket. Count
// fields are sums; rate fields are re-derived at this grain; DwellTime and
// weather are arithmetic means across constituent days.
type PeriodAggregate struct {
	Kind   PeriodKind
	Year   int
	Number int // ISO week number or month number; 0 for custom ranges
	Start  time.Time
	End    time.Time

	VisitorsIn  int
	VisitorsOut int
	MenIn       int
	MenOut      int
	WomenIn     int
	WomenOut    int
	GroupIn     int
	GroupOut    int
	Passersby   int

	InHoursVisitorsIn int
	InHoursPassersby  int

	CaptureRate  float64
	Conversion   float64
	DwellTime    float64
	DataAccuracy float64

	AvgTemperature   float64
	AvgPrecipitation float64
	AvgWindSpeed     float64
	WeatherDays      int // days that carried weather data

	Days int
}

// Value returns the named metric from a period aggregate.
func (p *PeriodAggregate) Value(m Metric) float64 {
	switch m {
	case MetricVisitorsIn:
		return float64(p.VisitorsIn)
	case MetricVisitorsOut:
		return float64(p.VisitorsOut)
	case MetricMenIn:
		return float64(p.MenIn)
	case MetricMenOut:
		return float64(p.MenOut)
	case MetricWomenIn:
		return float64(p.WomenIn)
	case MetricWomenOut:
		return float64(p.WomenOut)
	case MetricGroupIn:
		return float64(p.GroupIn)
	case MetricGroupOut:
		return float64(p.GroupOut)
	case MetricPassersby:
		return float64(p.Passersby)
	case MetricCaptureRate:
		return p.CaptureRate
	case MetricConversion:
		return p.Conversion
	case MetricDwellTime:
		return p.DwellTime
	case MetricDataAccuracy:
		return p.DataAccuracy
	default:
		return 0
	}
}

// WeekdayAverage is the historical mean of one metric across all occurrences
// of a weekday. Only positive values contribute (averagePositive); records
// that are entirely zero are excluded as missing data, not zero traffic.
type WeekdayAverage struct {
	Weekday    time.Weekday
	Metric     Metric
	Average    float64
	SampleSize int
	// Values holds the raw contributing per-day values, for inspection.
	Values []float64
}

// HasSamples reports whether any historical day contributed to the average.
// SampleSize 0 means "insufficient data", not an error.
func (w *WeekdayAverage) HasSamples() bool {
	return w.SampleSize > 0
}

// HourlySlot is one hour of a synthetic "average day" built from all
// historical occurrences of a weekday.
type HourlySlot struct {
	Hour        int
	VisitorsIn  float64
	VisitorsOut float64
	Passersby   float64
	GroupIn     float64
	CaptureRate float64
	SampleSize  int
}

// BenchmarkComparison pairs one metric of a primary aggregate against a
// comparison aggregate (a concrete period or a weekday average).
type BenchmarkComparison struct {
	Metric     Metric
	Primary    float64
	Comparison float64
	Delta      float64
	// DeltaPct is only meaningful when HasPct is true (comparison != 0).
	DeltaPct float64
	HasPct   bool
	// Improved follows a uniform higher-is-better convention for every
	// metric, dwell time included.
	Improved bool
}
