package models

// Metric identifies a single measurable series on hourly and daily records.
type Metric string

const (
	MetricVisitorsIn   Metric = "visitorsIn"
	MetricVisitorsOut  Metric = "visitorsOut"
	MetricMenIn        Metric = "menIn"
	MetricMenOut       Metric = "menOut"
	MetricWomenIn      Metric = "womenIn"
	MetricWomenOut     Metric = "womenOut"
	MetricGroupIn      Metric = "groupIn"
	MetricGroupOut     Metric = "groupOut"
	MetricPassersby    Metric = "passersby"
	MetricCaptureRate  Metric = "captureRate"
	MetricConversion   Metric = "conversion"
	MetricDwellTime    Metric = "dwellTime"
	MetricDataAccuracy Metric = "dataAccuracy"
)

// CountMetrics are the summable visitor-count series.
var CountMetrics = []Metric{
	MetricVisitorsIn, MetricVisitorsOut,
	MetricMenIn, MetricMenOut,
	MetricWomenIn, MetricWomenOut,
	MetricGroupIn, MetricGroupOut,
	MetricPassersby,
}

// BenchmarkMetrics are the series shown on comparison cards.
var BenchmarkMetrics = []Metric{
	MetricVisitorsIn, MetricPassersby,
	MetricCaptureRate, MetricConversion,
	MetricDwellTime, MetricDataAccuracy,
}

// String returns the display name for a metric.
func (m Metric) String() string {
	switch m {
	case MetricVisitorsIn:
		return "Visitors In"
	case MetricVisitorsOut:
		return "Visitors Out"
	case MetricMenIn:
		return "Men In"
	case MetricMenOut:
		return "Men Out"
	case MetricWomenIn:
		return "Women In"
	case MetricWomenOut:
		return "Women Out"
	case MetricGroupIn:
		return "Groups In"
	case MetricGroupOut:
		return "Groups Out"
	case MetricPassersby:
		return "Passersby"
	case MetricCaptureRate:
		return "Capture Rate"
	case MetricConversion:
		return "Conversion"
	case MetricDwellTime:
		return "Dwell Time"
	case MetricDataAccuracy:
		return "Data Accuracy"
	default:
		return string(m)
	}
}

// IsRate reports whether the metric is a derived percentage/ratio rather than
// a raw count.
func (m Metric) IsRate() bool {
	switch m {
	case MetricCaptureRate, MetricConversion, MetricDwellTime, MetricDataAccuracy:
		return true
	default:
		return false
	}
}

// Value returns the named metric from an hourly record.
func (h *HourlyRecord) Value(m Metric) float64 {
	switch m {
	case MetricVisitorsIn:
		return float64(h.VisitorsIn)
	case MetricVisitorsOut:
		return float64(h.VisitorsOut)
	case MetricMenIn:
		return float64(h.MenIn)
	case MetricMenOut:
		return float64(h.MenOut)
	case MetricWomenIn:
		return float64(h.WomenIn)
	case MetricWomenOut:
		return float64(h.WomenOut)
	case MetricGroupIn:
		return float64(h.GroupIn)
	case MetricGroupOut:
		return float64(h.GroupOut)
	case MetricPassersby:
		return float64(h.Passersby)
	case MetricCaptureRate:
		return h.CaptureRate
	default:
		return 0
	}
}

// Value returns the named metric from a daily record.
func (d *DailyRecord) Value(m Metric) float64 {
	switch m {
	case MetricVisitorsIn:
		return float64(d.VisitorsIn)
	case MetricVisitorsOut:
		return float64(d.VisitorsOut)
	case MetricMenIn:
		return float64(d.MenIn)
	case MetricMenOut:
		return float64(d.MenOut)
	case MetricWomenIn:
		return float64(d.WomenIn)
	case MetricWomenOut:
		return float64(d.WomenOut)
	case MetricGroupIn:
		return float64(d.GroupIn)
	case MetricGroupOut:
		return float64(d.GroupOut)
	case MetricPassersby:
		return float64(d.Passersby)
	case MetricCaptureRate:
		return d.CaptureRate
	case MetricConversion:
		return d.Conversion
	case MetricDwellTime:
		return d.DwellTime
	case MetricDataAccuracy:
		return d.DataAccuracy
	default:
		return 0
	}
}
