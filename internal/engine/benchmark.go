package engine

import "github.com/venuepulse/footfall-tui/internal/models"

// MetricSource is anything that exposes per-metric values: daily records,
// period aggregates, or weekday-average value sets.
type MetricSource interface {
	Value(models.Metric) float64
}

// MetricValues adapts a plain metric map (e.g. a weekday-average set) to the
// MetricSource interface.
type MetricValues map[models.Metric]float64

// Value returns the named metric, 0 when absent.
func (v MetricValues) Value(m models.Metric) float64 { return v[m] }

// BenchmarkDiff compares a primary aggregate against a comparison aggregate
// metric by metric. Delta is primary minus comparison; the percentage delta
// is only set when the comparison value is non-zero. Classification is a
// uniform higher-is-better convention: no metric is inverted, dwell time
// included.
func BenchmarkDiff(primary, comparison MetricSource, metrics []models.Metric) []models.BenchmarkComparison {
	result := make([]models.BenchmarkComparison, 0, len(metrics))
	for _, metric := range metrics {
		p := primary.Value(metric)
		c := comparison.Value(metric)
		cmp := models.BenchmarkComparison{
			Metric:     metric,
			Primary:    p,
			Comparison: c,
			Delta:      round2(p - c),
			Improved:   p-c >= 0,
		}
		if c != 0 {
			cmp.DeltaPct = round2((p - c) / c * 100)
			cmp.HasPct = true
		}
		result = append(result, cmp)
	}
	return result
}
