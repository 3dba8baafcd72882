package components

import (
	"fmt"

	"github.com/venuepulse/footfall-tui/internal/models"
	"github.com/venuepulse/footfall-tui/internal/ui/styles"
)

// FormatMetricValue formats a metric value for display. Counts are whole
// numbers, dwell time is seconds, the other rates are percentages.
func FormatMetricValue(m models.Metric, v float64) string {
	switch {
	case m == models.MetricDwellTime:
		return fmt.Sprintf("%.0fs", v)
	case m.IsRate():
		return fmt.Sprintf("%.2f%%", v)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// RenderDelta renders one benchmark comparison as "value  ▲ +delta (+pct%)".
func RenderDelta(cmp models.BenchmarkComparison) string {
	arrow := "▲"
	if !cmp.Improved {
		arrow = "▼"
	}

	deltaStr := fmt.Sprintf("%s %+.2f", arrow, cmp.Delta)
	if cmp.HasPct {
		deltaStr += fmt.Sprintf(" (%+.1f%%)", cmp.DeltaPct)
	}

	style := styles.GetDeltaStyle(cmp.Improved, true)
	return fmt.Sprintf("%s  %s",
		FormatMetricValue(cmp.Metric, cmp.Primary),
		style.Render(deltaStr))
}

// RenderDeltaRow renders a labelled comparison line for benchmark tables.
func RenderDeltaRow(cmp models.BenchmarkComparison, labelWidth int) string {
	label := fmt.Sprintf("%-*s", labelWidth, cmp.Metric.String())
	return fmt.Sprintf("%s %s  vs %s",
		styles.HelpDescStyle.Render(label),
		RenderDelta(cmp),
		styles.HelpStyle.Render(FormatMetricValue(cmp.Metric, cmp.Comparison)))
}
