// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/venuepulse/footfall-tui/internal/ui/styles"
)

// Series colors shared by charts and legends.
var (
	ChartVisitorsColor  = lipgloss.Color("#e8833a")
	ChartPassersbyColor = lipgloss.Color("#4285f4")
	ChartPrimaryColor   = lipgloss.Color("#7D56F4")
)

// HeatmapBlocks are block characters for heatmaps, low to high intensity.
var HeatmapBlocks = []rune{'░', '▒', '▓', '█'}

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// maxOf returns the largest value in the slice, never below 1 so it can be
// used as a division denominator for normalization.
func maxOf(values []float64) float64 {
	m := 0.0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	if m == 0 {
		return 1
	}
	return m
}

// bucket maps a value onto an index into a glyph ramp of n steps.
func bucket(v, maxVal float64, n int) int {
	idx := int(v / maxVal * float64(n-1))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

func clampChartDims(width, height int) (int, int) {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	return width, height
}

// RenderLineChart plots a single series, e.g. daily visitors over a range.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render("No data available")
	}
	width, height = clampChartDims(width, height)

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// RenderDualLineChart plots two series on shared axes, e.g. visitors against
// passersby, or the selected day against its weekday average. A shorter
// series is zero-padded so both cover the same x range.
func RenderDualLineChart(primary, secondary []float64, width, height int, caption string) string {
	if len(primary) == 0 && len(secondary) == 0 {
		return styles.HelpStyle.Render("No data available")
	}
	width, height = clampChartDims(width, height)

	n := max(len(primary), len(secondary))
	series := [][]float64{make([]float64, n), make([]float64, n)}
	copy(series[0], primary)
	copy(series[1], secondary)

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
	)
}

// RenderBarChart draws one horizontal bar per value with its label, scaled to
// the largest value.
func RenderBarChart(values []float64, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}
	maxVal := maxOf(values)

	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	// Room for the label column and the numeric suffix.
	barWidth := max(width-labelWidth-10, 10)

	lines := make([]string, 0, len(values))
	for i, v := range values {
		var label string
		if i < len(labels) {
			label = labels[i]
		}
		bar := strings.Repeat("█", int(v/maxVal*float64(barWidth)))
		lines = append(lines, fmt.Sprintf("%*s │%s %.1f", labelWidth, label, bar, v))
	}

	return strings.Join(lines, "\n")
}

// heatStyles indexes a style per heatmap intensity step.
var heatStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(styles.Subtle),
	lipgloss.NewStyle().Foreground(styles.Success),
	lipgloss.NewStyle().Foreground(styles.Warning),
	lipgloss.NewStyle().Foreground(styles.Error),
}

// RenderHourlyHeatmap draws a 24-cell hour-of-day strip, framed by the first
// and last hour labels, with a gap after 11:00 to mark midday. Input shorter
// than 24 slots is zero-padded.
func RenderHourlyHeatmap(patterns []float64) string {
	if len(patterns) != 24 {
		padded := make([]float64, 24)
		copy(padded, patterns)
		patterns = padded
	}
	maxVal := maxOf(patterns)

	var b strings.Builder
	b.WriteString("00 ")
	for hour, v := range patterns {
		step := bucket(v, maxVal, len(HeatmapBlocks))
		b.WriteString(heatStyles[step].Render(string(HeatmapBlocks[step])))
		if hour == 11 {
			b.WriteString(" ")
		}
	}
	b.WriteString(" 23")

	return b.String()
}

// RenderWeeklyPattern draws one spark glyph per weekday, labelled.
func RenderWeeklyPattern(patterns []float64, dayNames []string) string {
	if len(patterns) != 7 {
		padded := make([]float64, 7)
		copy(padded, patterns)
		patterns = padded
	}
	if len(dayNames) != 7 {
		dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	}
	maxVal := maxOf(patterns)

	parts := make([]string, 0, 7)
	for i, v := range patterns {
		spark := sparkChars[bucket(v, maxVal, len(sparkChars))]
		parts = append(parts, fmt.Sprintf("%s %c", dayNames[i], spark))
	}

	return strings.Join(parts, " ")
}

// sampleSparkline walks the values at a fixed stride so they fit the target
// width, emitting one glyph per sample through render.
func sampleSparkline(values []float64, width int, render func(val float64, glyph rune) string) string {
	if len(values) == 0 {
		return ""
	}
	maxVal := maxOf(values)

	step := float64(len(values)) / float64(width)
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		idx := int(float64(i) * step)
		if idx >= len(values) {
			break
		}
		v := values[idx]
		b.WriteString(render(v, sparkChars[bucket(v, maxVal, len(sparkChars))]))
	}
	return b.String()
}

// RenderSparkline draws a compact inline trend of the values.
func RenderSparkline(values []float64, width int) string {
	return sampleSparkline(values, width, func(_ float64, glyph rune) string {
		return string(glyph)
	})
}

// RenderColoredSparkline draws a sparkline colored by each value's share of
// the series maximum, using the capture-rate palette.
func RenderColoredSparkline(values []float64, width int) string {
	maxVal := maxOf(values)
	return sampleSparkline(values, width, func(v float64, glyph rune) string {
		return styles.GetCaptureStyle(v / maxVal * 100).Render(string(glyph))
	})
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}

// RenderLegend draws a color-swatch legend for a chart.
func RenderLegend(items []LegendItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		swatch := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, swatch+" "+item.Label)
	}
	return strings.Join(parts, "  ")
}
