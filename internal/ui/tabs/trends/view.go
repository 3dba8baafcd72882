package trends

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/venuepulse/footfall-tui/internal/engine"
	"github.com/venuepulse/footfall-tui/internal/models"
	"github.com/venuepulse/footfall-tui/internal/ui/components"
	"github.com/venuepulse/footfall-tui/internal/ui/styles"
)

// View renders the trends tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return styles.CenterBoth(styles.HelpStyle.Render("Loading feed..."), m.width, m.height)
	}
	if !m.state.HasData() {
		return m.renderEmpty()
	}

	days := m.windowDays()

	sections := []string{
		m.renderHeader(days),
		m.renderTrendChart(days),
		m.renderWeekdayPattern(days),
		m.renderPeriodTable(days),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Trends"),
		"",
		styles.HelpStyle.Render("No footfall data loaded."),
		styles.HelpStyle.Render("Trends appear once the feed has been read."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader(days []models.DailyRecord) string {
	title := styles.TitleStyle.Render("Trends: " + m.metric().String())

	badgeStyle := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary)

	rangeBadge := badgeStyle.Render(fmt.Sprintf("[t] %s", m.timeRange.String()))

	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", rangeBadge)

	var subtitle string
	if len(days) > 0 {
		subtitle = styles.HelpStyle.Render(fmt.Sprintf("Data: %s → %s (%d days)",
			days[0].Date.Format("Jan 2, 2006"),
			days[len(days)-1].Date.Format("Jan 2, 2006"),
			len(days),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, subtitle, "")
}

func (m *Model) renderTrendChart(days []models.DailyRecord) string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon,
		styles.CardTitleStyle.Render("Daily "+m.metric().String())), "")

	if len(days) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No days in the selected range"))
	} else {
		metric := m.metric()
		data := make([]float64, len(days))
		for i := range days {
			data[i] = days[i].Value(metric)
		}

		chartWidth := max(cardWidth-12, 30)
		chart := components.RenderLineChart(data, chartWidth, 8,
			fmt.Sprintf("Last %d days", len(days)))

		for _, line := range strings.Split(chart, "\n") {
			rows = append(rows, "  "+line)
		}

		rows = append(rows, "", "  "+m.renderPeakLine(days, metric))
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderPeakLine(days []models.DailyRecord, metric models.Metric) string {
	best := 0
	for i := range days {
		if days[i].Value(metric) > days[best].Value(metric) {
			best = i
		}
	}
	peak := days[best]
	return fmt.Sprintf("Peak: %s (%s)",
		lipgloss.NewStyle().Bold(true).Foreground(styles.Primary).
			Render(peak.Date.Format("Mon Jan 2")),
		components.FormatMetricValue(metric, peak.Value(metric)),
	)
}

// weekdayOrder lists weekdays Monday first, matching the venue week.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

func (m *Model) renderWeekdayPattern(days []models.DailyRecord) string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon,
		styles.CardTitleStyle.Render("Weekday Pattern")), "")

	metric := m.metric()
	values := make([]float64, 7)
	names := make([]string, 7)
	samples := 0
	var peakDay time.Weekday
	var peakVal float64
	for i, wd := range weekdayOrder {
		avg := engine.WeekdayAverage(days, wd, metric)
		values[i] = avg.Average
		names[i] = wd.String()[:3]
		samples += avg.SampleSize
		if avg.Average > peakVal {
			peakVal = avg.Average
			peakDay = wd
		}
	}

	if samples == 0 {
		rows = append(rows, styles.HelpStyle.Render("  Not enough history for a weekday pattern"))
	} else {
		chartWidth := max(cardWidth-12, 30)
		barChart := components.RenderBarChart(values, names, chartWidth)
		for _, line := range strings.Split(barChart, "\n") {
			rows = append(rows, "  "+line)
		}
		rows = append(rows, "", fmt.Sprintf("  Peak day: %s (avg %s)",
			lipgloss.NewStyle().Bold(true).Foreground(styles.Primary).Render(peakDay.String()),
			components.FormatMetricValue(metric, peakVal),
		))
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// weekdayFilter maps the UI day filter onto the aggregation filter.
func (m *Model) weekdayFilter() engine.WeekdayFilter {
	switch m.filter {
	case filterWeekdays:
		return weekdayDays
	case filterWeekends:
		return weekendDays
	default:
		return nil
	}
}

func (m *Model) renderPeriodTable(days []models.DailyRecord) string {
	cardWidth := max(m.width-6, 40)

	var aggs []models.PeriodAggregate
	if m.grain == models.PeriodMonth {
		aggs = engine.MonthlyAggregates(days, m.weekdayFilter())
	} else {
		aggs = engine.WeeklyAggregates(days, m.weekdayFilter())
	}

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s  %s", titleIcon,
		styles.CardTitleStyle.Render(fmt.Sprintf("By %s", m.grain)),
		styles.HelpStyle.Render(fmt.Sprintf("[m] grain  [w] %s", m.filter)),
	), "")

	if len(aggs) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No periods in the selected range"))
	} else {
		header := fmt.Sprintf("  %-14s %9s %10s %9s %8s %7s",
			m.grain.String(), "Visitors", "Passersby", "Capture", "Dwell", "Days")
		rows = append(rows, styles.TableHeaderStyle.Render(header))

		// Newest periods at the bottom, capped so the card stays readable.
		start := max(len(aggs)-12, 0)
		for _, agg := range aggs[start:] {
			rows = append(rows, m.renderPeriodRow(agg))
		}
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderPeriodRow(agg models.PeriodAggregate) string {
	var label string
	if agg.Kind == models.PeriodMonth {
		label = agg.Start.Format("Jan 2006")
	} else {
		label = fmt.Sprintf("W%02d %s", agg.Number, agg.Start.Format("Jan 2"))
	}

	capture := styles.GetCaptureStyle(agg.CaptureRate).
		Render(fmt.Sprintf("%8.2f%%", agg.CaptureRate))

	return fmt.Sprintf("  %-14s %9d %10d %s %7.0fs %7d",
		label, agg.VisitorsIn, agg.Passersby, capture, agg.DwellTime, agg.Days)
}
