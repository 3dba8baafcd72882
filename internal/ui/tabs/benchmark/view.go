package benchmark

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/venuepulse/footfall-tui/internal/engine"
	"github.com/venuepulse/footfall-tui/internal/models"
	"github.com/venuepulse/footfall-tui/internal/ui/components"
	"github.com/venuepulse/footfall-tui/internal/ui/styles"
)

const metricLabelWidth = 14

// View renders the benchmark tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return styles.CenterBoth(styles.HelpStyle.Render("Loading feed..."), m.width, m.height)
	}
	if !m.state.HasData() {
		return m.renderEmpty()
	}

	sections := []string{
		m.renderHeader(),
		m.renderDeltaCard(),
	}
	if m.isDayMode() {
		sections = append(sections, m.renderShapeCard(), m.renderPresetCard())
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
		styles.TitleStyle.Render("Benchmark"),
		"",
		styles.HelpStyle.Render("No footfall data loaded."),
		styles.HelpStyle.Render("Benchmarks appear once the feed has been read."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Benchmark")

	badgeStyle := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary)

	modeBadge := badgeStyle.Render(fmt.Sprintf("[c] %s", m.mode))

	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", modeBadge)

	var subtitle string
	if m.isDayMode() {
		days := m.state.Dataset().Daily()
		day := days[m.selectedIndex(days)]
		subtitle = styles.HelpStyle.Render(day.Date.Format("Monday, 2 January 2006"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, subtitle, "")
}

func (m *Model) renderDeltaCard() string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon,
		styles.CardTitleStyle.Render("Metric Comparison")), "")

	cmps, against := m.comparisons()
	if len(cmps) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  Not enough history to compare yet"))
	} else {
		rows = append(rows, "  "+styles.HelpStyle.Render("against "+against), "")
		for _, cmp := range cmps {
			rows = append(rows, "  "+components.RenderDeltaRow(cmp, metricLabelWidth))
		}
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderShapeCard plots the selected day's hourly visitors against the
// historical hourly shape of the same weekday.
func (m *Model) renderShapeCard() string {
	cardWidth := max(m.width-6, 40)
	ds := m.state.Dataset()
	days := ds.Daily()
	day := days[m.selectedIndex(days)]

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon,
		styles.CardTitleStyle.Render("Hourly Shape")), "")

	daySlots := engine.DayHourlySlots(ds.Hourly(), day.Date)
	avgSlots := engine.WeekdayHourlyAverage(ds.Hourly(), day.Weekday())

	dayData := make([]float64, 24)
	avgData := make([]float64, 24)
	for h := 0; h < 24; h++ {
		dayData[h] = daySlots[h].VisitorsIn
		avgData[h] = avgSlots[h].VisitorsIn
	}

	chartWidth := max(cardWidth-12, 30)
	chart := components.RenderDualLineChart(dayData, avgData, chartWidth, 8,
		"Hourly visitors, selected day vs weekday average")
	for _, line := range strings.Split(chart, "\n") {
		rows = append(rows, "  "+line)
	}

	rows = append(rows, "", "  "+components.RenderLegend([]components.LegendItem{
		{Label: "Selected day", Color: components.ChartVisitorsColor},
		{Label: day.Weekday().String() + " average", Color: components.ChartPassersbyColor},
	}), "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderCaptureRow(label string, start, end int, daySlots, avgSlots [24]models.HourlySlot) string {
	dayRate := engine.PeriodCaptureRate(daySlots, start, end)
	avgRate := engine.PeriodCaptureRate(avgSlots, start, end)

	delta := dayRate - avgRate
	style := styles.GetDeltaStyle(delta >= 0, avgRate != 0)
	return fmt.Sprintf("  %-10s %02d-%02d  %s  %s",
		label, start, end,
		styles.GetCaptureStyle(dayRate).Render(fmt.Sprintf("%6.2f%%", dayRate)),
		style.Render(fmt.Sprintf("%+.2f vs avg", delta)),
	)
}

// renderPresetCard compares capture rate over the preset day periods.
func (m *Model) renderPresetCard() string {
	cardWidth := max(m.width-6, 40)
	ds := m.state.Dataset()
	days := ds.Daily()
	day := days[m.selectedIndex(days)]

	daySlots := engine.DayHourlySlots(ds.Hourly(), day.Date)
	avgSlots := engine.WeekdayHourlyAverage(ds.Hourly(), day.Weekday())

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon,
		styles.CardTitleStyle.Render("Capture by Period")), "")

	presets := []models.PeriodPreset{
		models.PresetMorning, models.PresetNoon, models.PresetAfternoon,
	}
	for _, preset := range presets {
		start, end := preset.Range()
		rows = append(rows, m.renderCaptureRow(preset.String(), start, end, daySlots, avgSlots))
	}
	rows = append(rows, m.renderCaptureRow("Custom", m.customStart, m.customEnd, daySlots, avgSlots))

	rows = append(rows, "",
		"  "+styles.HelpStyle.Render("[ ] adjust custom start  { } adjust custom end"))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
