package overview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/venuepulse/footfall-tui/internal/engine"
	"github.com/venuepulse/footfall-tui/internal/models"
	"github.com/venuepulse/footfall-tui/internal/ui/components"
	"github.com/venuepulse/footfall-tui/internal/ui/styles"
)

// View renders the overview tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	ds := m.state.Dataset()
	if ds == nil || ds.DayCount() == 0 {
		return m.renderEmpty()
	}

	days := ds.Daily()
	day := days[m.selectedIndex(days)]

	var sections []string
	sections = append(sections, m.renderTitle(day))
	sections = append(sections, m.renderDayCard(day))
	sections = append(sections, m.renderHourlyCard(day))
	sections = append(sections, m.renderPresetCard(day))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderEmpty() string {
	msg := styles.HelpStyle.Render("No footfall data loaded. Check the feed file and press r to reload.")
	return styles.CenterBoth(msg, m.width, m.height)
}

func (m *Model) renderTitle(day models.DailyRecord) string {
	title := styles.TitleStyle.Render(day.Date.Format("Monday, 2 January 2006"))

	var badges []string
	if m.state.FromCache() {
		badges = append(badges, styles.WarningTextStyle.Render("[cached]"))
	}
	if !day.HasData {
		badges = append(badges, styles.ErrorTextStyle.Render("[sensor offline]"))
	}
	hours := m.state.Dataset().OpeningHours()[day.Weekday()]
	badges = append(badges, styles.HelpStyle.Render(fmt.Sprintf("open %02d:00-%02d:00", hours.Open, hours.Close)))

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(badges, " "), "")
}

func (m *Model) renderDayCard(day models.DailyRecord) string {
	cardWidth := max(m.width-6, 40)
	barWidth := max(cardWidth-8, 30)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Day Summary")))
	rows = append(rows, "")

	rows = append(rows, m.renderCounts(day))
	rows = append(rows, "")

	rows = append(rows, components.SimpleCaptureBar(day.CaptureRate, "Capture   ", barWidth))
	rows = append(rows, components.SimpleCaptureBar(day.Conversion, "Conversion", barWidth))
	rows = append(rows, m.renderAccuracyLine(day, barWidth))
	rows = append(rows, "")

	dwellLabel := styles.HelpDescStyle.Render("Avg dwell time")
	rows = append(rows, fmt.Sprintf("  %s  %s", dwellLabel,
		components.FormatMetricValue(models.MetricDwellTime, day.DwellTime)))

	if day.Weather != nil {
		rows = append(rows, "")
		rows = append(rows, m.renderWeatherLine(day.Weather))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderCounts(day models.DailyRecord) string {
	in := lipgloss.NewStyle().Foreground(styles.Visitors).Bold(true).Render(fmt.Sprintf("%d in", day.VisitorsIn))
	out := styles.HelpDescStyle.Render(fmt.Sprintf("%d out", day.VisitorsOut))
	gender := styles.HelpStyle.Render(fmt.Sprintf("%d men / %d women", day.MenIn, day.WomenIn))
	groups := styles.HelpStyle.Render(fmt.Sprintf("%d groups", day.GroupIn))
	passing := lipgloss.NewStyle().Foreground(styles.Passersby).Render(fmt.Sprintf("%d passersby", day.Passersby))

	return fmt.Sprintf("  %s  %s  │  %s  │  %s  │  %s", in, out, gender, groups, passing)
}

func (m *Model) renderAccuracyLine(day models.DailyRecord, barWidth int) string {
	line := components.SimpleCaptureBar(day.DataAccuracy, "Accuracy  ", barWidth)
	if day.HasData && day.DataAccuracy < 80 {
		line += " " + styles.AccuracyWarnStyle.Render("check sensor")
	}
	return line
}

func (m *Model) renderWeatherLine(w *models.DayWeather) string {
	icon := styles.WeatherStyle.Render("☁")
	return fmt.Sprintf("  %s %s", icon, styles.WeatherStyle.Render(fmt.Sprintf(
		"%s, %.1f°C, %.1fmm precipitation, wind %.0f km/h",
		w.Description(), w.Temperature, w.Precipitation, w.WindSpeed)))
}

func (m *Model) renderHourlyCard(day models.DailyRecord) string {
	cardWidth := max(m.width-6, 40)
	ds := m.state.Dataset()
	hourly := ds.DayHours(day.Date)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Hourly Footfall")))
	rows = append(rows, "")

	if len(hourly) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No hourly records for this day"))
		return styles.CardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	visitors := make([]float64, 0, len(hourly))
	passersby := make([]float64, 0, len(hourly))
	for i := range hourly {
		visitors = append(visitors, float64(hourly[i].VisitorsIn))
		passersby = append(passersby, float64(hourly[i].Passersby))
	}

	chartWidth := max(cardWidth-16, 20)
	chart := components.RenderDualLineChart(visitors, passersby, chartWidth, 8, "")
	rows = append(rows, chart)
	rows = append(rows, "")
	rows = append(rows, components.RenderLegend([]components.LegendItem{
		{Label: "Visitors in", Color: components.ChartVisitorsColor},
		{Label: "Passersby", Color: components.ChartPassersbyColor},
	}))
	rows = append(rows, "")

	heat := make([]float64, 24)
	for i := range hourly {
		heat[hourly[i].Hour()] = float64(hourly[i].VisitorsIn)
	}
	rows = append(rows, "  "+components.RenderHourlyHeatmap(heat))

	peak := m.peakLine(hourly)
	if peak != "" {
		rows = append(rows, "")
		rows = append(rows, peak)
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) peakLine(hourly []models.HourlyRecord) string {
	peakIdx := -1
	peakLive := -1
	for i := range hourly {
		if hourly[i].LiveVisitors > peakLive {
			peakLive = hourly[i].LiveVisitors
			peakIdx = i
		}
	}
	if peakIdx < 0 || peakLive <= 0 {
		return ""
	}
	return styles.HelpStyle.Render(fmt.Sprintf(
		"  Peak occupancy: %d visitors around %02d:00", peakLive, hourly[peakIdx].Hour()))
}

func (m *Model) renderPresetCard(day models.DailyRecord) string {
	cardWidth := max(m.width-6, 40)
	slots := engine.DayHourlySlots(m.state.Dataset().Hourly(), day.Date)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Period Capture Rates")))
	rows = append(rows, "")

	presets := []models.PeriodPreset{models.PresetMorning, models.PresetNoon, models.PresetAfternoon}
	for _, preset := range presets {
		rate := engine.PresetCaptureRate(slots, preset)
		start, end := preset.Range()
		label := fmt.Sprintf("%-10s %02d-%02d", preset.String(), start, end)
		rows = append(rows, "  "+components.SimpleCaptureBar(rate, label, max(cardWidth-12, 30)))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
