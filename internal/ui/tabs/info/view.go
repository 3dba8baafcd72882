package info

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/venuepulse/footfall-tui/internal/ui/styles"
	"github.com/venuepulse/footfall-tui/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	sections := []string{
		m.renderTitle(),
		m.renderConfigCard(),
		m.renderCacheCard(),
		m.renderHoursCard(),
		m.renderAboutCard(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration, cache, and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	w := m.width - 6
	if w < 50 {
		w = 50
	}
	if w > 80 {
		w = 80
	}
	return w
}

func (m *Model) renderConfigCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"), "")

	if m.config != nil {
		rows = append(rows, m.renderInfoRow("Feed File", m.config.FeedPath))
		rows = append(rows, m.renderInfoRow("Snapshot Cache", m.config.DatabasePath))
		rows = append(rows, m.renderInfoRow("Log File", m.config.LogPath))
		rows = append(rows, m.renderInfoRow("Venue Position", fmt.Sprintf("%.4f, %.4f",
			m.config.VenueLatitude, m.config.VenueLongitude)))
		rows = append(rows, m.renderInfoRow("Feed Refresh", m.config.FeedRefreshInterval.String()))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderCacheCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Snapshot Cache"), "")

	if m.services == nil {
		rows = append(rows, styles.HelpStyle.Render("No cache available"))
	} else if stats, err := m.services.SnapshotStats(); err != nil {
		rows = append(rows, styles.ErrorTextStyle.Render("cache error: "+err.Error()))
	} else if stats.RowCount == 0 {
		rows = append(rows, styles.HelpStyle.Render("Cache is empty (no feed read yet)"))
	} else {
		rows = append(rows, m.renderInfoRow("Cached Rows", fmt.Sprintf("%d", stats.RowCount)))
		rows = append(rows, m.renderInfoRow("Weather Days", fmt.Sprintf("%d", stats.WeatherDays)))
		rows = append(rows, m.renderInfoRow("Range", fmt.Sprintf("%s → %s",
			stats.First.Format("Jan 2, 2006"), stats.Last.Format("Jan 2, 2006"))))

		if totals, err := m.services.CachedWeekdayTotals(); err == nil {
			rows = append(rows, "", styles.SubTitleStyle.Render("Cached visitors by weekday"))
			for i := 0; i < 7; i++ {
				// Monday-first ordering.
				wd := time.Weekday((i + 1) % 7)
				rows = append(rows, m.renderInfoRow(wd.String(), fmt.Sprintf("%d", totals[wd])))
			}
		}
	}

	if ds := m.state.Dataset(); ds != nil {
		rows = append(rows, "")
		rows = append(rows, m.renderInfoRow("Loaded Days", fmt.Sprintf("%d", ds.DayCount())))
		if first, last, ok := ds.Bounds(); ok {
			rows = append(rows, m.renderInfoRow("Loaded Range", fmt.Sprintf("%s → %s",
				first.Format("Jan 2, 2006"), last.Format("Jan 2, 2006"))))
		}
		if !m.state.LastUpdated().IsZero() {
			rows = append(rows, m.renderInfoRow("Last Refresh", m.state.LastUpdated().Format("15:04:05")))
		}
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderHoursCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Opening Hours"), "")

	ds := m.state.Dataset()
	if ds == nil {
		rows = append(rows, styles.HelpStyle.Render("Not loaded"))
	} else {
		schedule := ds.OpeningHours()
		for i := 0; i < 7; i++ {
			wd := time.Weekday((i + 1) % 7)
			day := schedule[wd]
			rows = append(rows, m.renderInfoRow(wd.String(),
				fmt.Sprintf("%02d:00 - %02d:00", day.Open, day.Close)))
		}
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderInfoRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func (m *Model) renderAboutCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About Footfall TUI"), "")

	rows = append(rows, m.renderInfoRow("Version", version.Short()))
	rows = append(rows, m.renderInfoRow("Build", version.Info()))
	rows = append(rows, m.renderInfoRow("Go Version", runtime.Version()))
	rows = append(rows, m.renderInfoRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
