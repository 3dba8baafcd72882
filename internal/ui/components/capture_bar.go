// Package components provides reusable UI components.
package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/venuepulse/footfall-tui/internal/logger"
	"github.com/venuepulse/footfall-tui/internal/ui/styles"
)

type AnimationTickMsg time.Time

func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*50, func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}

// CaptureBar renders a capture-rate progress bar with label and percentage.
type CaptureBar struct {
	progress       progress.Model
	label          string
	percent        float64
	isAnimating    bool
	targetPercent  float64
	currentPercent float64
}

// NewCaptureBar creates a new capture bar with gradient colors.
func NewCaptureBar() CaptureBar {
	return NewCaptureBarWithWidth(30)
}

// NewCaptureBarWithWidth creates a capture bar with a specific width.
func NewCaptureBarWithWidth(width int) CaptureBar {
	p := progress.New(
		progress.WithScaledGradient("#ff6b6b", "#51cf66"),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)

	return CaptureBar{progress: p}
}

// Init initializes the progress bar model.
func (c CaptureBar) Init() tea.Cmd {
	return nil
}

// Update handles progress bar animation messages.
func (c CaptureBar) Update(msg tea.Msg) (CaptureBar, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case AnimationTickMsg:
		if c.isAnimating {
			if c.currentPercent < c.targetPercent {
				step := (c.targetPercent - c.currentPercent) / 10
				if step < 0.5 {
					step = 0.5
				}
				c.currentPercent += step
				if c.currentPercent > c.targetPercent {
					c.currentPercent = c.targetPercent
				}
				cmds = append(cmds, animationTick())
			} else if c.currentPercent > c.targetPercent {
				step := (c.currentPercent - c.targetPercent) / 10
				if step < 0.5 {
					step = 0.5
				}
				c.currentPercent -= step
				if c.currentPercent < c.targetPercent {
					c.currentPercent = c.targetPercent
				}
				cmds = append(cmds, animationTick())
			} else {
				c.isAnimating = false
			}
		}
	}

	var cmd tea.Cmd
	model, cmd := c.progress.Update(msg)
	c.progress = model.(progress.Model)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// SetPercent sets the current percentage.
func (c *CaptureBar) SetPercent(percent float64) tea.Cmd {
	c.percent = percent
	c.targetPercent = percent

	if !c.isAnimating {
		c.isAnimating = true
		return tea.Batch(
			c.progress.SetPercent(percent/100),
			animationTick(),
		)
	}

	return c.progress.SetPercent(percent / 100)
}

// SetLabel sets the bar label.
func (c *CaptureBar) SetLabel(label string) {
	c.label = label
}

// SetWidth sets the progress bar width.
func (c *CaptureBar) SetWidth(width int) {
	c.progress.Width = width
}

// View renders the capture bar with percentage and label.
func (c CaptureBar) View(percent float64, label string, width int) string {
	barWidth := width - 30 // Reserve space for label and percentage
	if barWidth < 10 {
		barWidth = 10
	}
	c.progress.Width = barWidth

	bar := c.progress.ViewAs(percent / 100)

	percentStyle := styles.GetCaptureStyle(percent)
	percentStr := percentStyle.Width(7).Align(lipgloss.Right).Render(fmt.Sprintf("%.2f%%", percent))

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(15).
		Render(label)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		labelStr,
		bar,
		" ",
		percentStr,
	)
}

// ViewCompact renders a compact version without label.
func (c CaptureBar) ViewCompact(percent float64, width int) string {
	barWidth := width - 8
	if barWidth < 5 {
		barWidth = 5
	}
	c.progress.Width = barWidth

	bar := c.progress.ViewAs(percent / 100)
	percentStyle := styles.GetCaptureStyle(percent)
	percentStr := percentStyle.Render(fmt.Sprintf("%.2f%%", percent))

	return lipgloss.JoinHorizontal(lipgloss.Center, bar, " ", percentStr)
}

// RenderGradientBar renders just the bar part with gradient colors.
func RenderGradientBar(percent float64, width int) string {
	if width < 1 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barChars []string
	for i := 0; i < width; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, width-1))
			color := interpolateColor("#ff6b6b", "#51cf66", t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			barChars = append(barChars, style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(styles.Subtle)
			barChars = append(barChars, style.Render("░"))
		}
	}

	return strings.Join(barChars, "")
}

// SimpleCaptureBar renders a simple ASCII progress bar with gradient colors.
func SimpleCaptureBar(percent float64, label string, width int) string {
	labelWidth := len(label) + 1
	percentWidth := 7
	barWidth := width - labelWidth - percentWidth - 4

	if barWidth < 5 {
		barWidth = 5
	}

	bar := RenderGradientBar(percent, barWidth)

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(label)

	percentStr := styles.GetCaptureStyle(percent).
		Width(percentWidth).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%.2f%%", percent))

	return fmt.Sprintf("%s [%s] %s", labelStr, bar, percentStr)
}

// SimpleBarLoading renders a shimmering placeholder bar while data loads.
func SimpleBarLoading(label string, width int, frame int) string {
	const (
		indentWidth  = 4
		percentWidth = 7
	)

	barWidth := width - indentWidth - percentWidth - 4
	if barWidth < 10 {
		barWidth = 10
	}

	accentColor := styles.Passersby
	if strings.Contains(strings.ToLower(label), "visitor") {
		accentColor = styles.Visitors
	} else if strings.Contains(strings.ToLower(label), "capture") {
		accentColor = styles.Primary
	}

	cycle := 120

	t := float64(frame%cycle) / float64(cycle)
	var p float64
	if t < 0.5 {
		p = t * 2
	} else {
		p = (1 - t) * 2
	}
	eased := p * p * (3 - 2*p)
	shimmerPos := int(eased * float64(barWidth))
	var barChars []string

	for i := 0; i < barWidth; i++ {
		dist := shimmerPos - i
		if dist < 0 {
			dist = -dist
		}

		var char string
		var style lipgloss.Style

		if dist < 3 {
			char = "▓"
			style = lipgloss.NewStyle().Foreground(accentColor)
		} else if dist < 5 {
			char = "▒"
			style = lipgloss.NewStyle().Foreground(styles.TextSecondary)
		} else {
			char = "░"
			style = lipgloss.NewStyle().Foreground(styles.BgLight)
		}

		barChars = append(barChars, style.Render(char))
	}

	bar := strings.Join(barChars, "")

	indent := "    "

	dots := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	dot := dots[(frame/2)%len(dots)]

	loadingStr := lipgloss.NewStyle().
		Width(percentWidth).
		Align(lipgloss.Right).
		Foreground(accentColor).
		Render(dot)

	return lipgloss.JoinHorizontal(lipgloss.Left,
		indent,
		bar,
		" ",
		loadingStr,
	)
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}
