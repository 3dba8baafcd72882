// Package main is the entry point for the footfall TUI. It loads
// configuration, starts the service manager, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/venuepulse/footfall-tui/internal/app"
	"github.com/venuepulse/footfall-tui/internal/config"
	"github.com/venuepulse/footfall-tui/internal/logger"
	"github.com/venuepulse/footfall-tui/internal/services"
	"github.com/venuepulse/footfall-tui/internal/ui/tabs/benchmark"
	"github.com/venuepulse/footfall-tui/internal/ui/tabs/info"
	"github.com/venuepulse/footfall-tui/internal/ui/tabs/overview"
	"github.com/venuepulse/footfall-tui/internal/ui/tabs/trends"
	"github.com/venuepulse/footfall-tui/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.SetFile(cfg.LogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
	}
	defer logger.Close()

	// Starts the feed watcher and the event fan-out.
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(svcManager, cfg.FeedRefreshInterval)

	// Each tab shares the application state for consistent data access.
	state := model.GetState()
	tabs := []app.Tab{
		overview.New(state),
		trends.New(state),
		benchmark.New(state),
		info.New(state, cfg, svcManager),
	}
	model.SetTabs(tabs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

func printUsage() {
	fmt.Println(`Footfall TUI - people-counter analytics for a single venue

Usage:
  footfall [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-4             Switch between tabs (Overview, Trends, Benchmark, Info)
  Tab/Shift+Tab   Navigate between tabs
  h/l             Previous / next day
  j/k             Cycle trend metric
  t               Cycle trend time range
  c               Cycle benchmark comparison mode
  r               Reload the feed
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  FOOTFALL_FEED_PATH     Path to the people-counter CSV export (required)
  DATABASE_PATH          SQLite snapshot cache path
  WEATHER_API_URL        Weather API base URL (blank disables weather)
  VENUE_LAT, VENUE_LON   Venue position for weather lookups
  FEED_REFRESH_INTERVAL  Feed polling interval (default: 5m)
  LOG_PATH               Log file path

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/footfall/.env
  - ~/.footfall/.env`)
}
