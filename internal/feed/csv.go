// Package feed loads the people-counter CSV export and watches it for
// changes.
package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/venuepulse/footfall-tui/internal/engine"
	"github.com/venuepulse/footfall-tui/internal/logger"
	"github.com/venuepulse/footfall-tui/internal/models"
)

// Column order of the sensor export.
const (
	colTimestamp = iota
	colVisitorsIn
	colVisitorsOut
	colMenIn
	colMenOut
	colWomenIn
	colWomenOut
	colGroupIn
	colGroupOut
	colPassersby
	columnCount
)

// Parse reads sensor rows from a CSV export. The export carries a header
// line plus a repeated header as the first data row; both are skipped.
// Malformed rows are logged and dropped; one bad row never aborts the load.
func Parse(r io.Reader) ([]models.SensorRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may carry trailing vendor columns

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	// Skip the header line and the repeated-header first data row.
	if len(lines) > 0 {
		lines = lines[1:]
	}
	if len(lines) > 0 {
		lines = lines[1:]
	}

	rows := make([]models.SensorRow, 0, len(lines))
	for i, line := range lines {
		row, err := parseRow(line)
		if err != nil {
			logger.Warn("skipping malformed feed row", "line", i+3, "error", err)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseFile loads sensor rows from the export file at path.
func ParseFile(path string) ([]models.SensorRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

func parseRow(line []string) (models.SensorRow, error) {
	if len(line) < columnCount {
		return models.SensorRow{}, fmt.Errorf("expected %d columns, got %d", columnCount, len(line))
	}

	timestamp, err := engine.ParseTimestamp(line[colTimestamp])
	if err != nil {
		return models.SensorRow{}, err
	}

	counts := make([]int, columnCount)
	for col := colVisitorsIn; col < columnCount; col++ {
		n, err := strconv.Atoi(line[col])
		if err != nil {
			return models.SensorRow{}, fmt.Errorf("column %d: %w", col, err)
		}
		if n < 0 {
			return models.SensorRow{}, fmt.Errorf("column %d: negative count %d", col, n)
		}
		counts[col] = n
	}

	return models.SensorRow{
		Timestamp:   timestamp,
		VisitorsIn:  counts[colVisitorsIn],
		VisitorsOut: counts[colVisitorsOut],
		RawMenIn:    counts[colMenIn],
		RawMenOut:   counts[colMenOut],
		RawWomenIn:  counts[colWomenIn],
		RawWomenOut: counts[colWomenOut],
		GroupIn:     counts[colGroupIn],
		GroupOut:    counts[colGroupOut],
		Passersby:   counts[colPassersby],
	}, nil
}
