package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/venuepulse/footfall-tui/internal/models"
)

// ReplaceSensorRows stores a freshly loaded feed snapshot, replacing any
// previous one. The swap happens in one transaction so concurrent readers
// never see a half-written cache.
func (db *DB) ReplaceSensorRows(rows []models.SensorRow) error {
	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM sensor_hours"); err != nil {
		return fmt.Errorf("failed to clear sensor snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sensor_hours (
			observed_at, visitors_in, visitors_out,
			men_in, men_out, women_in, women_out,
			group_in, group_out, passersby
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(observed_at) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare snapshot insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range rows {
		_, err := stmt.Exec(
			row.Timestamp.Format(timeFormat),
			row.VisitorsIn, row.VisitorsOut,
			row.RawMenIn, row.RawMenOut, row.RawWomenIn, row.RawWomenOut,
			row.GroupIn, row.GroupOut, row.Passersby,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sensor row: %w", err)
		}
	}

	return tx.Commit()
}

// LoadSensorRows returns the cached feed snapshot in ascending time order.
func (db *DB) LoadSensorRows() ([]models.SensorRow, error) {
	query := `
		SELECT observed_at, visitors_in, visitors_out,
		       men_in, men_out, women_in, women_out,
		       group_in, group_out, passersby
		FROM sensor_hours
		ORDER BY observed_at ASC
	`
	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sensor snapshot: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []models.SensorRow
	for rows.Next() {
		var r models.SensorRow
		var observedAt string
		err := rows.Scan(
			&observedAt, &r.VisitorsIn, &r.VisitorsOut,
			&r.RawMenIn, &r.RawMenOut, &r.RawWomenIn, &r.RawWomenOut,
			&r.GroupIn, &r.GroupOut, &r.Passersby,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sensor row: %w", err)
		}
		t, err := time.Parse(timeFormat, observedAt)
		if err != nil {
			continue
		}
		r.Timestamp = t
		result = append(result, r)
	}

	return result, rows.Err()
}

// UpsertDayWeather stores daily weather entries keyed by ISO date.
func (db *DB) UpsertDayWeather(weather map[string]*models.DayWeather) error {
	stmt, err := db.Prepare(`
		INSERT INTO day_weather (date, code, temperature, precipitation, wind_speed)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			code = excluded.code,
			temperature = excluded.temperature,
			precipitation = excluded.precipitation,
			wind_speed = excluded.wind_speed
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare weather upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for date, w := range weather {
		if _, err := stmt.Exec(date, w.Code, w.Temperature, w.Precipitation, w.WindSpeed); err != nil {
			return fmt.Errorf("failed to upsert weather for %s: %w", date, err)
		}
	}
	return nil
}

// LoadDayWeather returns all cached weather entries keyed by ISO date.
func (db *DB) LoadDayWeather() (map[string]*models.DayWeather, error) {
	rows, err := db.QueryContext(context.Background(),
		"SELECT date, code, temperature, precipitation, wind_speed FROM day_weather")
	if err != nil {
		return nil, fmt.Errorf("failed to query weather cache: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]*models.DayWeather)
	for rows.Next() {
		var dateStr string
		w := &models.DayWeather{}
		if err := rows.Scan(&dateStr, &w.Code, &w.Temperature, &w.Precipitation, &w.WindSpeed); err != nil {
			return nil, fmt.Errorf("failed to scan weather row: %w", err)
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		w.Date = date
		result[dateStr] = w
	}
	return result, rows.Err()
}

// SnapshotStats summarizes the cached feed snapshot.
type SnapshotStats struct {
	RowCount    int
	WeatherDays int
	First       time.Time
	Last        time.Time
}

// CachedRange returns the bounds and size of the cached snapshot. A zero
// RowCount means the cache is empty (e.g. first run).
func (db *DB) CachedRange() (*SnapshotStats, error) {
	stats := &SnapshotStats{}

	var first, last sql.NullString
	err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*), MIN(observed_at), MAX(observed_at) FROM sensor_hours").
		Scan(&stats.RowCount, &first, &last)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot range: %w", err)
	}
	if first.Valid {
		if t, err := time.Parse(timeFormat, first.String); err == nil {
			stats.First = t
		}
	}
	if last.Valid {
		if t, err := time.Parse(timeFormat, last.String); err == nil {
			stats.Last = t
		}
	}

	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM day_weather").Scan(&stats.WeatherDays)
	if err != nil {
		return nil, fmt.Errorf("failed to count weather cache: %w", err)
	}

	return stats, nil
}

// WeekdayVisitorTotals sums cached visitors-in per day of week (0 = Sunday),
// using the generated day_of_week column. Used for cache sanity reporting.
func (db *DB) WeekdayVisitorTotals() ([7]int, error) {
	var totals [7]int
	rows, err := db.QueryContext(context.Background(), `
		SELECT day_of_week, SUM(visitors_in)
		FROM sensor_hours
		GROUP BY day_of_week
		ORDER BY day_of_week ASC
	`)
	if err != nil {
		return totals, fmt.Errorf("failed to query weekday totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var dow, sum sql.NullInt64
		if err := rows.Scan(&dow, &sum); err != nil {
			return totals, fmt.Errorf("failed to scan weekday total: %w", err)
		}
		if dow.Valid && dow.Int64 >= 0 && dow.Int64 < 7 {
			totals[dow.Int64] = int(sum.Int64)
		}
	}
	return totals, rows.Err()
}
