// Package db manages the local snapshot cache database.
//
// The cache holds the last successfully loaded feed rows and weather days so
// the dashboard can come up with data when the export file or the weather API
// is unreachable. It is a local convenience cache, not a system of record.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
)

// timeFormat is used for every timestamp column. Formatting explicitly keeps
// the values compatible with SQLite's date/time functions; time.Time's
// default string form would not be.
const timeFormat = "2006-01-02 15:04:05"

// DB wraps the SQL database connection with application-specific methods.
type DB struct {
	*sql.DB
	path string
}

// New creates a new database connection and initializes the schema.
func New(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	if err := db.configure(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := db.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// configure sets up database pragmas for optimal performance.
func (db *DB) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA temp_store=MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

func (db *DB) createSchema() error {
	if err := db.createSensorHoursTable(); err != nil {
		return err
	}
	return db.createDayWeatherTable()
}

func (db *DB) createSensorHoursTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS sensor_hours (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		observed_at DATETIME NOT NULL,
		visitors_in INTEGER DEFAULT 0,
		visitors_out INTEGER DEFAULT 0,
		men_in INTEGER DEFAULT 0,
		men_out INTEGER DEFAULT 0,
		women_in INTEGER DEFAULT 0,
		women_out INTEGER DEFAULT 0,
		group_in INTEGER DEFAULT 0,
		group_out INTEGER DEFAULT 0,
		passersby INTEGER DEFAULT 0,
		year INTEGER GENERATED ALWAYS AS (CAST(strftime('%Y', observed_at) AS INTEGER)) STORED,
		month INTEGER GENERATED ALWAYS AS (CAST(strftime('%m', observed_at) AS INTEGER)) STORED,
		day_of_week INTEGER GENERATED ALWAYS AS (CAST(strftime('%w', observed_at) AS INTEGER)) STORED,
		hour INTEGER GENERATED ALWAYS AS (CAST(strftime('%H', observed_at) AS INTEGER)) STORED,
		UNIQUE(observed_at)
	);
	CREATE INDEX IF NOT EXISTS idx_sensor_hours_time ON sensor_hours(observed_at);
	CREATE INDEX IF NOT EXISTS idx_sensor_hours_dow_hour ON sensor_hours(day_of_week, hour);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

func (db *DB) createDayWeatherTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS day_weather (
		date TEXT PRIMARY KEY,
		code INTEGER DEFAULT 0,
		temperature REAL DEFAULT 0,
		precipitation REAL DEFAULT 0,
		wind_speed REAL DEFAULT 0
	);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

// Close closes the database connection gracefully.
func (db *DB) Close() error {
	// Checkpoint WAL before closing
	_, _ = db.ExecContext(context.Background(), "PRAGMA wal_checkpoint(TRUNCATE)")
	return db.DB.Close()
}

// Vacuum performs database maintenance to reclaim space.
func (db *DB) Vacuum() error {
	_, err := db.ExecContext(context.Background(), "VACUUM")
	return err
}
