/*
Package sqlite persists employee profiles for the work-time calculator.

PURPOSE:
  The calculator itself keeps no state beyond a single report. This store
  keeps what a report is built from, so the HTTP API can rebuild a
  Calculator for any profile and date:
    profiles:    hours per week, regions, hours worked, yearly totals
    ledger_days: vacation and sick days, one row per recorded day
    holidays:    company closing days merged into the calendar

APPEND-ONLY LEDGER:
  ledger_days has no UPDATE or DELETE statements. A day recorded twice is
  two rows and counts twice, exactly like the in-memory ledger.

NUMBERS:
  Hours and day totals are stored as decimal TEXT so the values read back
  are the values written.

UNSET vs ZERO:
  regions_json, vacation_days_total and estimated_sick_days_total are NULL
  until configured. NULL regions is "not set"; "[]" is an empty list.

USAGE:
  store, err := sqlite.New("./worktime.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  calc, profile, err := store.LoadCalculator(ctx, id, cal)

SEE ALSO:
  - profiles.go: Profile and ledger persistence
  - holidays.go: calendar.HolidaySource implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// ErrProfileNotFound is returned for unknown profile ids.
var ErrProfileNotFound = errors.New("profile not found")

// ErrHolidayNotFound is returned when deleting an unknown holiday.
var ErrHolidayNotFound = errors.New("holiday not found")

// Store implements profile, ledger and holiday persistence using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	if strings.HasPrefix(dbPath, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the connection (used by the health endpoint).
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		hours_per_week TEXT NOT NULL,
		hours_worked TEXT NOT NULL DEFAULT '0',
		regions_json TEXT,
		vacation_days_total TEXT,
		estimated_sick_days_total TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Vacation and sick days (append-only, duplicates allowed)
	CREATE TABLE IF NOT EXISTS ledger_days (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		profile_id TEXT NOT NULL REFERENCES profiles(id),
		kind TEXT NOT NULL CHECK (kind IN ('vacation', 'sick')),
		day TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_ledger_days_profile_kind
		ON ledger_days(profile_id, kind, seq);
	CREATE INDEX IF NOT EXISTS idx_ledger_days_day
		ON ledger_days(profile_id, day);

	-- Company holidays; region '' applies to every region
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		region TEXT NOT NULL DEFAULT '',
		day TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_holidays_region_day
		ON holidays(region, day);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_unique
		ON holidays(region, day, name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// UTILITIES
// =============================================================================

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{"ledger_days", "holidays", "profiles"}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
