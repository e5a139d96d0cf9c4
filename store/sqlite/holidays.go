package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/warp/worktime/calendar"
	"github.com/warp/worktime/generic"
	"github.com/warp/worktime/logger"
)

// =============================================================================
// HOLIDAY CALENDAR IMPLEMENTATION
// =============================================================================

// HolidayRecord is a company holiday. An empty Region applies everywhere.
type HolidayRecord struct {
	ID        string
	Region    string
	Date      generic.TimePoint
	Name      string
	CreatedAt time.Time
}

// Compile-time check that Store can extend the calendar.
var _ calendar.HolidaySource = (*Store)(nil)

// SaveHoliday saves a holiday and returns its id. Saving the same region,
// day and name twice keeps the first record.
func (s *Store) SaveHoliday(ctx context.Context, h HolidayRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h.ID == "" {
		h.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO holidays (id, region, day, name, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		h.ID, h.Region, h.Date.String(), h.Name,
		time.Now().UTC().Format(time.RFC3339),
	)
	if isUniqueConstraintError(err) {
		var existing string
		if qerr := s.db.QueryRowContext(ctx,
			"SELECT id FROM holidays WHERE region = ? AND day = ? AND name = ?",
			h.Region, h.Date.String(), h.Name,
		).Scan(&existing); qerr != nil {
			return "", qerr
		}
		return existing, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to save holiday: %w", err)
	}
	return h.ID, nil
}

// DeleteHoliday deletes a holiday by ID.
func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM holidays WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrHolidayNotFound, id)
	}
	return nil
}

// ListHolidays returns company holidays; a non-empty region also returns
// holidays without a region.
func (s *Store) ListHolidays(ctx context.Context, region string) ([]HolidayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, region, day, name, created_at FROM holidays"
	var args []any
	if region != "" {
		query += " WHERE region = ? OR region = ''"
		args = append(args, region)
	}
	query += " ORDER BY day ASC, name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := []HolidayRecord{}
	for rows.Next() {
		var h HolidayRecord
		var day, createdAt string
		if err := rows.Scan(&h.ID, &h.Region, &day, &h.Name, &createdAt); err != nil {
			return nil, err
		}
		if h.Date, err = generic.ParseTimePoint(day); err != nil {
			return nil, err
		}
		h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// HolidaysIn returns the company holidays of year that apply to any of
// regions. Lookup failures are logged and yield no holidays.
func (s *Store) HolidaysIn(regions []string, year int) []calendar.Holiday {
	holidays, err := s.HolidaysInContext(context.Background(), regions, year)
	if err != nil {
		logger.Component("store").Warn().Err(err).
			Strs("regions", regions).Int("year", year).
			Msg("company holiday lookup failed")
		return nil
	}
	return holidays
}

// HolidaysInContext is HolidaysIn with the lookup error returned.
func (s *Store) HolidaysInContext(ctx context.Context, regions []string, year int) ([]calendar.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT region, day, name FROM holidays
		WHERE day >= ? AND day <= ? AND (region = ''`
	args := []any{generic.StartOfYear(year).String(), generic.EndOfYear(year).String()}
	for _, r := range regions {
		query += " OR region = ?"
		args = append(args, r)
	}
	query += ") ORDER BY day ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var region, day, name string
		if err := rows.Scan(&region, &day, &name); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		d, err := generic.ParseTimePoint(day)
		if err != nil {
			return nil, fmt.Errorf("holiday %q: %w", name, err)
		}
		h := calendar.Holiday{Date: d, Name: name}
		if region != "" {
			h.Regions = []string{region}
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
