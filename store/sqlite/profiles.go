package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/warp/worktime/generic"
	"github.com/warp/worktime/worktime"
)

// =============================================================================
// PROFILES
// =============================================================================

// Profile is the stored configuration of one employee's calculator.
// Nil Regions and nil totals mean "not configured".
type Profile struct {
	ID                     string
	Name                   string
	HoursPerWeek           float64
	HoursWorked            float64
	Regions                []string
	VacationDaysTotal      *float64
	EstimatedSickDaysTotal *float64
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// DayKind selects one of the two day ledgers.
type DayKind string

const (
	KindVacation DayKind = "vacation"
	KindSick     DayKind = "sick"
)

// SaveProfile inserts or replaces p. An empty ID is assigned a new UUID,
// which is returned.
func (s *Store) SaveProfile(ctx context.Context, p Profile) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	var regions sql.NullString
	if p.Regions != nil {
		b, err := json.Marshal(p.Regions)
		if err != nil {
			return "", err
		}
		regions = sql.NullString{String: string(b), Valid: true}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	query := `
		INSERT INTO profiles (id, name, hours_per_week, hours_worked, regions_json,
		                      vacation_days_total, estimated_sick_days_total, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			hours_per_week = excluded.hours_per_week,
			hours_worked = excluded.hours_worked,
			regions_json = excluded.regions_json,
			vacation_days_total = excluded.vacation_days_total,
			estimated_sick_days_total = excluded.estimated_sick_days_total,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.Name,
		generic.FormatDecimal(p.HoursPerWeek),
		generic.FormatDecimal(p.HoursWorked),
		regions,
		optionalDecimal(p.VacationDaysTotal),
		optionalDecimal(p.EstimatedSickDaysTotal),
		now, now,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save profile: %w", err)
	}
	return p.ID, nil
}

// GetProfile returns ErrProfileNotFound for unknown ids.
func (s *Store) GetProfile(ctx context.Context, id string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, profileColumns+" WHERE id = ?", id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	return p, err
}

// ListProfiles returns all profiles ordered by name.
func (s *Store) ListProfiles(ctx context.Context) ([]Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, profileColumns+" ORDER BY name, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

const profileColumns = `
	SELECT id, name, hours_per_week, hours_worked, regions_json,
	       vacation_days_total, estimated_sick_days_total, created_at, updated_at
	FROM profiles`

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*Profile, error) {
	var (
		p                         Profile
		hoursPerWeek, hoursWorked string
		regions, vacation, sick   sql.NullString
		createdAt, updatedAt      string
	)
	if err := row.Scan(&p.ID, &p.Name, &hoursPerWeek, &hoursWorked, &regions,
		&vacation, &sick, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if p.HoursPerWeek, err = parseFloat(hoursPerWeek); err != nil {
		return nil, fmt.Errorf("profile %s: hours_per_week: %w", p.ID, err)
	}
	if p.HoursWorked, err = parseFloat(hoursWorked); err != nil {
		return nil, fmt.Errorf("profile %s: hours_worked: %w", p.ID, err)
	}
	if regions.Valid {
		p.Regions = []string{}
		if err := json.Unmarshal([]byte(regions.String), &p.Regions); err != nil {
			return nil, fmt.Errorf("profile %s: regions: %w", p.ID, err)
		}
	}
	if p.VacationDaysTotal, err = parseOptional(vacation); err != nil {
		return nil, fmt.Errorf("profile %s: vacation_days_total: %w", p.ID, err)
	}
	if p.EstimatedSickDaysTotal, err = parseOptional(sick); err != nil {
		return nil, fmt.Errorf("profile %s: estimated_sick_days_total: %w", p.ID, err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &p, nil
}

// =============================================================================
// DAY LEDGERS (append-only)
// =============================================================================

// AppendDay records a single day.
func (s *Store) AppendDay(ctx context.Context, profileID string, kind DayKind, day generic.TimePoint) error {
	return s.AppendDays(ctx, profileID, kind, []generic.TimePoint{day})
}

// AppendDays records days in order in one transaction.
func (s *Store) AppendDays(ctx context.Context, profileID string, kind DayKind, days []generic.TimePoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles WHERE id = ?", profileID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, profileID)
	}

	var seq int64
	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(seq), 0) FROM ledger_days WHERE profile_id = ?", profileID,
	).Scan(&seq); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, d := range days {
		seq++
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO ledger_days (id, seq, profile_id, kind, day, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			uuid.NewString(), seq, profileID, string(kind), d.String(), now,
		); err != nil {
			return fmt.Errorf("failed to append %s day: %w", kind, err)
		}
	}
	return tx.Commit()
}

// ListDays returns a ledger in insertion order.
func (s *Store) ListDays(ctx context.Context, profileID string, kind DayKind) ([]generic.TimePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT day FROM ledger_days WHERE profile_id = ? AND kind = ? ORDER BY seq",
		profileID, string(kind),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []generic.TimePoint{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		d, err := generic.ParseTimePoint(raw)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// =============================================================================
// CALCULATOR
// =============================================================================

// LoadCalculator rebuilds the Calculator of profile id.
func (s *Store) LoadCalculator(ctx context.Context, id string, counter worktime.WorkingDayCounter, opts ...worktime.Option) (*worktime.Calculator, *Profile, error) {
	p, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	vacation, err := s.ListDays(ctx, id, KindVacation)
	if err != nil {
		return nil, nil, err
	}
	sick, err := s.ListDays(ctx, id, KindSick)
	if err != nil {
		return nil, nil, err
	}

	calc := worktime.New(counter, append([]worktime.Option{
		worktime.WithHoursPerWeek(p.HoursPerWeek),
		worktime.WithHoursWorked(p.HoursWorked),
	}, opts...)...)
	if p.Regions != nil {
		calc.SetRegionList(p.Regions)
	}
	if p.VacationDaysTotal != nil {
		calc.SetVacationDaysTotal(*p.VacationDaysTotal)
	}
	if p.EstimatedSickDaysTotal != nil {
		calc.SetEstimatedSickDaysTotal(*p.EstimatedSickDaysTotal)
	}
	for _, d := range vacation {
		calc.AddVacationDay(d)
	}
	for _, d := range sick {
		calc.AddSickDay(d)
	}
	return calc, p, nil
}

func optionalDecimal(f *float64) sql.NullString {
	if f == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: generic.FormatDecimal(*f), Valid: true}
}

func parseFloat(s string) (float64, error) {
	d, err := generic.ParseDecimal(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func parseOptional(s sql.NullString) (*float64, error) {
	if !s.Valid {
		return nil, nil
	}
	f, err := parseFloat(s.String)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
