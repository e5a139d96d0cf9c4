/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. The core computes in
  float64; every figure leaving the API is a generic.Amount rounded to
  generic.DisplayPlaces, or null when the value is not finite (a zero
  hours-per-week profile divides by zero).

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Profile:   ProfileDTO, ProfileRequest, AddDaysRequest
  Report:    ReportDTO and its sections
  Calendar:  WorkingDaysDTO, HolidaysDTO
  Holidays:  HolidayDTO, CreateHolidayRequest

UNSET vs EMPTY:
  "regions": null (or absent) leaves regions unset; "regions": [] sets an
  empty list. Totals follow the same rule with null.

SEE ALSO:
  - handlers.go: Uses these types
  - worktime/report.go: Report source
*/
package api

import (
	"time"

	"github.com/warp/worktime/calendar"
	"github.com/warp/worktime/generic"
	"github.com/warp/worktime/store/sqlite"
	"github.com/warp/worktime/worktime"
)

// =============================================================================
// PROFILES
// =============================================================================

// ProfileDTO represents a profile in API responses.
type ProfileDTO struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	HoursPerWeek           float64  `json:"hours_per_week"`
	HoursWorked            float64  `json:"hours_worked"`
	Regions                []string `json:"regions"`
	VacationDaysTotal      *float64 `json:"vacation_days_total"`
	EstimatedSickDaysTotal *float64 `json:"estimated_sick_days_total"`
	VacationDays           []string `json:"vacation_days"`
	SickDays               []string `json:"sick_days"`
	CreatedAt              string   `json:"created_at,omitempty"`
	UpdatedAt              string   `json:"updated_at,omitempty"`
}

// ProfileRequest creates or replaces a profile. Nil hours use the
// calculator defaults.
type ProfileRequest struct {
	Name                   string    `json:"name"`
	HoursPerWeek           *float64  `json:"hours_per_week"`
	HoursWorked            *float64  `json:"hours_worked"`
	Regions                *[]string `json:"regions"`
	VacationDaysTotal      *float64  `json:"vacation_days_total"`
	EstimatedSickDaysTotal *float64  `json:"estimated_sick_days_total"`
}

// AddDaysRequest appends days to a vacation or sick ledger.
type AddDaysRequest struct {
	Dates []string `json:"dates"`
}

func toProfile(id string, req ProfileRequest) sqlite.Profile {
	p := sqlite.Profile{
		ID:                     id,
		Name:                   req.Name,
		HoursPerWeek:           worktime.DefaultHoursPerWeek,
		VacationDaysTotal:      req.VacationDaysTotal,
		EstimatedSickDaysTotal: req.EstimatedSickDaysTotal,
	}
	if req.HoursPerWeek != nil {
		p.HoursPerWeek = *req.HoursPerWeek
	}
	if req.HoursWorked != nil {
		p.HoursWorked = *req.HoursWorked
	}
	if req.Regions != nil {
		p.Regions = append([]string{}, *req.Regions...)
	}
	return p
}

func toProfileDTO(p *sqlite.Profile, calc *worktime.Calculator) ProfileDTO {
	dto := ProfileDTO{
		ID:                     p.ID,
		Name:                   p.Name,
		HoursPerWeek:           p.HoursPerWeek,
		HoursWorked:            p.HoursWorked,
		Regions:                p.Regions,
		VacationDaysTotal:      p.VacationDaysTotal,
		EstimatedSickDaysTotal: p.EstimatedSickDaysTotal,
		VacationDays:           []string{},
		SickDays:               []string{},
	}
	if !p.CreatedAt.IsZero() {
		dto.CreatedAt = p.CreatedAt.Format(time.RFC3339)
		dto.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	if calc != nil {
		dto.VacationDays = dayStrings(calc.VacationDayLedger())
		dto.SickDays = dayStrings(calc.SickDayLedger())
	}
	return dto
}

func dayStrings(days []generic.TimePoint) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.String()
	}
	return out
}

// =============================================================================
// REPORT
// =============================================================================

// ReportDTO is worktime.Report in API form.
type ReportDTO struct {
	ProfileID    string          `json:"profile_id,omitempty"`
	Date         string          `json:"date"`
	HoursPerWeek *generic.Amount `json:"hours_per_week"`
	DaysPerWeek  int             `json:"days_per_week"`
	HoursPerDay  *generic.Amount `json:"hours_per_day"`
	HoursWorked  *generic.Amount `json:"hours_worked"`
	DaysWorked   *generic.Amount `json:"days_worked"`
	Regions      []string        `json:"regions"`

	Working    *WorkingDTO    `json:"working"`
	Vacation   VacationDTO    `json:"vacation"`
	Sick       SickDTO        `json:"sick"`
	Projection *ProjectionDTO `json:"projection"`

	Missing []string `json:"missing"`
}

type WorkingDTO struct {
	DaysUntil          int             `json:"days_until"`
	HoursUntil         *generic.Amount `json:"hours_until"`
	DaysRemaining      int             `json:"days_remaining"`
	HoursRemaining     *generic.Amount `json:"hours_remaining"`
	HoursYearTotal     *generic.Amount `json:"hours_year_total"`
	HoursFractionUntil *generic.Amount `json:"hours_fraction_until"`
}

type VacationDTO struct {
	DaysTotal        *generic.Amount `json:"days_total"`
	HoursTotal       *generic.Amount `json:"hours_total"`
	DaysTaken        *generic.Amount `json:"days_taken"`
	HoursTaken       *generic.Amount `json:"hours_taken"`
	DaysAvailable    *generic.Amount `json:"days_available"`
	HoursAvailable   *generic.Amount `json:"hours_available"`
	DaysDistributed  *generic.Amount `json:"days_distributed"`
	HoursDistributed *generic.Amount `json:"hours_distributed"`
	DebtDays         *generic.Amount `json:"debt_days"`
	DebtHours        *generic.Amount `json:"debt_hours"`
}

type SickDTO struct {
	Days                *generic.Amount `json:"days"`
	Hours               *generic.Amount `json:"hours"`
	EstimatedDaysTotal  *generic.Amount `json:"estimated_days_total"`
	EstimatedHoursTotal *generic.Amount `json:"estimated_hours_total"`
	EstimatedDaysLeft   *generic.Amount `json:"estimated_days_left"`
	EstimatedHoursLeft  *generic.Amount `json:"estimated_hours_left"`
}

type ProjectionDTO struct {
	ProjectedHours *generic.Amount `json:"projected_hours"`
	ProjectedDays  *generic.Amount `json:"projected_days"`
	TargetHours    *generic.Amount `json:"target_hours"`
	OvertimeHours  *generic.Amount `json:"overtime_hours"`
	OvertimeDays   *generic.Amount `json:"overtime_days"`
}

// NewReportDTO converts a report; profileID may be empty.
func NewReportDTO(profileID string, r *worktime.Report) ReportDTO {
	dto := ReportDTO{
		ProfileID:    profileID,
		Date:         r.Date.String(),
		HoursPerWeek: amount(r.HoursPerWeek, generic.UnitHours),
		DaysPerWeek:  r.DaysPerWeek,
		HoursPerDay:  amount(r.HoursPerDay, generic.UnitHours),
		HoursWorked:  amount(r.HoursWorked, generic.UnitHours),
		DaysWorked:   amount(r.DaysWorked, generic.UnitDays),
		Regions:      r.Regions,
		Vacation: VacationDTO{
			DaysTotal:        amount(r.Vacation.DaysTotal, generic.UnitDays),
			HoursTotal:       amount(r.Vacation.HoursTotal, generic.UnitHours),
			DaysTaken:        amount(r.Vacation.DaysTaken, generic.UnitDays),
			HoursTaken:       amount(r.Vacation.HoursTaken, generic.UnitHours),
			DaysAvailable:    optionalAmount(r.Vacation.DaysAvailable, generic.UnitDays),
			HoursAvailable:   optionalAmount(r.Vacation.HoursAvailable, generic.UnitHours),
			DaysDistributed:  optionalAmount(r.Vacation.DaysDistributed, generic.UnitDays),
			HoursDistributed: optionalAmount(r.Vacation.HoursDistributed, generic.UnitHours),
			DebtDays:         optionalAmount(r.Vacation.DebtDays, generic.UnitDays),
			DebtHours:        optionalAmount(r.Vacation.DebtHours, generic.UnitHours),
		},
		Sick: SickDTO{
			Days:                amount(r.Sick.Days, generic.UnitDays),
			Hours:               amount(r.Sick.Hours, generic.UnitHours),
			EstimatedDaysTotal:  amount(r.Sick.EstimatedDaysTotal, generic.UnitDays),
			EstimatedHoursTotal: amount(r.Sick.EstimatedHoursTotal, generic.UnitHours),
			EstimatedDaysLeft:   optionalAmount(r.Sick.EstimatedDaysLeft, generic.UnitDays),
			EstimatedHoursLeft:  optionalAmount(r.Sick.EstimatedHoursLeft, generic.UnitHours),
		},
		Missing: r.Missing,
	}
	if dto.Missing == nil {
		dto.Missing = []string{}
	}
	if w := r.Working; w != nil {
		dto.Working = &WorkingDTO{
			DaysUntil:          w.DaysUntil,
			HoursUntil:         amount(w.HoursUntil, generic.UnitHours),
			DaysRemaining:      w.DaysRemaining,
			HoursRemaining:     amount(w.HoursRemaining, generic.UnitHours),
			HoursYearTotal:     amount(w.HoursYearTotal, generic.UnitHours),
			HoursFractionUntil: amount(w.HoursFractionUntil, generic.UnitRatio),
		}
	}
	if p := r.Projection; p != nil {
		dto.Projection = &ProjectionDTO{
			ProjectedHours: amount(p.ProjectedHours, generic.UnitHours),
			ProjectedDays:  amount(p.ProjectedDays, generic.UnitDays),
			TargetHours:    amount(p.TargetHours, generic.UnitHours),
			OvertimeHours:  amount(p.OvertimeHours, generic.UnitHours),
			OvertimeDays:   amount(p.OvertimeDays, generic.UnitDays),
		}
	}
	return dto
}

// amount returns nil for NaN and ±Inf.
func amount(v float64, unit generic.Unit) *generic.Amount {
	a, ok := generic.NewAmount(v, unit)
	if !ok {
		return nil
	}
	a = a.Rounded()
	return &a
}

func optionalAmount(v *float64, unit generic.Unit) *generic.Amount {
	if v == nil {
		return nil
	}
	return amount(*v, unit)
}

// =============================================================================
// CALENDAR
// =============================================================================

// WorkingDaysDTO answers GET /api/calendar/working-days.
type WorkingDaysDTO struct {
	Regions     []string `json:"regions"`
	From        string   `json:"from"`
	Until       string   `json:"until"`
	WorkingDays int      `json:"working_days"`
}

// HolidaysDTO answers GET /api/calendar/holidays.
type HolidaysDTO struct {
	Regions  []string           `json:"regions"`
	Year     int                `json:"year"`
	Holidays []calendar.Holiday `json:"holidays"`
}

// =============================================================================
// COMPANY HOLIDAYS
// =============================================================================

// HolidayDTO represents a stored company holiday.
type HolidayDTO struct {
	ID     string `json:"id"`
	Region string `json:"region"`
	Date   string `json:"date"`
	Name   string `json:"name"`
}

// CreateHolidayRequest adds a company holiday. An empty region applies
// to every region.
type CreateHolidayRequest struct {
	Region string `json:"region"`
	Date   string `json:"date"`
	Name   string `json:"name"`
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Field   string `json:"field,omitempty"`
}
