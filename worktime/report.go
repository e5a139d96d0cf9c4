package worktime

import (
	"github.com/warp/worktime/generic"
)

// =============================================================================
// REPORT - Every date-dependent query evaluated for one day
// =============================================================================

// Report is a point-in-time view of a Calculator. Sections whose
// configuration is missing are nil and their fields are listed in Missing.
type Report struct {
	Date         generic.TimePoint
	HoursPerWeek float64
	DaysPerWeek  int
	HoursPerDay  float64
	HoursWorked  float64
	DaysWorked   float64
	Regions      []string

	Working    *WorkingSummary
	Vacation   VacationSummary
	Sick       SickSummary
	Projection *ProjectionSummary

	Missing []string
}

// WorkingSummary covers the calendar queries. Nil without regions.
type WorkingSummary struct {
	DaysUntil          int
	HoursUntil         float64
	DaysRemaining      int
	HoursRemaining     float64
	HoursYearTotal     float64
	HoursFractionUntil float64
}

// VacationSummary always carries the ledger counts; the entitlement fields
// are nil when their preconditions fail.
type VacationSummary struct {
	DaysTotal  float64
	HoursTotal float64
	DaysTaken  float64
	HoursTaken float64

	DaysAvailable    *float64
	HoursAvailable   *float64
	DaysDistributed  *float64
	HoursDistributed *float64
	DebtDays         *float64
	DebtHours        *float64
}

type SickSummary struct {
	Days                float64
	Hours               float64
	EstimatedDaysTotal  float64
	EstimatedHoursTotal float64
	EstimatedDaysLeft   *float64
	EstimatedHoursLeft  *float64
}

// ProjectionSummary is nil unless regions and the vacation total are set.
type ProjectionSummary struct {
	ProjectedHours float64
	ProjectedDays  float64
	TargetHours    float64
	OvertimeHours  float64
	OvertimeDays   float64
}

// Report evaluates the calculator at date. Only precondition failures are
// absorbed into Missing; they are the only errors the queries return.
func (c *Calculator) Report(date generic.TimePoint) *Report {
	r := &Report{
		Date:         date,
		HoursPerWeek: c.hoursPerWeek,
		DaysPerWeek:  DaysPerWeek,
		HoursPerDay:  c.HoursPerDay(),
		HoursWorked:  c.hoursWorked,
		DaysWorked:   c.DaysWorked(),
		Regions:      c.Regions(),
		Vacation: VacationSummary{
			DaysTotal:  c.vacationDaysTotal,
			HoursTotal: c.VacationHoursTotal(),
			DaysTaken:  c.VacationDaysTaken(date),
			HoursTaken: c.VacationHoursTaken(date),
		},
		Sick: SickSummary{
			Days:                c.SickDays(date),
			Hours:               c.SickHours(date),
			EstimatedDaysTotal:  c.estimatedSickDaysTotal,
			EstimatedHoursTotal: c.EstimatedSickHoursTotal(),
		},
	}

	missing := map[string]bool{}
	note := func(err error) bool {
		if err == nil {
			return true
		}
		if f := generic.MissingField(err); f != "" && !missing[f] {
			missing[f] = true
			r.Missing = append(r.Missing, f)
		}
		return false
	}

	if c.regionsSet {
		r.Working = c.workingSummary(date)
	} else {
		note(generic.Missing(generic.FieldRegions))
	}

	v := &r.Vacation
	v.DaysAvailable = optional(c.VacationDaysAvailable(date))
	v.HoursAvailable = optional(c.VacationHoursAvailable(date))
	if v.DaysAvailable == nil {
		note(c.requireVacationTotal())
	}
	v.DaysDistributed = optional(c.VacationDaysDistributedUntil(date))
	v.HoursDistributed = optional(c.VacationHoursDistributedUntil(date))
	v.DebtDays = optional(c.VacationDebtDays(date))
	v.DebtHours = optional(c.VacationDebtHours(date))

	s := &r.Sick
	s.EstimatedDaysLeft = optional(c.EstimatedSickDaysLeft(date))
	s.EstimatedHoursLeft = optional(c.EstimatedSickHoursLeft(date))
	if s.EstimatedDaysLeft == nil {
		note(c.requireSickTotal())
	}

	if p, err := c.projectionSummary(date); note(err) {
		r.Projection = p
	}
	return r
}

func (c *Calculator) workingSummary(date generic.TimePoint) *WorkingSummary {
	rest := generic.RestOfYear(date)
	// Regions are set, so none of these can fail.
	daysUntil, _ := c.WorkingDaysUntil(date)
	hoursUntil, _ := c.WorkingHoursUntil(date)
	daysRemaining, _ := c.WorkingDaysBetween(rest.Start, rest.End)
	hoursRemaining, _ := c.WorkingHoursBetween(rest.Start, rest.End)
	yearTotal, _ := c.WorkingHoursYearTotal(date.Year())
	fraction, _ := c.WorkingHoursFractionUntil(date)
	return &WorkingSummary{
		DaysUntil:          daysUntil,
		HoursUntil:         hoursUntil,
		DaysRemaining:      daysRemaining,
		HoursRemaining:     hoursRemaining,
		HoursYearTotal:     yearTotal,
		HoursFractionUntil: fraction,
	}
}

func (c *Calculator) projectionSummary(date generic.TimePoint) (*ProjectionSummary, error) {
	projected, err := c.ProjectedHours(date)
	if err != nil {
		return nil, err
	}
	projectedDays, _ := c.ProjectedDays(date)
	target, err := c.TargetHours(date.Year())
	if err != nil {
		return nil, err
	}
	overtime, _ := c.ProjectedOvertimeHours(date)
	overtimeDays, _ := c.ProjectedOvertimeDays(date)
	return &ProjectionSummary{
		ProjectedHours: projected,
		ProjectedDays:  projectedDays,
		TargetHours:    target,
		OvertimeHours:  overtime,
		OvertimeDays:   overtimeDays,
	}, nil
}

func optional(v float64, err error) *float64 {
	if err != nil {
		return nil
	}
	return &v
}
