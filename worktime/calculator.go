/*
Package worktime computes an employee's yearly work-time accounts.

PURPOSE:
  Given hours worked so far, vacation and sick days recorded, and the
  public holidays of the employee's regions, the Calculator derives
  working-day counts, prorated vacation entitlement, vacation debt and a
  linear projection of year-end overtime.

KEY CONCEPTS:
  - Working day: Monday to Friday, not a holiday in any configured region.
    Counting is delegated to a WorkingDayCounter (calendar.Calendar).
  - Distributed entitlement: the share of the yearly vacation that would
    be used by a date if vacation were spread evenly over working hours.
  - Year scoping: every ledger query only sees entries in the calendar
    year of its reference date.

CONFIGURATION:
  Regions, the vacation total and the estimated sick-day total are
  optional. Queries that need them fail with *generic.PreconditionError.
  A total of exactly zero is treated as not configured.

  Nothing is cached; every query recomputes from current state. A
  Calculator is not safe for concurrent mutation.

EXAMPLE:
  calc := worktime.New(calendar.New())
  calc.SetRegions("de", "de_nw")
  calc.SetVacationDaysTotal(30)
  calc.AddVacationDay(generic.MustParseTimePoint("2015-02-09"))
  calc.SetHoursWorked(220)
  overtime, err := calc.ProjectedOvertimeHours(generic.MustParseTimePoint("2015-02-13"))

SEE ALSO:
  - working.go: Interval queries
  - vacation.go: Vacation ledger, proration and debt
  - sick.go: Sick-day ledger
  - projection.go: Year-end projection
*/
package worktime

import (
	"github.com/warp/worktime/generic"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultHoursPerWeek is the contractual week of a new Calculator.
	DefaultHoursPerWeek = 40.0

	// DaysPerWeek is fixed: the calendar counts Monday to Friday.
	DaysPerWeek = 5
)

// WorkingDayCounter counts working days in [from, until] for the union of
// regions, excluding weekends and public holidays.
type WorkingDayCounter interface {
	WorkingDaysBetween(regions []string, from, until generic.TimePoint) int
}

// CounterFunc adapts a plain function to WorkingDayCounter.
type CounterFunc func(regions []string, from, until generic.TimePoint) int

func (f CounterFunc) WorkingDaysBetween(regions []string, from, until generic.TimePoint) int {
	return f(regions, from, until)
}

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator holds one employee's configuration and day ledgers.
type Calculator struct {
	counter WorkingDayCounter
	clock   generic.Clock

	hoursPerWeek float64
	hoursWorked  float64

	regions    []string
	regionsSet bool

	vacationDaysTotal    float64
	vacationDaysTotalSet bool
	vacationDays         []generic.TimePoint

	estimatedSickDaysTotal    float64
	estimatedSickDaysTotalSet bool
	sickDays                  []generic.TimePoint
}

// Option configures a Calculator at construction.
type Option func(*Calculator)

// WithClock sets the clock used for "current year" defaults.
func WithClock(c generic.Clock) Option {
	return func(calc *Calculator) { calc.clock = c }
}

// WithHoursWorked sets the initial running total of hours worked.
func WithHoursWorked(hours float64) Option {
	return func(calc *Calculator) { calc.hoursWorked = hours }
}

// WithHoursPerWeek overrides DefaultHoursPerWeek.
func WithHoursPerWeek(hours float64) Option {
	return func(calc *Calculator) { calc.hoursPerWeek = hours }
}

// New returns a Calculator with 40 hours per week, no hours worked, unset
// regions and unset totals.
func New(counter WorkingDayCounter, opts ...Option) *Calculator {
	calc := &Calculator{
		counter:      counter,
		clock:        generic.SystemClock{},
		hoursPerWeek: DefaultHoursPerWeek,
	}
	for _, opt := range opts {
		opt(calc)
	}
	return calc
}

// =============================================================================
// CONFIGURATION
// =============================================================================

func (c *Calculator) HoursPerWeek() float64         { return c.hoursPerWeek }
func (c *Calculator) SetHoursPerWeek(hours float64) { c.hoursPerWeek = hours }
func (c *Calculator) DaysPerWeek() int              { return DaysPerWeek }
func (c *Calculator) HoursWorked() float64          { return c.hoursWorked }
func (c *Calculator) SetHoursWorked(hours float64)  { c.hoursWorked = hours }

// Regions returns a copy of the configured regions, or nil when unset.
// A set but empty list is returned as a non-nil empty slice.
func (c *Calculator) Regions() []string {
	if !c.regionsSet {
		return nil
	}
	return append([]string{}, c.regions...)
}

// RegionsSet reports whether SetRegions has been called.
func (c *Calculator) RegionsSet() bool { return c.regionsSet }

// SetRegions stores regions in order. Calling it without arguments sets an
// empty region list, which is distinct from never setting one.
func (c *Calculator) SetRegions(regions ...string) {
	c.regions = append([]string{}, regions...)
	c.regionsSet = true
}

// SetRegionList is SetRegions for an existing slice.
func (c *Calculator) SetRegionList(regions []string) {
	c.SetRegions(regions...)
}

// VacationDaysTotal returns the yearly entitlement in days, 0 when unset.
func (c *Calculator) VacationDaysTotal() float64 { return c.vacationDaysTotal }

func (c *Calculator) SetVacationDaysTotal(days float64) {
	c.vacationDaysTotal = days
	c.vacationDaysTotalSet = true
}

// VacationDaysTotalSet reports whether a total was ever set, even zero.
func (c *Calculator) VacationDaysTotalSet() bool { return c.vacationDaysTotalSet }

// EstimatedSickDaysTotal returns the yearly sick-day estimate, 0 when unset.
func (c *Calculator) EstimatedSickDaysTotal() float64 { return c.estimatedSickDaysTotal }

func (c *Calculator) SetEstimatedSickDaysTotal(days float64) {
	c.estimatedSickDaysTotal = days
	c.estimatedSickDaysTotalSet = true
}

// EstimatedSickDaysTotalSet reports whether an estimate was ever set.
func (c *Calculator) EstimatedSickDaysTotalSet() bool { return c.estimatedSickDaysTotalSet }

// EstimatedSickHoursTotal is the sick-day estimate in hours.
func (c *Calculator) EstimatedSickHoursTotal() float64 {
	return c.estimatedSickDaysTotal * c.HoursPerDay()
}

// requireVacationTotal fails for an unset total and for a total of zero;
// the two are indistinguishable to callers of the queries.
func (c *Calculator) requireVacationTotal() error {
	if !c.vacationDaysTotalSet || c.vacationDaysTotal == 0 {
		return generic.Missing(generic.FieldVacationDaysTotal)
	}
	return nil
}

func (c *Calculator) requireSickTotal() error {
	if !c.estimatedSickDaysTotalSet || c.estimatedSickDaysTotal == 0 {
		return generic.Missing(generic.FieldEstimatedSickDaysTotal)
	}
	return nil
}

// =============================================================================
// BASIC RATES
// =============================================================================

// HoursPerDay is HoursPerWeek / DaysPerWeek. Not validated: a zero week
// yields 0 and divisions by it yield Inf or NaN.
func (c *Calculator) HoursPerDay() float64 {
	return c.hoursPerWeek / DaysPerWeek
}

// DaysWorked converts HoursWorked to days at HoursPerDay.
func (c *Calculator) DaysWorked() float64 {
	return c.hoursWorked / c.HoursPerDay()
}
