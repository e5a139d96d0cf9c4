package worktime

import "github.com/warp/worktime/generic"

// =============================================================================
// VACATION LEDGER - Append-only, year scoped
// =============================================================================

// AddVacationDay records one vacation day. Duplicates and non-working days
// are kept as given.
func (c *Calculator) AddVacationDay(day generic.TimePoint) {
	c.vacationDays = append(c.vacationDays, generic.Day(day.Time))
}

// VacationDayLedger returns a copy of the ledger in insertion order.
func (c *Calculator) VacationDayLedger() []generic.TimePoint {
	return append([]generic.TimePoint{}, c.vacationDays...)
}

// VacationDaysTaken counts ledger entries from January 1 of until's year
// through until.
func (c *Calculator) VacationDaysTaken(until generic.TimePoint) float64 {
	return float64(generic.YearToDate(until).Count(c.vacationDays))
}

func (c *Calculator) VacationHoursTaken(until generic.TimePoint) float64 {
	return c.VacationDaysTaken(until) * c.HoursPerDay()
}

// VacationHoursTotal is the yearly entitlement in hours, 0 when unset.
func (c *Calculator) VacationHoursTotal() float64 {
	return c.vacationDaysTotal * c.HoursPerDay()
}

// VacationDaysAvailable is the entitlement left after the days taken by from.
func (c *Calculator) VacationDaysAvailable(from generic.TimePoint) (float64, error) {
	if err := c.requireVacationTotal(); err != nil {
		return 0, err
	}
	return c.vacationDaysTotal - c.VacationDaysTaken(from), nil
}

func (c *Calculator) VacationHoursAvailable(from generic.TimePoint) (float64, error) {
	days, err := c.VacationDaysAvailable(from)
	if err != nil {
		return 0, err
	}
	return days * c.HoursPerDay(), nil
}

// =============================================================================
// DISTRIBUTED ENTITLEMENT - Vacation spread evenly over working hours
// =============================================================================

// VacationDaysDistributedUntil is the entitlement that an even spread over
// the year's working hours would have used by until.
func (c *Calculator) VacationDaysDistributedUntil(until generic.TimePoint) (float64, error) {
	if err := c.requireVacationTotal(); err != nil {
		return 0, err
	}
	fraction, err := c.WorkingHoursFractionUntil(until)
	if err != nil {
		return 0, err
	}
	return c.vacationDaysTotal * fraction, nil
}

func (c *Calculator) VacationHoursDistributedUntil(until generic.TimePoint) (float64, error) {
	days, err := c.VacationDaysDistributedUntil(until)
	if err != nil {
		return 0, err
	}
	return days * c.HoursPerDay(), nil
}

// VacationDaysDistributedBetween prorates over [from, until] within from's
// year.
func (c *Calculator) VacationDaysDistributedBetween(from, until generic.TimePoint) (float64, error) {
	if err := c.requireVacationTotal(); err != nil {
		return 0, err
	}
	fraction, err := c.WorkingHoursFractionBetween(from, until)
	if err != nil {
		return 0, err
	}
	return c.vacationDaysTotal * fraction, nil
}

func (c *Calculator) VacationHoursDistributedBetween(from, until generic.TimePoint) (float64, error) {
	days, err := c.VacationDaysDistributedBetween(from, until)
	if err != nil {
		return 0, err
	}
	return days * c.HoursPerDay(), nil
}

// =============================================================================
// VACATION DEBT
// =============================================================================

// VacationDebtHours is distributed minus taken vacation hours by until.
// Negative means more vacation was used than an even spread allows.
func (c *Calculator) VacationDebtHours(until generic.TimePoint) (float64, error) {
	distributed, err := c.VacationHoursDistributedUntil(until)
	if err != nil {
		return 0, err
	}
	return distributed - c.VacationHoursTaken(until), nil
}

func (c *Calculator) VacationDebtDays(until generic.TimePoint) (float64, error) {
	hours, err := c.VacationDebtHours(until)
	if err != nil {
		return 0, err
	}
	return hours / c.HoursPerDay(), nil
}
