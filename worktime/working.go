package worktime

import "github.com/warp/worktime/generic"

// =============================================================================
// WORKING DAYS / HOURS - Interval queries over the calendar
// =============================================================================

// WorkingDaysBetween counts working days in [from, until] for the
// configured regions.
func (c *Calculator) WorkingDaysBetween(from, until generic.TimePoint) (int, error) {
	if !c.regionsSet {
		return 0, generic.Missing(generic.FieldRegions)
	}
	return c.counter.WorkingDaysBetween(c.Regions(), from, until), nil
}

// WorkingHoursBetween is WorkingDaysBetween at HoursPerDay.
func (c *Calculator) WorkingHoursBetween(from, until generic.TimePoint) (float64, error) {
	days, err := c.WorkingDaysBetween(from, until)
	if err != nil {
		return 0, err
	}
	return float64(days) * c.HoursPerDay(), nil
}

// WorkingDaysUntil counts from January 1 of until's own year.
func (c *Calculator) WorkingDaysUntil(until generic.TimePoint) (int, error) {
	return c.WorkingDaysBetween(until.YearStart(), until)
}

func (c *Calculator) WorkingHoursUntil(until generic.TimePoint) (float64, error) {
	return c.WorkingHoursBetween(until.YearStart(), until)
}

// WorkingHoursYearTotal returns the working hours of the full year.
func (c *Calculator) WorkingHoursYearTotal(year int) (float64, error) {
	p := generic.YearPeriod(year)
	return c.WorkingHoursBetween(p.Start, p.End)
}

// WorkingHoursCurrentYearTotal is WorkingHoursYearTotal for the clock's year.
func (c *Calculator) WorkingHoursCurrentYearTotal() (float64, error) {
	return c.WorkingHoursYearTotal(generic.Today(c.clock).Year())
}

// WorkingHoursFractionUntil is the share of until's year working hours
// elapsed by until.
func (c *Calculator) WorkingHoursFractionUntil(until generic.TimePoint) (float64, error) {
	hours, err := c.WorkingHoursUntil(until)
	if err != nil {
		return 0, err
	}
	total, err := c.WorkingHoursYearTotal(until.Year())
	if err != nil {
		return 0, err
	}
	return hours / total, nil
}

// WorkingHoursFractionBetween divides by the year total of from's year.
// Intervals crossing a year boundary are not meaningful.
func (c *Calculator) WorkingHoursFractionBetween(from, until generic.TimePoint) (float64, error) {
	hours, err := c.WorkingHoursBetween(from, until)
	if err != nil {
		return 0, err
	}
	total, err := c.WorkingHoursYearTotal(from.Year())
	if err != nil {
		return 0, err
	}
	return hours / total, nil
}
