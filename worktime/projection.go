package worktime

import "github.com/warp/worktime/generic"

// =============================================================================
// YEAR-END PROJECTION
// =============================================================================
//
// projected = worked + working hours left after date - vacation still available
// target    = year working hours - vacation entitlement
// overtime  = projected - target + sick hours
//
// Remaining vacation is assumed to be taken before year end. Sick hours are
// added back: sick leave is excused time, not a shortfall.

// ProjectedHours forecasts the hours worked by December 31 of date's year.
func (c *Calculator) ProjectedHours(date generic.TimePoint) (float64, error) {
	rest := generic.RestOfYear(date)
	remaining, err := c.WorkingHoursBetween(rest.Start, rest.End)
	if err != nil {
		return 0, err
	}
	available, err := c.VacationHoursAvailable(date)
	if err != nil {
		return 0, err
	}
	return c.hoursWorked + remaining - available, nil
}

func (c *Calculator) ProjectedDays(date generic.TimePoint) (float64, error) {
	hours, err := c.ProjectedHours(date)
	if err != nil {
		return 0, err
	}
	return hours / c.HoursPerDay(), nil
}

// TargetHours is the year's working hours net of the vacation entitlement.
func (c *Calculator) TargetHours(year int) (float64, error) {
	total, err := c.WorkingHoursYearTotal(year)
	if err != nil {
		return 0, err
	}
	return total - c.VacationHoursTotal(), nil
}

// ProjectedOvertimeHours is the forecast surplus over TargetHours.
func (c *Calculator) ProjectedOvertimeHours(date generic.TimePoint) (float64, error) {
	projected, err := c.ProjectedHours(date)
	if err != nil {
		return 0, err
	}
	target, err := c.TargetHours(date.Year())
	if err != nil {
		return 0, err
	}
	return projected - target + c.SickHours(date), nil
}

func (c *Calculator) ProjectedOvertimeDays(date generic.TimePoint) (float64, error) {
	hours, err := c.ProjectedOvertimeHours(date)
	if err != nil {
		return 0, err
	}
	return hours / c.HoursPerDay(), nil
}
