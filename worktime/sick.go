package worktime

import (
	"math"

	"github.com/warp/worktime/generic"
)

// =============================================================================
// SICK-DAY LEDGER - Same semantics as the vacation ledger
// =============================================================================

func (c *Calculator) AddSickDay(day generic.TimePoint) {
	c.sickDays = append(c.sickDays, generic.Day(day.Time))
}

// SickDayLedger returns a copy of the ledger in insertion order.
func (c *Calculator) SickDayLedger() []generic.TimePoint {
	return append([]generic.TimePoint{}, c.sickDays...)
}

// SickDays counts sick days from January 1 of until's year through until.
func (c *Calculator) SickDays(until generic.TimePoint) float64 {
	return float64(generic.YearToDate(until).Count(c.sickDays))
}

func (c *Calculator) SickHours(until generic.TimePoint) float64 {
	return c.SickDays(until) * c.HoursPerDay()
}

// EstimatedSickDaysLeft is the estimate minus sick days so far, never
// below zero.
func (c *Calculator) EstimatedSickDaysLeft(from generic.TimePoint) (float64, error) {
	if err := c.requireSickTotal(); err != nil {
		return 0, err
	}
	return math.Max(0, c.estimatedSickDaysTotal-c.SickDays(from)), nil
}

func (c *Calculator) EstimatedSickHoursLeft(from generic.TimePoint) (float64, error) {
	days, err := c.EstimatedSickDaysLeft(from)
	if err != nil {
		return 0, err
	}
	return days * c.HoursPerDay(), nil
}
