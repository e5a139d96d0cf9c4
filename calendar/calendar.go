/*
Package calendar counts working days for a set of German holiday regions.

PURPOSE:
  The calculator asks one question of the calendar: how many working days
  lie between two dates for these regions? A working day is Monday to
  Friday and not a public holiday in any of the regions.

REGIONS:
  "de" is the nationwide set. State regions are "de_" plus the state
  code ("de_nw", "de_by", ...) and only add that state's own holidays, so
  callers pass both: []string{"de", "de_nw"}.

EXTRA HOLIDAYS:
  Calendar.Extra merges holidays from another source (company closing
  days stored in sqlite) into the statutory rules.

SEE ALSO:
  - rules.go: Holiday rules per region
  - store/sqlite/holidays.go: HolidaySource implementation
*/
package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rickar/cal/v2"

	"github.com/warp/worktime/generic"
)

// ErrUnknownRegion is returned by ValidateRegions.
var ErrUnknownRegion = errors.New("unknown region")

// Holiday is one non-working day.
type Holiday struct {
	Date    generic.TimePoint `json:"date"`
	Name    string            `json:"name"`
	Regions []string          `json:"regions"`
}

// HolidaySource supplies holidays beyond the statutory rules.
type HolidaySource interface {
	HolidaysIn(regions []string, year int) []Holiday
}

// Calendar is the statutory German calendar plus an optional extra source.
// The zero value is ready to use.
type Calendar struct {
	Extra HolidaySource
}

// New returns a calendar without extra holidays.
func New() *Calendar {
	return &Calendar{}
}

// KnownRegions lists every supported region identifier, sorted.
func KnownRegions() []string {
	regions := make([]string, 0, len(regionRules))
	for r := range regionRules {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// ValidateRegions fails with ErrUnknownRegion for the first identifier
// without rules.
func ValidateRegions(regions []string) error {
	for _, r := range regions {
		if _, ok := regionRules[r]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownRegion, r)
		}
	}
	return nil
}

// ParseRegions splits a comma separated list ("de,de_nw"), trimming blanks.
func ParseRegions(s string) []string {
	regions := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			regions = append(regions, strings.ToLower(part))
		}
	}
	return regions
}

// Holidays returns the holidays of year for the union of regions, one
// entry per date, ordered by date.
func (c *Calendar) Holidays(regions []string, year int) []Holiday {
	byDate := make(map[generic.TimePoint]*Holiday)
	add := func(day generic.TimePoint, name, region string) {
		h, ok := byDate[day]
		if !ok {
			h = &Holiday{Date: day, Name: name}
			byDate[day] = h
		} else if !strings.Contains(h.Name, name) {
			h.Name += " / " + name
		}
		if region != "" && !contains(h.Regions, region) {
			h.Regions = append(h.Regions, region)
		}
	}

	for _, region := range regions {
		for _, r := range regionRules[region] {
			if day, ok := occurrence(r, year); ok {
				add(generic.Day(day), r.Name, region)
			}
		}
	}
	if c.Extra != nil {
		for _, h := range c.Extra.HolidaysIn(regions, year) {
			if h.Date.Year() != year {
				continue
			}
			region := ""
			if len(h.Regions) > 0 {
				region = h.Regions[0]
			}
			add(generic.Day(h.Date.Time), h.Name, region)
		}
	}

	holidays := make([]Holiday, 0, len(byDate))
	for _, h := range byDate {
		holidays = append(holidays, *h)
	}
	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Date.Before(holidays[j].Date) })
	return holidays
}

// IsWorkingDay reports whether day is a weekday and no holiday in regions.
func (c *Calendar) IsWorkingDay(regions []string, day generic.TimePoint) bool {
	return c.business(regions, day.Year(), day.Year()).IsWorkday(local(day))
}

// WorkingDaysBetween counts working days in [from, until]. It returns 0
// when until is before from.
func (c *Calendar) WorkingDaysBetween(regions []string, from, until generic.TimePoint) int {
	period := generic.Period{Start: generic.Day(from.Time), End: generic.Day(until.Time)}
	if period.IsEmpty() {
		return 0
	}

	bc := c.business(regions, period.Start.Year(), period.End.Year())
	count := 0
	for _, day := range period.Days() {
		if bc.IsWorkday(local(day)) {
			count++
		}
	}
	return count
}

// business assembles a Monday to Friday calendar holding the statutory
// rules of regions and the extra holidays of [firstYear, lastYear].
func (c *Calendar) business(regions []string, firstYear, lastYear int) *cal.BusinessCalendar {
	bc := cal.NewBusinessCalendar()
	for _, region := range regions {
		bc.AddHoliday(regionRules[region]...)
	}
	if c.Extra == nil {
		return bc
	}
	for year := firstYear; year <= lastYear; year++ {
		for _, h := range c.Extra.HolidaysIn(regions, year) {
			if h.Date.Year() != year {
				continue
			}
			bc.AddHoliday(between(year, year, fixed(h.Name, h.Date.Month(), h.Date.DayOfMonth())))
		}
	}
	return bc
}

// local moves day to midnight in the zone cal computes holidays in.
func local(day generic.TimePoint) time.Time {
	return time.Date(day.Year(), day.Month(), day.DayOfMonth(), 0, 0, 0, 0, time.Local)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
