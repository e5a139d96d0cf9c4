package generic

// =============================================================================
// PERIOD - Inclusive day interval
// =============================================================================

// Period is the closed interval [Start, End] at day granularity.
//
// Examples:
//   - Calendar year 2015: Jan 1 - Dec 31
//   - Year to date: Jan 1 - reference day
//   - Rest of year: reference day + 1 - Dec 31
type Period struct {
	Start TimePoint
	End   TimePoint
}

// YearPeriod returns Jan 1 - Dec 31 of year.
func YearPeriod(year int) Period {
	return Period{Start: StartOfYear(year), End: EndOfYear(year)}
}

// YearToDate returns the period from Jan 1 of until's year through until.
func YearToDate(until TimePoint) Period {
	return Period{Start: until.YearStart(), End: until}
}

// RestOfYear returns the period from the day after date through Dec 31 of
// date's year. It is empty when date is Dec 31.
func RestOfYear(date TimePoint) Period {
	return Period{Start: date.AddDays(1), End: date.YearEnd()}
}

// Contains returns true if the time point is within the period [Start, End]
func (p Period) Contains(t TimePoint) bool {
	return IsBetweenDaysInclusive(t, p.Start, p.End)
}

// IsEmpty reports End before Start.
func (p Period) IsEmpty() bool { return p.End.Before(p.Start) }

// Days returns all days in the period as a slice of TimePoints.
func (p Period) Days() []TimePoint {
	var days []TimePoint
	current := p.Start
	for current.BeforeOrEqual(p.End) {
		days = append(days, current)
		current = current.AddDays(1)
	}
	return days
}

// Count returns how many of days lie in the period. Duplicates count.
func (p Period) Count(days []TimePoint) int {
	n := 0
	for _, d := range days {
		if p.Contains(d) {
			n++
		}
	}
	return n
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
