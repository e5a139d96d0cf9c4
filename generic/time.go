package generic

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// TIME POINT - Calendar day used by every ledger and interval query
// =============================================================================

// TimePoint is a calendar day. Time-of-day is carried but ignored by every
// comparison in this package.
type TimePoint struct {
	Time time.Time
}

// NewTimePoint returns the day year-month-day at midnight UTC.
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Day truncates t to its calendar day in t's own location.
func Day(t time.Time) TimePoint {
	return NewTimePoint(t.Year(), t.Month(), t.Day())
}

// Today returns the current day of clock c.
func Today(c Clock) TimePoint {
	return Day(c.Now())
}

var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006/01/02",
	"20060102",
}

// ParseTimePoint accepts ISO-like dates (YYYY-MM-DD, with or without a time
// part, RFC3339, YYYY/MM/DD, YYYYMMDD).
func ParseTimePoint(s string) (TimePoint, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}
	return TimePoint{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
}

// MustParseTimePoint is ParseTimePoint for literals. Panics on bad input.
func MustParseTimePoint(s string) TimePoint {
	tp, err := ParseTimePoint(s)
	if err != nil {
		panic(err)
	}
	return tp
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.normalize().Before(other.normalize()) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.normalize().Equal(other.normalize()) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.normalize().After(other.normalize()) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return !tp.After(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return !tp.Before(other) }

func (tp TimePoint) normalize() time.Time {
	return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint { return Day(tp.normalize().AddDate(0, 0, n)) }

// Properties
func (tp TimePoint) Year() int             { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month     { return tp.Time.Month() }
func (tp TimePoint) DayOfMonth() int       { return tp.Time.Day() }
func (tp TimePoint) Weekday() time.Weekday { return tp.normalize().Weekday() }
func (tp TimePoint) IsWeekend() bool       { wd := tp.Weekday(); return wd == time.Saturday || wd == time.Sunday }
func (tp TimePoint) IsZero() bool          { return tp.Time.IsZero() }

func (tp TimePoint) String() string { return tp.Time.Format("2006-01-02") }

// MarshalText renders the day as YYYY-MM-DD.
func (tp TimePoint) MarshalText() ([]byte, error) { return []byte(tp.String()), nil }

// UnmarshalText parses any layout accepted by ParseTimePoint.
func (tp *TimePoint) UnmarshalText(b []byte) error {
	parsed, err := ParseTimePoint(string(b))
	if err != nil {
		return err
	}
	*tp = parsed
	return nil
}

// =============================================================================
// DATE UTILITIES
// =============================================================================

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b TimePoint) bool { return a.Equal(b) }

// IsBetweenDaysInclusive reports lo <= d <= hi at day granularity.
func IsBetweenDaysInclusive(d, lo, hi TimePoint) bool {
	return d.AfterOrEqual(lo) && d.BeforeOrEqual(hi)
}

func DaysBetween(from, to TimePoint) int { return int(to.normalize().Sub(from.normalize()).Hours() / 24) }
func StartOfYear(year int) TimePoint     { return NewTimePoint(year, time.January, 1) }
func EndOfYear(year int) TimePoint       { return NewTimePoint(year, time.December, 31) }

// YearStart returns January 1 of tp's year.
func (tp TimePoint) YearStart() TimePoint { return StartOfYear(tp.Year()) }

// YearEnd returns December 31 of tp's year.
func (tp TimePoint) YearEnd() TimePoint { return EndOfYear(tp.Year()) }

// =============================================================================
// CLOCK - Source of "today"
// =============================================================================

// Clock supplies the current instant. Inject FixedClock in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }
