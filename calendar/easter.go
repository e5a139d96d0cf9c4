package calendar

import (
	"github.com/warp/worktime/generic"
)

// Easter returns Easter Sunday of year in the Gregorian calendar.
func Easter(year int) generic.TimePoint {
	d, _ := occurrence(easterSunday, year)
	return generic.Day(d)
}
