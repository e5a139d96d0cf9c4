package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
)

// =============================================================================
// HOLIDAY RULES - German public holidays per region
// =============================================================================

func fixed(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{
		Name:  name,
		Type:  cal.ObservancePublic,
		Month: month,
		Day:   day,
		Func:  cal.CalcDayOfMonth,
	}
}

func easterOffset(name string, offset int) *cal.Holiday {
	return &cal.Holiday{
		Name:   name,
		Type:   cal.ObservancePublic,
		Offset: offset,
		Func:   cal.CalcEasterOffset,
	}
}

// between limits h to [first, last]; 0 leaves a side open.
func between(first, last int, h *cal.Holiday) *cal.Holiday {
	limited := *h
	limited.StartYear, limited.EndYear = first, last
	return &limited
}

// calcRepentanceDay yields the Wednesday before November 23.
func calcRepentanceDay(h *cal.Holiday, year int) time.Time {
	d := time.Date(year, time.November, 22, 0, 0, 0, 0, time.Local)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

var easterSunday = easterOffset("Ostersonntag", 0)

var (
	epiphany       = fixed("Heilige Drei Könige", time.January, 6)
	womensDay      = fixed("Internationaler Frauentag", time.March, 8)
	corpusChristi  = easterOffset("Fronleichnam", 60)
	assumption     = fixed("Mariä Himmelfahrt", time.August, 15)
	childrensDay   = fixed("Weltkindertag", time.September, 20)
	reformationDay = fixed("Reformationstag", time.October, 31)
	allSaints      = fixed("Allerheiligen", time.November, 1)
	repentanceDay  = &cal.Holiday{Name: "Buß- und Bettag", Type: cal.ObservancePublic, Func: calcRepentanceDay}
)

// regionRules maps region identifiers to their statutory holidays. "de"
// carries the nationwide set; state regions only add their own days.
var regionRules = map[string][]*cal.Holiday{
	"de": {
		fixed("Neujahr", time.January, 1),
		easterOffset("Karfreitag", -2),
		easterOffset("Ostermontag", 1),
		fixed("Tag der Arbeit", time.May, 1),
		easterOffset("Christi Himmelfahrt", 39),
		easterOffset("Pfingstmontag", 50),
		between(1990, 0, fixed("Tag der Deutschen Einheit", time.October, 3)),
		between(2017, 2017, reformationDay),
		fixed("1. Weihnachtstag", time.December, 25),
		fixed("2. Weihnachtstag", time.December, 26),
	},
	"de_bw": {epiphany, corpusChristi, allSaints},
	"de_by": {epiphany, corpusChristi, allSaints},
	"de_be": {between(2019, 0, womensDay)},
	"de_bb": {reformationDay},
	"de_hb": {between(2018, 0, reformationDay)},
	"de_hh": {between(2018, 0, reformationDay)},
	"de_he": {corpusChristi},
	"de_mv": {between(2023, 0, womensDay), reformationDay},
	"de_ni": {between(2018, 0, reformationDay)},
	"de_nw": {corpusChristi, allSaints},
	"de_rp": {corpusChristi, allSaints},
	"de_sl": {corpusChristi, assumption, allSaints},
	"de_sn": {reformationDay, repentanceDay},
	"de_st": {epiphany, reformationDay},
	"de_sh": {between(2018, 0, reformationDay)},
	"de_th": {between(2019, 0, childrensDay), reformationDay},
}

// occurrence returns the day h falls on in year, or false when h does not
// exist that year.
func occurrence(h *cal.Holiday, year int) (time.Time, bool) {
	actual, _ := h.Calc(year)
	return actual, !actual.IsZero()
}
