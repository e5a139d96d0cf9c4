package worktime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/worktime/generic"
	"github.com/warp/worktime/worktime"
)

// addVacationDays books two weeks of 2015: Feb 9-13 and Apr 20-24.
func addVacationDays(calc *worktime.Calculator) {
	for _, d := range []string{
		"2015-02-09", "2015-02-10", "2015-02-11", "2015-02-12", "2015-02-13",
		"2015-04-20", "2015-04-21", "2015-04-22", "2015-04-23", "2015-04-24",
	} {
		calc.AddVacationDay(day(d))
	}
}

func TestVacation_Total(t *testing.T) {
	calc := newCalc()
	calc.SetVacationDaysTotal(30)

	assert.Equal(t, 30.0, calc.VacationDaysTotal())
	assert.Equal(t, 240.0, calc.VacationHoursTotal())
}

func TestVacation_DaysTaken(t *testing.T) {
	calc := newCalc()
	addVacationDays(calc)

	assert.Equal(t, 0.0, calc.VacationDaysTaken(day("2015-02-08")))
	assert.Equal(t, 1.0, calc.VacationDaysTaken(day("2015-02-09")))
	assert.Equal(t, 5.0, calc.VacationDaysTaken(day("2015-02-13")))
	assert.Equal(t, 40.0, calc.VacationHoursTaken(day("2015-02-13")))
	assert.Equal(t, 10.0, calc.VacationDaysTaken(day("2015-12-31")))
	assert.Equal(t, 80.0, calc.VacationHoursTaken(day("2015-12-31")))
}

func TestVacation_DaysTakenIgnoresTimeOfDay(t *testing.T) {
	calc := newCalc()
	evening, err := generic.ParseTimePoint("2015-02-09T23:30:00")
	require.NoError(t, err)
	calc.AddVacationDay(evening)

	assert.Equal(t, 1.0, calc.VacationDaysTaken(day("2015-02-09")))
}

func TestVacation_LedgerIsYearScoped(t *testing.T) {
	// GIVEN: a vacation day on the last day of 2014
	calc := newCalc()
	calc.SetVacationDaysTotal(30)
	calc.AddVacationDay(day("2014-12-31"))

	// THEN: no 2015 query sees it, even though it is earlier
	assert.Equal(t, 0.0, calc.VacationDaysTaken(day("2015-06-30")))
	available, err := calc.VacationDaysAvailable(day("2015-06-30"))
	require.NoError(t, err)
	assert.Equal(t, 30.0, available)

	// AND: 2014 queries do
	assert.Equal(t, 1.0, calc.VacationDaysTaken(day("2014-12-31")))
}

func TestVacation_DuplicatesCountTwice(t *testing.T) {
	calc := newCalc()
	calc.AddVacationDay(day("2015-03-02"))
	calc.AddVacationDay(day("2015-03-02"))

	assert.Equal(t, 2.0, calc.VacationDaysTaken(day("2015-03-31")))
	assert.Len(t, calc.VacationDayLedger(), 2)
}

func TestVacation_InsertionOrderIrrelevant(t *testing.T) {
	forward := newCalc()
	backward := newCalc()
	days := []string{"2015-01-05", "2015-03-02", "2015-07-01", "2015-11-30"}
	for i := range days {
		forward.AddVacationDay(day(days[i]))
		backward.AddVacationDay(day(days[len(days)-1-i]))
	}

	for _, until := range []string{"2015-01-04", "2015-03-02", "2015-08-01", "2015-12-31"} {
		assert.Equal(t, forward.VacationDaysTaken(day(until)), backward.VacationDaysTaken(day(until)), until)
	}
}

func TestVacation_Available(t *testing.T) {
	calc := newCalc()
	calc.SetVacationDaysTotal(30)
	addVacationDays(calc)

	tests := []struct {
		at   string
		want float64
	}{
		{"2015-02-08", 30},
		{"2015-02-09", 29},
		{"2015-02-10", 28},
		{"2015-02-11", 27},
		{"2015-02-12", 26},
		{"2015-02-13", 25},
		{"2015-04-19", 25},
		{"2015-04-24", 20},
		{"2015-12-31", 20},
	}
	for _, tt := range tests {
		got, err := calc.VacationDaysAvailable(day(tt.at))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.at)
	}

	hours, err := calc.VacationHoursAvailable(day("2015-02-13"))
	require.NoError(t, err)
	assert.Equal(t, 200.0, hours)
}

func TestVacation_AvailableWithoutTotalFails(t *testing.T) {
	calc := newCalc()

	_, err := calc.VacationDaysAvailable(day("2015-02-08"))
	requirePrecondition(t, err, generic.FieldVacationDaysTotal)

	_, err = calc.VacationHoursAvailable(day("2015-02-08"))
	requirePrecondition(t, err, generic.FieldVacationDaysTotal)
}

func TestVacation_ZeroTotalIsTreatedAsUnset(t *testing.T) {
	calc := newNRWCalc()
	calc.SetVacationDaysTotal(0)

	assert.True(t, calc.VacationDaysTotalSet())
	_, err := calc.VacationDaysAvailable(day("2015-02-08"))
	requirePrecondition(t, err, generic.FieldVacationDaysTotal)
	_, err = calc.VacationDaysDistributedUntil(day("2015-02-08"))
	requirePrecondition(t, err, generic.FieldVacationDaysTotal)
}

func TestVacation_DistributedWithoutTotalFails(t *testing.T) {
	calc := newNRWCalc()

	_, err := calc.VacationDaysDistributedUntil(day("2015-07-06"))
	requirePrecondition(t, err, generic.FieldVacationDaysTotal)

	_, err = calc.VacationHoursDistributedUntil(day("2015-07-06"))
	requirePrecondition(t, err, generic.FieldVacationDaysTotal)

	_, err = calc.VacationDaysDistributedBetween(day("2015-02-01"), day("2015-02-13"))
	requirePrecondition(t, err, generic.FieldVacationDaysTotal)

	_, err = calc.VacationHoursDistributedBetween(day("2015-02-01"), day("2015-02-13"))
	requirePrecondition(t, err, generic.FieldVacationDaysTotal)
}

func TestVacation_DistributedWithoutRegionsFails(t *testing.T) {
	calc := newCalc()
	calc.SetVacationDaysTotal(30)

	_, err := calc.VacationDaysDistributedUntil(day("2015-07-06"))
	requirePrecondition(t, err, generic.FieldRegions)
}

func TestVacation_DistributedUntil(t *testing.T) {
	calc := newNRWCalc()
	calc.SetVacationDaysTotal(30)

	days, err := calc.VacationDaysDistributedUntil(day("2015-06-30"))
	require.NoError(t, err)
	assert.Greater(t, days, 14.4664)
	assert.Less(t, days, 14.4665)

	hours, err := calc.VacationHoursDistributedUntil(day("2015-06-30"))
	require.NoError(t, err)
	assert.Greater(t, hours, 115.7312)
	assert.Less(t, hours, 115.7313)
}

func TestVacation_DistributedBetween(t *testing.T) {
	calc := newNRWCalc()
	calc.SetVacationDaysTotal(30)

	days, err := calc.VacationDaysDistributedBetween(day("2015-04-27"), day("2015-05-08"))
	require.NoError(t, err)
	assert.Greater(t, days, 1.06719)
	assert.Less(t, days, 1.0672)

	hours, err := calc.VacationHoursDistributedBetween(day("2015-04-27"), day("2015-05-08"))
	require.NoError(t, err)
	assert.Greater(t, hours, 8.5375)
	assert.Less(t, hours, 8.5376)
}

func TestVacation_Debt(t *testing.T) {
	// GIVEN: 30 days entitlement and a full week taken by Feb 13
	calc := newNRWCalc()
	calc.SetVacationDaysTotal(30)
	addVacationDays(calc)

	// WHEN: 31 of 253 working days have elapsed
	hours, err := calc.VacationDebtHours(day("2015-02-13"))
	require.NoError(t, err)
	days, err := calc.VacationDebtDays(day("2015-02-13"))
	require.NoError(t, err)

	// THEN: 30*31/253 days were due, 5 were taken
	assert.InDelta(t, 30.0*31/253*8-40, hours, 1e-9)
	assert.InDelta(t, -1.32411, days, 1e-5)
	assert.Less(t, hours, 0.0, "more taken than distributed is negative")
}

func TestVacation_DebtWithoutTotalFails(t *testing.T) {
	calc := newNRWCalc()
	addVacationDays(calc)

	_, err := calc.VacationDebtHours(day("2015-02-13"))
	requirePrecondition(t, err, generic.FieldVacationDaysTotal)

	_, err = calc.VacationDebtDays(day("2015-02-13"))
	requirePrecondition(t, err, generic.FieldVacationDaysTotal)
}
