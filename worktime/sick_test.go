package worktime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/worktime/generic"
	"github.com/warp/worktime/worktime"
)

func addSickDays(calc *worktime.Calculator) {
	// three days at the end of 2014 are never counted for 2015
	calc.AddSickDay(day("2014-12-29"))
	calc.AddSickDay(day("2014-12-30"))
	calc.AddSickDay(day("2014-12-31"))
	// five in February 2015
	calc.AddSickDay(day("2015-02-09"))
	calc.AddSickDay(day("2015-02-10"))
	calc.AddSickDay(day("2015-02-11"))
	calc.AddSickDay(day("2015-02-12"))
	calc.AddSickDay(day("2015-02-13"))
	// two in April 2015
	calc.AddSickDay(day("2015-04-20"))
	calc.AddSickDay(day("2015-04-21"))
}

func TestSick_EstimatedTotal(t *testing.T) {
	calc := newCalc()
	calc.SetEstimatedSickDaysTotal(5)

	assert.Equal(t, 5.0, calc.EstimatedSickDaysTotal())
	assert.Equal(t, 40.0, calc.EstimatedSickHoursTotal())
}

func TestSick_Days(t *testing.T) {
	calc := newCalc()
	addSickDays(calc)

	assert.Equal(t, 5.0, calc.SickDays(day("2015-02-13")))
	assert.Equal(t, 40.0, calc.SickHours(day("2015-02-13")))
	assert.Equal(t, 7.0, calc.SickDays(day("2015-12-31")))
	assert.Equal(t, 56.0, calc.SickHours(day("2015-12-31")))
	assert.Equal(t, 3.0, calc.SickDays(day("2014-12-31")))
	assert.Len(t, calc.SickDayLedger(), 10)
}

func TestSick_LeftWithoutEstimateFails(t *testing.T) {
	calc := newCalc()

	_, err := calc.EstimatedSickDaysLeft(day("2015-07-06"))
	requirePrecondition(t, err, generic.FieldEstimatedSickDaysTotal)

	_, err = calc.EstimatedSickHoursLeft(day("2015-07-06"))
	requirePrecondition(t, err, generic.FieldEstimatedSickDaysTotal)
}

func TestSick_Left(t *testing.T) {
	calc := newCalc()
	calc.SetEstimatedSickDaysTotal(5)
	addSickDays(calc)

	tests := []struct {
		at        string
		wantDays  float64
		wantHours float64
	}{
		{"2015-02-08", 5, 40},
		{"2015-02-09", 4, 32},
		{"2015-02-10", 3, 24},
		{"2015-02-11", 2, 16},
		{"2015-02-12", 1, 8},
		{"2015-02-13", 0, 0},
		{"2015-02-14", 0, 0},
		// clamped at zero once the estimate is exceeded
		{"2015-04-20", 0, 0},
		{"2015-04-21", 0, 0},
		{"2015-04-22", 0, 0},
	}
	for _, tt := range tests {
		days, err := calc.EstimatedSickDaysLeft(day(tt.at))
		require.NoError(t, err)
		assert.Equal(t, tt.wantDays, days, tt.at)

		hours, err := calc.EstimatedSickHoursLeft(day(tt.at))
		require.NoError(t, err)
		assert.Equal(t, tt.wantHours, hours, tt.at)
	}
}
