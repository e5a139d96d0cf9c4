package worktime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/worktime/generic"
)

func TestReport_FullyConfigured(t *testing.T) {
	calc := newProjectionCalc()
	calc.SetHoursWorked(220)
	calc.SetEstimatedSickDaysTotal(5)

	r := calc.Report(day("2015-02-13"))

	assert.Empty(t, r.Missing)
	assert.Equal(t, []string{"de", "de_nw"}, r.Regions)
	assert.Equal(t, 27.5, r.DaysWorked)

	require.NotNil(t, r.Working)
	assert.Equal(t, 31, r.Working.DaysUntil)
	assert.Equal(t, 222, r.Working.DaysRemaining)
	assert.Equal(t, 1776.0, r.Working.HoursRemaining)
	assert.Equal(t, 2024.0, r.Working.HoursYearTotal)

	assert.Equal(t, 5.0, r.Vacation.DaysTaken)
	require.NotNil(t, r.Vacation.DaysAvailable)
	assert.Equal(t, 25.0, *r.Vacation.DaysAvailable)
	require.NotNil(t, r.Vacation.DebtHours)
	assert.Less(t, *r.Vacation.DebtHours, 0.0)

	require.NotNil(t, r.Sick.EstimatedDaysLeft)
	assert.Equal(t, 5.0, *r.Sick.EstimatedDaysLeft)

	require.NotNil(t, r.Projection)
	assert.Equal(t, 1796.0, r.Projection.ProjectedHours)
	assert.Equal(t, 1784.0, r.Projection.TargetHours)
	assert.Equal(t, 12.0, r.Projection.OvertimeHours)
	assert.Equal(t, 1.5, r.Projection.OvertimeDays)
}

func TestReport_Unconfigured(t *testing.T) {
	calc := newCalc()
	calc.AddVacationDay(day("2015-02-09"))

	r := calc.Report(day("2015-02-13"))

	assert.Equal(t, []string{
		generic.FieldRegions,
		generic.FieldVacationDaysTotal,
		generic.FieldEstimatedSickDaysTotal,
	}, r.Missing)
	assert.Nil(t, r.Working)
	assert.Nil(t, r.Projection)
	assert.Nil(t, r.Vacation.DaysAvailable)
	assert.Nil(t, r.Vacation.DebtDays)
	assert.Nil(t, r.Sick.EstimatedDaysLeft)
	assert.Equal(t, 1.0, r.Vacation.DaysTaken, "ledger counts need no configuration")
}

func TestReport_VacationWithoutRegions(t *testing.T) {
	calc := newCalc()
	calc.SetVacationDaysTotal(30)

	r := calc.Report(day("2015-02-13"))

	require.NotNil(t, r.Vacation.DaysAvailable)
	assert.Equal(t, 30.0, *r.Vacation.DaysAvailable)
	assert.Nil(t, r.Vacation.DaysDistributed)
	assert.Nil(t, r.Projection)
	assert.Equal(t, []string{generic.FieldRegions, generic.FieldEstimatedSickDaysTotal}, r.Missing)
}
