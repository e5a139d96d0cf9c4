package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/worktime/api"
	"github.com/warp/worktime/calendar"
	"github.com/warp/worktime/generic"
	"github.com/warp/worktime/store/sqlite"
)

func newContext() (*Context, *bytes.Buffer) {
	var out bytes.Buffer
	return &Context{
		Calendar: calendar.New(),
		Clock:    generic.FixedClock{At: time.Date(2015, 2, 13, 9, 0, 0, 0, time.UTC)},
		Out:      &out,
	}, &out
}

// run parses args like the binary does and runs the selected command.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli struct {
		Report      ReportCmd      `cmd:""`
		WorkingDays WorkingDaysCmd `cmd:""`
		Holidays    HolidaysCmd    `cmd:""`
	}
	parser, err := kong.New(&cli, kong.Name("worktime"))
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	ctx, out := newContext()
	err = kctx.Run(ctx)
	return out.String(), err
}

var nrwVacation = []string{
	"--vacation-day=2015-02-09,2015-02-10,2015-02-11,2015-02-12,2015-02-13",
	"--vacation-day=2015-04-20,2015-04-21,2015-04-22,2015-04-23,2015-04-24",
}

func TestReport_JSON(t *testing.T) {
	args := append([]string{"report",
		"--regions=de,de_nw", "--hours-worked=220", "--vacation-total=30",
		"--date=2015-02-13", "--json",
	}, nrwVacation...)

	out, err := run(t, args...)
	require.NoError(t, err)

	var report api.ReportDTO
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.NotNil(t, report.Projection)
	assert.Equal(t, 12.0, report.Projection.OvertimeHours.Float64())
	assert.Equal(t, 5.0, report.Vacation.DaysTaken.Float64())
	assert.Equal(t, []string{"estimated_sick_days_total"}, report.Missing)
}

func TestReport_Text(t *testing.T) {
	args := append([]string{"report",
		"--regions=de,de_nw", "--hours-worked=220", "--vacation-total=30",
		"--sick-total=5", "--sick-day=2015-01-05", "--date=2015-02-13",
	}, nrwVacation...)

	out, err := run(t, args...)
	require.NoError(t, err)

	assert.Contains(t, out, "Work time on 2015-02-13")
	assert.Contains(t, out, "de, de_nw")
	assert.Contains(t, out, "Year-end projection")
	assert.Contains(t, out, "20 hours (2.5 days)")
	assert.NotContains(t, out, "Not configured")
}

func TestReport_Unconfigured(t *testing.T) {
	out, err := run(t, "report", "--date=2015-02-13")
	require.NoError(t, err)

	assert.Contains(t, out, "regions")
	assert.Contains(t, out, "not set")
	assert.Contains(t, out, "Not configured: regions, vacation_days_total, estimated_sick_days_total")
	assert.NotContains(t, out, "Year-end projection")
}

func TestReport_DefaultsToToday(t *testing.T) {
	out, err := run(t, "report", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"date": "2015-02-13"`)
}

func TestReport_InvalidInput(t *testing.T) {
	_, err := run(t, "report", "--regions=de,xx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown region")

	_, err = run(t, "report", "--hours-per-week=0")
	assert.Error(t, err)

	_, err = run(t, "report", "--vacation-day=someday")
	assert.Error(t, err)
}

func TestWorkingDays(t *testing.T) {
	out, err := run(t, "working-days", "--regions=de,de_nw", "--from=2015-01-01", "--until=2015-12-31")
	require.NoError(t, err)
	assert.Equal(t, "253\n", out)

	_, err = run(t, "working-days", "--from=2015-01-01")
	assert.Error(t, err)
}

func TestHolidays(t *testing.T) {
	out, err := run(t, "holidays", "--regions=de,de_nw", "--year=2015")
	require.NoError(t, err)

	assert.Contains(t, out, "2015-04-03  Fri")
	assert.Contains(t, out, "2015-06-04  Thu")
	assert.Contains(t, out, "2015-11-01  Sun")

	// Default year comes from the clock
	out, err = run(t, "holidays")
	require.NoError(t, err)
	assert.Contains(t, out, "2015-01-01")
}

func TestExecute_CompanyHolidaysFromDB(t *testing.T) {
	// GIVEN: a database with a company-wide closing day
	path := filepath.Join(t.TempDir(), "worktime.db")
	seed, err := sqlite.New(path)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	_, err = seed.SaveHoliday(context.Background(), sqlite.HolidayRecord{
		Date: generic.MustParseTimePoint("2015-12-24"), Name: "Christmas Eve",
	})
	require.NoError(t, err)
	require.NoError(t, seed.Close())

	parser, err := kong.New(&CLI, kong.Name("worktime"))
	require.NoError(t, err)

	// WHEN: counting working days with --db
	kctx, err := parser.Parse([]string{"--db=" + path, "working-days", "--regions=de,de_nw", "--from=2015-01-01", "--until=2015-12-31"})
	require.NoError(t, err)
	ctx, out := newContext()
	require.NoError(t, execute(kctx, CLI.DB, ctx))

	// THEN: the closing day is subtracted
	assert.Equal(t, "252\n", out.String())

	// A failing command still returns instead of exiting
	kctx, err = parser.Parse([]string{"--db=" + path, "working-days", "--from=2015-02-30", "--until=2015-12-31"})
	require.NoError(t, err)
	ctx, _ = newContext()
	assert.Error(t, execute(kctx, CLI.DB, ctx))
}

func TestExecute_BadDatabasePath(t *testing.T) {
	parser, err := kong.New(&CLI, kong.Name("worktime"))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "missing", "dir", "worktime.db")
	kctx, err := parser.Parse([]string{"--db=" + dir, "working-days", "--from=2015-01-01", "--until=2015-01-31"})
	require.NoError(t, err)
	ctx, _ := newContext()
	assert.Error(t, execute(kctx, CLI.DB, ctx))
}
