package generic_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/worktime/generic"
)

func TestParseTimePoint(t *testing.T) {
	want := generic.NewTimePoint(2015, time.February, 13)
	for _, in := range []string{
		"2015-02-13",
		" 2015-02-13 ",
		"2015-02-13T08:30:00",
		"2015-02-13T23:59:00+02:00",
		"2015-02-13 18:00:00",
		"2015/02/13",
		"20150213",
	} {
		got, err := generic.ParseTimePoint(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%q parsed as %s", in, got)
	}

	_, err := generic.ParseTimePoint("13.02.2015")
	assert.Error(t, err)
}

func TestTimePoint_ComparisonIgnoresTimeOfDay(t *testing.T) {
	morning := generic.TimePoint{Time: time.Date(2015, 2, 13, 8, 0, 0, 0, time.UTC)}
	evening := generic.TimePoint{Time: time.Date(2015, 2, 13, 22, 0, 0, 0, time.UTC)}
	next := generic.NewTimePoint(2015, 2, 14)

	assert.True(t, generic.SameDay(morning, evening))
	assert.False(t, morning.Before(evening))
	assert.True(t, evening.Before(next))
	assert.True(t, generic.IsBetweenDaysInclusive(evening, morning, next))
	assert.True(t, generic.IsBetweenDaysInclusive(next, morning, next))
	assert.False(t, generic.IsBetweenDaysInclusive(next, morning, evening))
}

func TestTimePoint_YearBoundaries(t *testing.T) {
	d := generic.MustParseTimePoint("2015-06-30")

	assert.Equal(t, "2015-01-01", d.YearStart().String())
	assert.Equal(t, "2015-12-31", d.YearEnd().String())
	assert.Equal(t, "2016-01-01", d.YearEnd().AddDays(1).String())
	assert.Equal(t, 2015, d.Year())
	assert.Equal(t, 364, generic.DaysBetween(generic.StartOfYear(2015), generic.EndOfYear(2015)))
}

func TestTimePoint_JSON(t *testing.T) {
	var payload struct {
		Day generic.TimePoint `json:"day"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2015-02-13"}`), &payload))
	assert.Equal(t, "2015-02-13", payload.Day.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2015-02-13"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"day":"soon"}`), &payload))
}

func TestPeriod(t *testing.T) {
	year := generic.YearPeriod(2015)
	assert.True(t, year.Contains(generic.MustParseTimePoint("2015-12-31")))
	assert.False(t, year.Contains(generic.MustParseTimePoint("2014-12-31")))
	assert.Len(t, year.Days(), 365)

	rest := generic.RestOfYear(generic.MustParseTimePoint("2015-12-31"))
	assert.True(t, rest.IsEmpty())
	assert.Empty(t, rest.Days())

	ytd := generic.YearToDate(generic.MustParseTimePoint("2015-02-13"))
	days := []generic.TimePoint{
		generic.MustParseTimePoint("2014-12-31"),
		generic.MustParseTimePoint("2015-01-01"),
		generic.MustParseTimePoint("2015-01-01"),
		generic.MustParseTimePoint("2015-02-14"),
	}
	assert.Equal(t, 2, ytd.Count(days))
}

func TestClock(t *testing.T) {
	at := time.Date(2015, 7, 6, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2015-07-06", generic.Today(generic.FixedClock{At: at}).String())
}

func TestPreconditionError(t *testing.T) {
	err := fmt.Errorf("report: %w", generic.Missing(generic.FieldRegions))

	assert.True(t, generic.IsPrecondition(err))
	assert.True(t, errors.Is(err, generic.ErrPrecondition))
	assert.Equal(t, generic.FieldRegions, generic.MissingField(err))
	assert.Equal(t, "report: regions not set", err.Error())

	assert.False(t, generic.IsPrecondition(errors.New("other")))
	assert.Equal(t, "", generic.MissingField(errors.New("other")))
}

func TestAmount(t *testing.T) {
	a, ok := generic.NewAmount(115.73122529644269, generic.UnitHours)
	require.True(t, ok)
	assert.Equal(t, "115.7312 hours", a.Rounded().String())

	out, err := json.Marshal(a.Rounded())
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":115.7312,"unit":"hours"}`, string(out))

	var back generic.Amount
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.Value.Equal(a.Rounded().Value))

	_, ok = generic.NewAmount(math.Inf(1), generic.UnitDays)
	assert.False(t, ok)
	_, ok = generic.NewAmount(math.NaN(), generic.UnitDays)
	assert.False(t, ok)

	assert.Equal(t, "8.4", generic.FormatDecimal(42.0/5))
}
