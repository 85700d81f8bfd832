package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow() *RegistrationWindow {
	return &RegistrationWindow{
		Start: time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.February, 22, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegistrationWindowDays(t *testing.T) {
	t.Run("Happy path - inclusive day count", func(t *testing.T) {
		assert.Equal(t, 46, testWindow().Days())
	})

	t.Run("Happy path - single day window", func(t *testing.T) {
		day := time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC)
		w := RegistrationWindow{Start: day, End: day}
		assert.Equal(t, 1, w.Days())
	})

	t.Run("Happy path - inverted window floors at one day", func(t *testing.T) {
		w := RegistrationWindow{Start: testWindow().End, End: testWindow().Start}
		assert.Equal(t, 1, w.Days())
	})
}

func TestWindowFromRows(t *testing.T) {
	t.Run("Happy path - day-first dates from first row", func(t *testing.T) {
		rows := []EventRecord{
			{ColRegistrationStart: "08-01-2026", ColRegistrationEnd: "22-02-2026"},
			{ColRegistrationStart: "01-01-2000", ColRegistrationEnd: "02-01-2000"},
		}
		w := WindowFromRows(rows)
		require.NotNil(t, w)
		assert.Equal(t, testWindow().Start, w.Start)
		assert.Equal(t, testWindow().End, w.End)
		assert.Equal(t, 46, w.Days())
	})

	t.Run("Unhappy path - missing or unparseable dates", func(t *testing.T) {
		assert.Nil(t, WindowFromRows(nil))
		assert.Nil(t, WindowFromRows([]EventRecord{{}}))
		assert.Nil(t, WindowFromRows([]EventRecord{{ColRegistrationStart: "08-01-2026"}}))
		assert.Nil(t, WindowFromRows([]EventRecord{
			{ColRegistrationStart: "soon", ColRegistrationEnd: "22-02-2026"},
		}))
	})
}

func TestForecastPace(t *testing.T) {
	t.Run("Happy path - full-period average from declared window", func(t *testing.T) {
		series := ToSortedSeries(DailySeries{"2026-01-10": 50})
		forecast := ForecastPace(4600, series, testWindow())
		require.NotNil(t, forecast)
		require.NotNil(t, forecast.AverageDaily)
		assert.InDelta(t, 100.0, *forecast.AverageDaily, 1e-9)
		assert.Equal(t, 46, forecast.WindowDays)
		assert.True(t, forecast.WindowFromSheet)
	})

	t.Run("Happy path - required pace with days remaining", func(t *testing.T) {
		// 2300 registrations recorded through 1 Feb; 21 days left until 22 Feb.
		series := ToSortedSeries(DailySeries{
			"2026-01-10": 1000,
			"2026-01-20": 800,
			"2026-02-01": 500,
		})
		forecast := ForecastPace(4600, series, testWindow())
		require.NotNil(t, forecast)
		require.NotNil(t, forecast.RequiredDaily)
		assert.InDelta(t, (4600.0-2300.0)/21.0, *forecast.RequiredDaily, 1e-9)
		assert.Equal(t, 2300, forecast.TotalSoFar)
		assert.Equal(t, 21, forecast.DaysRemaining)
		assert.False(t, forecast.PeriodEnded)
	})

	t.Run("Happy path - period ended pins required to full-period average", func(t *testing.T) {
		series := ToSortedSeries(DailySeries{
			"2026-02-01": 2000,
			"2026-02-22": 300,
		})
		forecast := ForecastPace(4600, series, testWindow())
		require.NotNil(t, forecast)
		require.NotNil(t, forecast.RequiredDaily)
		assert.InDelta(t, 100.0, *forecast.RequiredDaily, 1e-9)
		assert.Equal(t, 0, forecast.DaysRemaining)
		assert.Equal(t, 2300, forecast.TotalSoFar)
		assert.True(t, forecast.PeriodEnded)
	})

	t.Run("Happy path - target already met leaves required at zero", func(t *testing.T) {
		series := ToSortedSeries(DailySeries{"2026-01-10": 5000})
		forecast := ForecastPace(4600, series, testWindow())
		require.NotNil(t, forecast)
		require.NotNil(t, forecast.RequiredDaily)
		assert.Zero(t, *forecast.RequiredDaily)
	})

	t.Run("Happy path - dates past the end are excluded from pace", func(t *testing.T) {
		series := ToSortedSeries(DailySeries{
			"2026-02-01": 2300,
			"2026-03-15": 999,
		})
		forecast := ForecastPace(4600, series, testWindow())
		require.NotNil(t, forecast)
		require.NotNil(t, forecast.RequiredDaily)
		assert.Equal(t, 2300, forecast.TotalSoFar)
		assert.Equal(t, 21, forecast.DaysRemaining)
	})

	t.Run("Happy path - degenerate window superseded by series span", func(t *testing.T) {
		day := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
		window := &RegistrationWindow{Start: day, End: day}
		series := ToSortedSeries(DailySeries{
			"2026-01-01": 10,
			"2026-01-10": 20,
		})
		forecast := ForecastPace(100, series, window)
		require.NotNil(t, forecast)
		require.NotNil(t, forecast.AverageDaily)
		assert.InDelta(t, 10.0, *forecast.AverageDaily, 1e-9) // 100 / 10-day span
		assert.Equal(t, 10, forecast.WindowDays)
		assert.False(t, forecast.WindowFromSheet)
	})

	t.Run("Happy path - no declared window uses series span only", func(t *testing.T) {
		series := ToSortedSeries(DailySeries{
			"2026-01-01": 10,
			"2026-01-05": 20,
		})
		forecast := ForecastPace(500, series, nil)
		require.NotNil(t, forecast)
		require.NotNil(t, forecast.AverageDaily)
		assert.InDelta(t, 100.0, *forecast.AverageDaily, 1e-9)
		assert.False(t, forecast.WindowFromSheet)
		assert.Nil(t, forecast.RequiredDaily)
	})

	t.Run("Unhappy path - zero target skips forecasting", func(t *testing.T) {
		series := ToSortedSeries(DailySeries{"2026-01-10": 50})
		assert.Nil(t, ForecastPace(0, series, testWindow()))
	})

	t.Run("Unhappy path - nothing resolvable", func(t *testing.T) {
		assert.Nil(t, ForecastPace(100, ToSortedSeries(DailySeries{}), nil))
	})
}
