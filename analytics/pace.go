package analytics

import "time"

// RegistrationWindow is the declared registration period, inclusive on both
// ends, at day granularity.
type RegistrationWindow struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive day count, floored at 1.
func (w RegistrationWindow) Days() int {
	days := int(w.End.Sub(w.Start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// WindowFromRows reads the declared registration window off the first selected
// row. Both dates must parse; otherwise no window is declared.
func WindowFromRows(rows []EventRecord) *RegistrationWindow {
	if len(rows) == 0 {
		return nil
	}
	start, ok := ParseDate(rows[0][ColRegistrationStart])
	if !ok {
		return nil
	}
	end, ok := ParseDate(rows[0][ColRegistrationEnd])
	if !ok {
		return nil
	}
	return &RegistrationWindow{Start: start, End: end}
}

// PaceForecast carries the benchmark values drawn over the registration chart.
// Nil pointer fields mean the corresponding benchmark could not be resolved.
type PaceForecast struct {
	// AverageDaily is the full-period required daily average (target / window days).
	AverageDaily *float64
	// WindowDays is the inclusive day count behind AverageDaily.
	WindowDays int
	// WindowFromSheet is true when the declared window produced AverageDaily,
	// false when it was inferred from the span of the observed series.
	WindowFromSheet bool
	// RequiredDaily is the as-of-today daily average still needed to hit the
	// target. When the period has already ended it equals AverageDaily and
	// serves as a stable post-period benchmark.
	RequiredDaily *float64
	// TotalSoFar and DaysRemaining are the inputs behind RequiredDaily, kept
	// so the dashboard can show how the number was computed.
	TotalSoFar    int
	DaysRemaining int
	PeriodEnded   bool
}

// ForecastPace derives the pace benchmarks for a registration target over the
// merged daily series. A target of zero means no target is configured and
// disables forecasting entirely. Returns nil when nothing could be resolved.
func ForecastPace(target int, series SortedSeries, window *RegistrationWindow) *PaceForecast {
	if target <= 0 {
		return nil
	}

	forecast := &PaceForecast{}

	// Full-period average from the declared window, when it spans more than a
	// single day. A one-day declared window is treated as unreliable and falls
	// through to the series span below; a single-day window might be intentional,
	// but this matches the dashboard's historical behavior.
	if window != nil {
		if days := window.Days(); days > 1 {
			avg := float64(target) / float64(days)
			forecast.AverageDaily = &avg
			forecast.WindowDays = days
			forecast.WindowFromSheet = true
		}
	}

	// Fall back to the chart's own date range (inclusive, floored at 1 day).
	if forecast.AverageDaily == nil && len(series.Dates) > 0 {
		minDate, okMin := ParseDate(series.Dates[0])
		maxDate, okMax := ParseDate(series.Dates[len(series.Dates)-1])
		if okMin && okMax {
			span := int(maxDate.Sub(minDate).Hours()/24) + 1
			if span < 1 {
				span = 1
			}
			avg := float64(target) / float64(span)
			forecast.AverageDaily = &avg
			forecast.WindowDays = span
			forecast.WindowFromSheet = false
		}
	}

	// Required pace to date needs a declared end date: count registrations on
	// or before it, then spread the remainder over the days left.
	if window != nil && len(series.Dates) > 0 {
		totalSoFar := 0
		var lastInRange time.Time
		seen := false
		for i, dateStr := range series.Dates {
			date, ok := ParseDate(dateStr)
			if !ok || date.After(window.End) {
				continue
			}
			totalSoFar += series.Counts[i]
			if !seen || date.After(lastInRange) {
				lastInRange = date
				seen = true
			}
		}
		if seen {
			daysRemaining := int(window.End.Sub(lastInRange).Hours() / 24)
			if daysRemaining > 0 {
				remaining := target - totalSoFar
				if remaining < 0 {
					remaining = 0
				}
				required := float64(remaining) / float64(daysRemaining)
				forecast.RequiredDaily = &required
				forecast.TotalSoFar = totalSoFar
				forecast.DaysRemaining = daysRemaining
			} else if forecast.AverageDaily != nil {
				// Period already ended per the data: pin the required line to the
				// full-period average instead of dividing by zero.
				required := *forecast.AverageDaily
				forecast.RequiredDaily = &required
				forecast.TotalSoFar = totalSoFar
				forecast.DaysRemaining = 0
				forecast.PeriodEnded = true
			}
		}
	}

	if forecast.AverageDaily == nil && forecast.RequiredDaily == nil {
		return nil
	}
	return forecast
}
