package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/analytics"
	testutils "github.com/Mayank-kush24/Consolidated-Dahsboards/api/controllers/testing"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/models"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/auth"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAnalytics(t *testing.T) {
	rows := []analytics.EventRecord{
		{
			analytics.ColInitiativeName:     "Hack the Future",
			analytics.ColRegistrationCount:  "1200",
			analytics.ColSubmissionCount:    30,
			analytics.ColGender:             `{"Male": 700, "Female": 500}`,
			analytics.ColCountry:            `{"India": 900, "USA": 300}`,
			analytics.ColDailyRegistrations: `{"2026-01-08": 600, "2026-01-09": 600}`,
			analytics.ColRegistrationStart:  "08-01-2026",
			analytics.ColRegistrationEnd:    "22-02-2026",
		},
		{
			analytics.ColInitiativeName:     "Hack the Future ",
			analytics.ColRegistrationCount:  1100,
			analytics.ColSubmissionCount:    "12",
			analytics.ColGender:             `{"Male": 600, "": 500}`,
			analytics.ColCountry:            "not json",
			analytics.ColDailyRegistrations: `{"2026-01-09": 500, "2026-01-10": 600}`,
			analytics.ColRegistrationStart:  "08-01-2026",
			analytics.ColRegistrationEnd:    "22-02-2026",
		},
		{
			analytics.ColInitiativeName:    "AI Summit",
			analytics.ColRegistrationCount: 99999,
		},
	}
	env := setupTestEnv(t, rows)
	headers := sessionFor(t, env.sessions, "viewer", auth.RoleViewer)

	t.Run("Happy path - rows are filtered, summed and merged", func(t *testing.T) {
		res := testutils.PerformRequest(env.engine, http.MethodGet, "/api/analytics/Hack%20the%20Future", nil, headers)

		require.Equal(t, http.StatusOK, res.Code)
		var body models.AnalyticsResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))

		assert.Equal(t, "Hack the Future", body.Initiative)
		assert.Equal(t, 2300, body.KPIs[analytics.ColRegistrationCount])
		assert.Equal(t, 42, body.KPIs[analytics.ColSubmissionCount])
		assert.Equal(t, 0, body.KPIs[analytics.ColTeamsCount])

		// Gender merges across rows; the empty key is normalized.
		assert.Contains(t, body.Gender, models.DistributionEntry{Label: "Male", Count: 1300})
		assert.Contains(t, body.Gender, models.DistributionEntry{Label: "Female", Count: 500})
		assert.Contains(t, body.Gender, models.DistributionEntry{Label: "(Unknown)", Count: 500})

		// The malformed country cell contributes nothing.
		assert.Equal(t, []models.DistributionEntry{
			{Label: "India", Count: 900},
			{Label: "USA", Count: 300},
		}, body.Country)

		// Daily registrations merge by date and come back sorted.
		assert.Equal(t, []string{"2026-01-08", "2026-01-09", "2026-01-10"}, body.DailyRegistrations.Dates)
		assert.Equal(t, []int{600, 1100, 600}, body.DailyRegistrations.Counts)

		// No config stored, so no forecast and no dashboard link.
		assert.Nil(t, body.Forecast)
		assert.Empty(t, body.DashboardLink)
	})

	t.Run("Happy path - configured target produces a forecast", func(t *testing.T) {
		require.NoError(t, env.configs.Put(context.Background(), &storage.EventConfig{
			Initiative:         "Hack the Future",
			DashboardLink:      "https://example.com/dash",
			RegistrationTarget: 4600,
		}))

		res := testutils.PerformRequest(env.engine, http.MethodGet, "/api/analytics/Hack%20the%20Future", nil, headers)

		require.Equal(t, http.StatusOK, res.Code)
		var body models.AnalyticsResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))

		require.NotNil(t, body.Forecast)
		// 08-01-2026 through 22-02-2026 is a 46-day window (day-first dates).
		assert.Equal(t, 46, body.Forecast.WindowDays)
		assert.True(t, body.Forecast.WindowFromSheet)
		require.NotNil(t, body.Forecast.AverageDaily)
		assert.InDelta(t, 100.0, *body.Forecast.AverageDaily, 0.0001)

		// 2300 registered by 10 Jan, 43 days left: (4600-2300)/43.
		require.NotNil(t, body.Forecast.RequiredDaily)
		assert.InDelta(t, 2300.0/43.0, *body.Forecast.RequiredDaily, 0.0001)
		assert.Equal(t, 2300, body.Forecast.TotalSoFar)
		assert.Equal(t, 43, body.Forecast.DaysRemaining)
		assert.False(t, body.Forecast.PeriodEnded)

		assert.Equal(t, "https://example.com/dash", body.DashboardLink)
	})

	t.Run("Happy path - zero target disables the forecast", func(t *testing.T) {
		require.NoError(t, env.configs.Put(context.Background(), &storage.EventConfig{
			Initiative:         "AI Summit",
			RegistrationTarget: 0,
		}))

		res := testutils.PerformRequest(env.engine, http.MethodGet, "/api/analytics/AI%20Summit", nil, headers)

		require.Equal(t, http.StatusOK, res.Code)
		var body models.AnalyticsResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		assert.Nil(t, body.Forecast)
		assert.Equal(t, 99999, body.KPIs[analytics.ColRegistrationCount])
	})

	t.Run("Unhappy path - unknown initiative", func(t *testing.T) {
		res := testutils.PerformRequest(env.engine, http.MethodGet, "/api/analytics/Nope", nil, headers)
		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("Unhappy path - no session", func(t *testing.T) {
		res := testutils.PerformRequest(env.engine, http.MethodGet, "/api/analytics/Hack%20the%20Future", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}
