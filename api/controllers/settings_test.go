package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/Mayank-kush24/Consolidated-Dahsboards/api/controllers/testing"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/models"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	env := setupTestEnv(t, nil)
	adminHeaders := sessionFor(t, env.sessions, "admin", auth.RoleAdmin)
	viewerHeaders := sessionFor(t, env.sessions, "viewer", auth.RoleViewer)

	t.Run("Happy path - put, get, list, delete round-trip", func(t *testing.T) {
		put := testutils.PerformRequest(env.engine, http.MethodPut, "/api/settings/events/Hack%20the%20Future",
			models.EventConfigUpdateRequest{
				DashboardLink:      " https://example.com/dash ",
				AdminUsername:      "organizer",
				AdminPassword:      "secret",
				RegistrationTarget: 4600,
			}, adminHeaders)
		require.Equal(t, http.StatusOK, put.Code)

		get := testutils.PerformRequest(env.engine, http.MethodGet, "/api/settings/events/Hack%20the%20Future", nil, adminHeaders)
		require.Equal(t, http.StatusOK, get.Code)
		var body models.EventConfigResponse
		require.NoError(t, json.Unmarshal(get.Body.Bytes(), &body))
		assert.Equal(t, "Hack the Future", body.Initiative)
		assert.Equal(t, "https://example.com/dash", body.DashboardLink)
		assert.Equal(t, 4600, body.RegistrationTarget)

		list := testutils.PerformRequest(env.engine, http.MethodGet, "/api/settings/events", nil, adminHeaders)
		require.Equal(t, http.StatusOK, list.Code)
		var entries []models.EventConfigResponse
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &entries))
		require.Len(t, entries, 1)

		del := testutils.PerformRequest(env.engine, http.MethodDelete, "/api/settings/events/Hack%20the%20Future", nil, adminHeaders)
		require.Equal(t, http.StatusOK, del.Code)

		list = testutils.PerformRequest(env.engine, http.MethodGet, "/api/settings/events", nil, adminHeaders)
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &entries))
		assert.Empty(t, entries)
	})

	t.Run("Happy path - unconfigured initiative returns a zero-value entry", func(t *testing.T) {
		res := testutils.PerformRequest(env.engine, http.MethodGet, "/api/settings/events/New%20Event", nil, adminHeaders)

		require.Equal(t, http.StatusOK, res.Code)
		var body models.EventConfigResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		assert.Equal(t, "New Event", body.Initiative)
		assert.Equal(t, 0, body.RegistrationTarget)
		assert.Empty(t, body.DashboardLink)
	})

	t.Run("Unhappy path - negative target", func(t *testing.T) {
		res := testutils.PerformRequest(env.engine, http.MethodPut, "/api/settings/events/Hack%20the%20Future",
			models.EventConfigUpdateRequest{RegistrationTarget: -5}, adminHeaders)

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - viewer is forbidden", func(t *testing.T) {
		res := testutils.PerformRequest(env.engine, http.MethodGet, "/api/settings/events", nil, viewerHeaders)
		assert.Equal(t, http.StatusForbidden, res.Code)
	})

	t.Run("Unhappy path - no session", func(t *testing.T) {
		res := testutils.PerformRequest(env.engine, http.MethodGet, "/api/settings/events", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}
