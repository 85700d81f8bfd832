package controllers

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/analytics"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/auth"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/sheets"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// stubRowSource serves canned rows per sheet ID so controller tests never
// touch the Sheets API.
type stubRowSource struct {
	rows map[string][]analytics.EventRecord
	err  error
}

func (s *stubRowSource) LoadRows(_ context.Context, sheetID string) ([]analytics.EventRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows[sheetID], nil
}

type testEnv struct {
	engine   *gin.Engine
	sessions storage.SessionStorage
	configs  storage.EventConfigStorage
	pins     storage.PinStorage
	source   *stubRowSource
	cache    *sheets.Cache
}

func setupTestEnv(t *testing.T, rows []analytics.EventRecord) *testEnv {
	t.Helper()
	logging.Log = logrus.New()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	env := &testEnv{
		sessions: &storage.FileSessionStorage{Path: filepath.Join(dir, "auth_sessions.json")},
		configs:  &storage.FileEventConfigStorage{Path: filepath.Join(dir, "event_dashboard_config.json")},
		pins:     &storage.FilePinStorage{Path: filepath.Join(dir, "pinned_initiatives.json")},
		source:   &stubRowSource{rows: map[string][]analytics.EventRecord{"test-sheet": rows}},
	}
	env.cache = sheets.NewCache(env.source, "test-sheet", time.Minute)

	env.engine = gin.New()
	NewAuthController(auth.NewUserStore(), env.sessions).RegisterRoutes(env.engine)
	NewEventsController(env.cache, env.pins, env.sessions).RegisterRoutes(env.engine)
	NewAnalyticsController(env.cache, env.configs, env.sessions).RegisterRoutes(env.engine)
	NewSettingsController(env.configs, env.sessions).RegisterRoutes(env.engine)

	return env
}

// sessionFor seeds a session directly in storage and returns its header map.
func sessionFor(t *testing.T, sessions storage.SessionStorage, user string, role auth.Role) map[string]string {
	t.Helper()
	token := "test-token-" + user
	err := sessions.Put(context.Background(), &storage.Session{
		Token:     token,
		User:      user,
		Role:      string(role),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	return map[string]string{"x-session-token": token}
}
