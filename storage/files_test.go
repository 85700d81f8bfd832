package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.Log = logrus.New()
	os.Exit(m.Run())
}

func TestFileEventConfigStorage(t *testing.T) {
	s := &FileEventConfigStorage{Path: filepath.Join(t.TempDir(), "event_dashboard_config.json")}
	ctx := context.Background()

	t.Run("Happy path - missing file reads as empty", func(t *testing.T) {
		configs, err := s.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, configs)

		config, err := s.Get(ctx, "Hack the Future")
		require.NoError(t, err)
		assert.Nil(t, config)
	})

	t.Run("Happy path - put then get round-trips", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, &EventConfig{
			Initiative:         "Hack the Future",
			DashboardLink:      "https://example.com/dash",
			AdminUsername:      "organizer",
			AdminPassword:      "secret",
			RegistrationTarget: 4600,
		}))

		config, err := s.Get(ctx, "Hack the Future")
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 4600, config.RegistrationTarget)
		assert.Equal(t, "https://example.com/dash", config.DashboardLink)
	})

	t.Run("Happy path - GetAll is sorted by initiative", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, &EventConfig{Initiative: "AI Summit"}))
		configs, err := s.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, configs, 2)
		assert.Equal(t, "AI Summit", configs[0].Initiative)
		assert.Equal(t, "Hack the Future", configs[1].Initiative)
	})

	t.Run("Happy path - delete removes the entry", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "AI Summit"))
		config, err := s.Get(ctx, "AI Summit")
		require.NoError(t, err)
		assert.Nil(t, config)
	})

	t.Run("Unhappy path - malformed file reads as empty", func(t *testing.T) {
		broken := &FileEventConfigStorage{Path: filepath.Join(t.TempDir(), "config.json")}
		require.NoError(t, os.WriteFile(broken.Path, []byte("{not json"), 0o644))
		configs, err := broken.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, configs)
	})
}

func TestFileSessionStorage(t *testing.T) {
	s := &FileSessionStorage{Path: filepath.Join(t.TempDir(), "auth_sessions.json")}
	ctx := context.Background()

	t.Run("Unhappy path - unknown token", func(t *testing.T) {
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Happy path - put, get, delete", func(t *testing.T) {
		session := &Session{
			Token:     "tok123",
			User:      "admin",
			Role:      "admin",
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, s.Put(ctx, session))

		got, err := s.Get(ctx, "tok123")
		require.NoError(t, err)
		assert.Equal(t, "admin", got.User)
		assert.Equal(t, "admin", got.Role)

		require.NoError(t, s.Delete(ctx, "tok123"))
		_, err = s.Get(ctx, "tok123")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestFilePinStorage(t *testing.T) {
	s := &FilePinStorage{Path: filepath.Join(t.TempDir(), "pinned_initiatives.json")}
	ctx := context.Background()

	t.Run("Happy path - empty list on first read", func(t *testing.T) {
		pins, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, pins)
	})

	t.Run("Happy path - pin is idempotent", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "Hack the Future"))
		require.NoError(t, s.Put(ctx, "Hack the Future"))
		require.NoError(t, s.Put(ctx, "AI Summit"))

		pins, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Hack the Future", "AI Summit"}, pins)
	})

	t.Run("Happy path - unpin removes only that name", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "Hack the Future"))
		pins, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"AI Summit"}, pins)
	})
}
