package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/recruitment-api/internal/storage"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "STORAGE_TYPE", "REDIS_URL", "LOG_LEVEL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, storage.TypeMemory, cfg.Storage.Type)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:9090")
	t.Setenv("STORAGE_TYPE", "Redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, storage.TypeRedis, cfg.Storage.Type)
	assert.Equal(t, "redis://cache:6379/1", cfg.Storage.RedisURL)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
}

func TestLoadPortWithLeadingColon(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":7000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Server.Host)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port not numeric", "PORT", "eighty"},
		{"port out of range", "PORT", "70000"},
		{"bad storage type", "STORAGE_TYPE", "postgres"},
		{"bad log level", "LOG_LEVEL", "loud"},
		{"bad shutdown timeout", "SHUTDOWN_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRedisRequiresURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_TYPE", "redis")

	_, err := Load()
	assert.ErrorContains(t, err, "REDIS_URL")
}
