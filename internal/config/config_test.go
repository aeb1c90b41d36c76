package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.True(t, cfg.AutoMode)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.AdminKey)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FLOATSIM_PORT", "9000")
	t.Setenv("FLOATSIM_ADMIN_KEY", "hunter2")
	t.Setenv("FLOATSIM_TICK_MS", "250")
	t.Setenv("FLOATSIM_MODE", "manual")
	t.Setenv("FLOATSIM_SEED", "42")
	t.Setenv("FLOATSIM_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "hunter2", cfg.AdminKey)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.False(t, cfg.AutoMode)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadBadInt(t *testing.T) {
	t.Setenv("FLOATSIM_PORT", "not-a-port")
	assert.Equal(t, 8080, Load().Port)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestLoggerFanout(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("sample recorded", "tick", 42)

	assert.Contains(t, stderr.String(), "sample recorded")

	// File side is JSON.
	var entry map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &entry))
	assert.Equal(t, "sample recorded", entry["msg"])
	assert.EqualValues(t, 42, entry["tick"])
}

func TestLoggerDebugFiltered(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Debug("noise")
	assert.Empty(t, stderr.String())
	assert.Empty(t, file.String())
}
