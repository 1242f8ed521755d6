package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LIFEBUDDY_HTTP_ADDR", "")
	t.Setenv("LIFEBUDDY_REQUEST_TIMEOUT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Minute, cfg.RequestTimeout)
	assert.Equal(t, 2, cfg.Schedule.MaxAttempts)
	assert.Equal(t, "08:00", cfg.ReminderAt)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(env, []byte(
		"LIFEBUDDY_TEST_DOTENV_ONLY=from-file\nLIFEBUDDY_HTTP_ADDR=:9999\nLIFEBUDDY_GEN_MAX_ATTEMPTS=1\n",
	), 0o644))
	t.Setenv("LIFEBUDDY_HTTP_ADDR", ":7000")
	t.Cleanup(func() {
		os.Unsetenv("LIFEBUDDY_TEST_DOTENV_ONLY")
		os.Unsetenv("LIFEBUDDY_GEN_MAX_ATTEMPTS")
	})

	cfg, err := Load(env)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.HTTPAddr)
	assert.Equal(t, 1, cfg.Schedule.MaxAttempts)
	assert.Equal(t, "from-file", os.Getenv("LIFEBUDDY_TEST_DOTENV_ONLY"))
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("LIFEBUDDY_GEN_MAX_TOKENS", "lots")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("LIFEBUDDY_GEN_MAX_TOKENS", "")
	t.Setenv("LIFEBUDDY_REQUEST_TIMEOUT", "soon")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in       string
		h, m     int
		wantFail bool
	}{
		{"08:00", 8, 0, false},
		{"23:59", 23, 59, false},
		{" 7:05 ", 7, 5, false},
		{"24:00", 0, 0, true},
		{"noon", 0, 0, true},
	}
	for _, tt := range tests {
		h, m, err := ParseClock(tt.in)
		if tt.wantFail {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.h, h)
		assert.Equal(t, tt.m, m)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	cfg.LLM.Mock = true

	assert.NoError(t, cfg.Validate())

	cfg.ReminderAt = "25:00"
	assert.Error(t, cfg.Validate())

	cfg.ReminderAt = "08:00"
	cfg.ReminderLocation = "Mars/Olympus"
	assert.Error(t, cfg.Validate())
}

func TestLoggerToHonoursLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "warn", LogFormat: "json"}
	logger := cfg.LoggerTo(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "task", "t1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"task":"t1"`)
}
