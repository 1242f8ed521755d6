// Package config assembles process configuration from an optional .env file
// and LIFEBUDDY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lifebuddy/lifebuddy/internal/llm"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
)

// Config is the full runtime configuration.
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string

	// HTTPAddr is the API listen address. Default ":8080".
	HTTPAddr string

	// RequestTimeout bounds one API request, generation included.
	// Default 5m.
	RequestTimeout time.Duration

	// ReminderAt is the daily reminder time as "HH:MM". Empty disables it.
	ReminderAt string

	// ReminderLocation is the IANA zone the reminder time is read in.
	ReminderLocation string

	// LogLevel is debug, info, warn or error. Default info.
	LogLevel string

	// LogFormat is "text" or "json". Default text.
	LogFormat string

	LLM      llm.Config
	Schedule schedule.Config
}

// Load reads the given .env files (default ".env"), ignoring missing ones,
// then builds a Config from the environment. Variables already set in the
// environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		DBPath:           os.Getenv("LIFEBUDDY_DB"),
		HTTPAddr:         envOr("LIFEBUDDY_HTTP_ADDR", ":8080"),
		RequestTimeout:   5 * time.Minute,
		ReminderAt:       envOr("LIFEBUDDY_REMINDER_AT", "08:00"),
		ReminderLocation: envOr("LIFEBUDDY_REMINDER_TZ", "UTC"),
		LogLevel:         envOr("LIFEBUDDY_LOG_LEVEL", "info"),
		LogFormat:        envOr("LIFEBUDDY_LOG_FORMAT", "text"),
		LLM:              llm.ConfigFromEnv(),
		Schedule:         schedule.DefaultConfig(),
	}

	if v := os.Getenv("LIFEBUDDY_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("LIFEBUDDY_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	if err := intEnv("LIFEBUDDY_GEN_MAX_ATTEMPTS", &cfg.Schedule.MaxAttempts); err != nil {
		return nil, err
	}
	if err := intEnv("LIFEBUDDY_GEN_MAX_TOKENS", &cfg.Schedule.MaxTokens); err != nil {
		return nil, err
	}
	if err := intEnv("LIFEBUDDY_GEN_MIN_WORDS", &cfg.Schedule.MinWordsPerDay); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if c.ReminderAt != "" {
		if _, _, err := ParseClock(c.ReminderAt); err != nil {
			return err
		}
		if _, err := time.LoadLocation(c.ReminderLocation); err != nil {
			return fmt.Errorf("LIFEBUDDY_REMINDER_TZ: %w", err)
		}
	}
	return nil
}

// Logger builds the process logger from LogLevel and LogFormat, writing
// to stderr.
func (c *Config) Logger() *slog.Logger {
	return c.LoggerTo(os.Stderr)
}

// LoggerTo is Logger with an explicit destination.
func (c *Config) LoggerTo(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseClock parses "HH:MM" in 24-hour form.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q, want HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
