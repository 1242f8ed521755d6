package cmd

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifebuddy/lifebuddy/internal/config"
	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate(" 2025-03-02 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), d)

	_, err = parseDate("03/02/2025")
	assert.Error(t, err)
}

func TestFriendlyErrors(t *testing.T) {
	err := friendly(&progress.ProgressionError{Kind: progress.KindAlreadyMarked, Status: "skipped"})
	assert.Equal(t, "That day is already marked skipped.", err.Error())

	err = friendly(&schedule.GenerationError{Kind: schedule.ModelUnavailable})
	assert.Contains(t, err.Error(), "AI model")

	assert.EqualError(t, friendly(progress.ErrTaskNotFound), "plan not found")

	other := errors.New("disk full")
	assert.Same(t, other, friendly(other))
}

func TestResolveDBPathPrecedence(t *testing.T) {
	dir := t.TempDir()

	c := &cobra.Command{}
	c.Flags().String("db", "", "")

	cfgPath := filepath.Join(dir, "cfg", "a.db")
	p, err := resolveDBPath(c, &config.Config{DBPath: cfgPath})
	require.NoError(t, err)
	assert.Equal(t, cfgPath, p)
	assert.DirExists(t, filepath.Dir(cfgPath))

	flagPath := filepath.Join(dir, "flag", "b.db")
	require.NoError(t, c.Flags().Set("db", flagPath))
	p, err = resolveDBPath(c, &config.Config{DBPath: cfgPath})
	require.NoError(t, err)
	assert.Equal(t, flagPath, p)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
}
