package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/store"
)

func testTask(pref string) *progress.Task {
	return &progress.Task{
		ID:     "t1",
		UserID: "u1",
		Schedule: []schedule.DayPlan{
			{Day: 1, Subtask: "Install Go"},
			{Day: 2, Subtask: "Write hello world"},
		},
		UserContext: schedule.UserContext{NotificationPreference: pref},
	}
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "notify.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreTriggerQueuesNotice(t *testing.T) {
	s := openStore(t)
	trig := NewStoreTrigger(s.NotificationRepo())
	ctx := progress.WithReason(context.Background(), progress.ReasonAdvanced)

	require.NoError(t, trig.NotifyDayReady(ctx, "u1", testTask("Email"), 2))

	got, err := s.NotificationRepo().ListNotifications(context.Background(), "u1", store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].TaskID)
	assert.Equal(t, 2, got[0].Day)
	assert.Equal(t, "Write hello world", got[0].Subtask)
	assert.Equal(t, "email", got[0].Channel)
	assert.Equal(t, progress.ReasonAdvanced, got[0].Reason)
}

func TestStoreTriggerDefaultsChannel(t *testing.T) {
	s := openStore(t)
	trig := NewStoreTrigger(s.NotificationRepo())

	require.NoError(t, trig.NotifyDayReady(context.Background(), "u1", testTask(""), 1))

	got, err := s.NotificationRepo().ListNotifications(context.Background(), "u1", store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, DefaultChannel, got[0].Channel)
}

func TestStoreTriggerHonorsNone(t *testing.T) {
	s := openStore(t)
	trig := NewStoreTrigger(s.NotificationRepo())

	require.NoError(t, trig.NotifyDayReady(context.Background(), "u1", testTask("none"), 1))

	got, err := s.NotificationRepo().ListNotifications(context.Background(), "u1", store.QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLogTrigger(t *testing.T) {
	var buf bytes.Buffer
	trig := NewLogTrigger(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, trig.NotifyDayReady(context.Background(), "u1", testTask(""), 1))
	assert.Contains(t, buf.String(), `"subtask":"Install Go"`)
	assert.Contains(t, buf.String(), `"task":"t1"`)
}

type failingTrigger struct{ err error }

func (f failingTrigger) NotifyDayReady(context.Context, string, *progress.Task, int) error {
	return f.err
}

type countingTrigger struct{ calls int }

func (c *countingTrigger) NotifyDayReady(context.Context, string, *progress.Task, int) error {
	c.calls++
	return nil
}

func TestFanoutReachesAllAndJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	counter := &countingTrigger{}
	f := Fanout{failingTrigger{err: boom}, counter}

	err := f.NotifyDayReady(context.Background(), "u1", testTask(""), 1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, counter.calls, "a failing trigger must not stop the rest")

	assert.NoError(t, Fanout{counter}.NotifyDayReady(context.Background(), "u1", testTask(""), 1))
}
