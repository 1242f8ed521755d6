package reminder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type staticTasks struct {
	tasks []*progress.Task
	err   error
}

func (s staticTasks) ListActive(context.Context) ([]*progress.Task, error) {
	return s.tasks, s.err
}

type sent struct {
	taskID string
	day    int
	reason string
}

type recorder struct {
	mu    sync.Mutex
	sent  []sent
	failT string
}

func (r *recorder) NotifyDayReady(ctx context.Context, _ string, task *progress.Task, day int) error {
	if task.ID == r.failT {
		return errors.New("unreachable")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sent{taskID: task.ID, day: day, reason: progress.ReasonFrom(ctx)})
	return nil
}

func task(id string, current int, statuses ...schedule.Status) *progress.Task {
	t := &progress.Task{ID: id, UserID: "u-" + id, CurrentDay: current}
	for i, s := range statuses {
		t.Schedule = append(t.Schedule, schedule.DayPlan{Day: i + 1, Subtask: "step", Status: s})
	}
	return t
}

func TestSweepNotifiesPendingCurrentDays(t *testing.T) {
	p, c, s := schedule.StatusPending, schedule.StatusCompleted, schedule.StatusSkipped
	tasks := staticTasks{tasks: []*progress.Task{
		task("a", 1, p, p),
		task("b", 2, c, p, p),
		task("stale", 1, s, p),
		task("empty", 1),
		task("broken", 2, c, p),
	}}
	rec := &recorder{failT: "broken"}
	sw := New(tasks, rec, nil, discard)

	n, err := sw.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []sent{
		{taskID: "a", day: 1, reason: progress.ReasonReminder},
		{taskID: "b", day: 2, reason: progress.ReasonReminder},
	}, rec.sent)
}

func TestSweepListError(t *testing.T) {
	sw := New(staticTasks{err: errors.New("db down")}, &recorder{}, nil, discard)
	_, err := sw.Sweep(context.Background())
	assert.Error(t, err)
}

func TestSweepStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sw := New(staticTasks{tasks: []*progress.Task{task("a", 1, schedule.StatusPending)}}, &recorder{}, nil, discard)
	n, err := sw.Sweep(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestDailySpec(t *testing.T) {
	spec, err := dailySpec("08:30")
	require.NoError(t, err)
	assert.Equal(t, "0 30 8 * * *", spec)

	for _, bad := range []string{"8", "25:00", "08:61", "morning"} {
		_, err := dailySpec(bad)
		assert.Error(t, err, bad)
	}
}

func TestScheduleDailyRegistersEntry(t *testing.T) {
	sw := New(staticTasks{}, &recorder{}, nil, discard)
	id, err := sw.ScheduleDaily("07:15")
	require.NoError(t, err)

	entry := sw.cron.Entry(id)
	require.True(t, entry.Valid())

	sw.Start()
	defer sw.Stop()
	next := sw.cron.Entry(id).Next
	assert.Equal(t, 7, next.Hour())
	assert.Equal(t, 15, next.Minute())
}
