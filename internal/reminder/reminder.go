// Package reminder re-announces each active task's current day on a daily
// schedule.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
)

// ActiveTasks lists unfinished tasks. *progress.Engine satisfies it.
type ActiveTasks interface {
	ListActive(ctx context.Context) ([]*progress.Task, error)
}

// Sweeper runs the daily reminder job.
type Sweeper struct {
	tasks    ActiveTasks
	notifier progress.Notifier
	cron     *cron.Cron
	logger   *slog.Logger

	// timeout bounds one sweep.
	timeout time.Duration
}

// New creates a Sweeper whose schedule is read in loc.
func New(tasks ActiveTasks, notifier progress.Notifier, loc *time.Location, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Sweeper{
		tasks:    tasks,
		notifier: notifier,
		cron:     cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		logger:   logger,
		timeout:  5 * time.Minute,
	}
}

// ScheduleDaily registers the sweep at the given HH:MM.
func (s *Sweeper) ScheduleDaily(at string) (cron.EntryID, error) {
	spec, err := dailySpec(at)
	if err != nil {
		return 0, err
	}
	return s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if _, err := s.Sweep(ctx); err != nil {
			s.logger.Error("reminder sweep failed", "error", err)
		}
	})
}

// Start runs the scheduler in its own goroutine.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Sweep notifies the owner of every active task whose current day is still
// pending. It returns how many notices were sent. A failed notice is logged
// and does not stop the sweep.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	tasks, err := s.tasks.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active tasks: %w", err)
	}

	ctx = progress.WithReason(ctx, progress.ReasonReminder)
	sent := 0
	for _, t := range tasks {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		day := t.Current()
		if day == nil || day.Status != schedule.StatusPending {
			continue
		}
		if err := s.notifier.NotifyDayReady(ctx, t.UserID, t, day.Day); err != nil {
			s.logger.WarnContext(ctx, "reminder not delivered",
				"task", t.ID,
				"day", day.Day,
				"error", err)
			continue
		}
		sent++
	}

	s.logger.InfoContext(ctx, "reminder sweep finished", "active", len(tasks), "sent", sent)
	return sent, nil
}

// dailySpec converts HH:MM into a seconds-resolution cron spec.
func dailySpec(at string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(at))
	if err != nil {
		return "", fmt.Errorf("invalid reminder time %q, expected HH:MM", at)
	}
	// second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", t.Minute(), t.Hour()), nil
}
