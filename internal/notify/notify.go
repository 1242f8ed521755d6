// Package notify tells the delivery layer that a plan day is ready. Message
// formatting and delivery happen elsewhere; these triggers only hand off.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/store"
)

// PreferenceNone opts a user out of day-ready notices.
const PreferenceNone = "none"

// DefaultChannel is used when the user states no preference.
const DefaultChannel = "in_app"

// LogTrigger writes each notice to a structured log.
type LogTrigger struct {
	logger *slog.Logger
}

// NewLogTrigger creates a LogTrigger. A nil logger means slog.Default().
func NewLogTrigger(logger *slog.Logger) *LogTrigger {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogTrigger{logger: logger}
}

func (l *LogTrigger) NotifyDayReady(ctx context.Context, userID string, task *progress.Task, day int) error {
	l.logger.InfoContext(ctx, "day ready",
		"user", userID,
		"task", task.ID,
		"day", day,
		"subtask", subtaskOf(task, day),
		"reason", progress.ReasonFrom(ctx))
	return nil
}

// NotificationAppender stores notices. store.NotificationRepo satisfies it.
type NotificationAppender interface {
	AppendNotification(ctx context.Context, data store.NotificationData) error
}

// StoreTrigger queues a notification row for the delivery layer, honoring
// the user's notification preference.
type StoreTrigger struct {
	repo NotificationAppender
}

// NewStoreTrigger creates a StoreTrigger.
func NewStoreTrigger(repo NotificationAppender) *StoreTrigger {
	return &StoreTrigger{repo: repo}
}

func (s *StoreTrigger) NotifyDayReady(ctx context.Context, userID string, task *progress.Task, day int) error {
	pref := strings.ToLower(strings.TrimSpace(task.UserContext.NotificationPreference))
	if pref == PreferenceNone {
		return nil
	}
	if pref == "" {
		pref = DefaultChannel
	}

	err := s.repo.AppendNotification(ctx, store.NotificationData{
		UserID:  userID,
		TaskID:  task.ID,
		Day:     day,
		Subtask: subtaskOf(task, day),
		Channel: pref,
		Reason:  progress.ReasonFrom(ctx),
	})
	if err != nil {
		return fmt.Errorf("queue notification: %w", err)
	}
	return nil
}

// Fanout delivers to every trigger and joins their errors.
type Fanout []progress.Notifier

func (f Fanout) NotifyDayReady(ctx context.Context, userID string, task *progress.Task, day int) error {
	var errs []error
	for _, n := range f {
		if err := n.NotifyDayReady(ctx, userID, task, day); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func subtaskOf(task *progress.Task, day int) string {
	if day < 1 || day > len(task.Schedule) {
		return ""
	}
	return task.Schedule[day-1].Subtask
}
