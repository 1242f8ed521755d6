package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lifebuddy/lifebuddy/internal/llm"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/store"
)

// Generator produces plans. *schedule.Generator satisfies it.
type Generator interface {
	Generate(ctx context.Context, in schedule.GenerateInput) (*schedule.Result, error)
}

// Notifier is told whenever a day becomes current. Delivery is fire and
// forget: errors are logged and never fail the transition.
type Notifier interface {
	NotifyDayReady(ctx context.Context, userID string, task *Task, day int) error
}

// CreateInput is a request to generate and persist a new task.
type CreateInput struct {
	UserID       string
	Title        string
	Description  string
	Requirements string
	StartDate    time.Time
	EndDate      time.Time
	UserContext  schedule.UserContext

	// Consent must be true; plans are only generated on explicit request.
	Consent bool

	// Models overrides the generator's preference list.
	Models []llm.ModelRef
}

// Engine owns the day-by-day state machine of every task.
type Engine struct {
	tasks       store.TaskRepo
	generator   Generator
	notifier    Notifier
	transitions Transitions
	locks       *keyedMutex
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTransitions replaces the status rules.
func WithTransitions(t Transitions) Option {
	return func(e *Engine) { e.transitions = t }
}

// WithNotifier sets the day-ready notifier. Defaults to a no-op.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an Engine over a task repository and a plan generator.
func NewEngine(tasks store.TaskRepo, gen Generator, opts ...Option) *Engine {
	e := &Engine{
		tasks:       tasks,
		generator:   gen,
		notifier:    nopNotifier{},
		transitions: DefaultTransitions(),
		locks:       newKeyedMutex(),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CreateTask generates a plan for in and persists it with day 1 current.
func (e *Engine) CreateTask(ctx context.Context, in CreateInput) (*Task, error) {
	if !in.Consent {
		return nil, ErrConsentRequired
	}
	if strings.TrimSpace(in.UserID) == "" || strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: user and title are required", ErrInvalidInput)
	}
	start, end := civilDate(in.StartDate), civilDate(in.EndDate)

	res, err := e.generator.Generate(llm.WithPurpose(ctx, llm.PurposeCreate), schedule.GenerateInput{
		Title:        in.Title,
		Description:  in.Description,
		Requirements: in.Requirements,
		StartDate:    start,
		EndDate:      end,
		UserContext:  in.UserContext,
		Models:       in.Models,
	})
	if err != nil {
		return nil, err
	}

	task := &Task{
		UserID:         in.UserID,
		Title:          in.Title,
		Description:    in.Description,
		Requirements:   in.Requirements,
		StartDate:      start,
		EndDate:        end,
		Schedule:       res.Days,
		CurrentDay:     1,
		ScheduleSource: scheduleSource(llm.PurposeCreate, res),
		UserContext:    in.UserContext,
	}

	rec, err := toRecord(task)
	if err != nil {
		return nil, err
	}
	if err := e.tasks.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	task.ID, task.Version = rec.ID, rec.Version
	task.CreatedAt, task.UpdatedAt = rec.CreatedAt, rec.UpdatedAt

	e.logger.InfoContext(ctx, "task created",
		"task", task.ID,
		"user", task.UserID,
		"days", len(task.Schedule),
		"model", res.Model)

	e.notify(WithReason(ctx, ReasonCreated), task, 1)
	return task, nil
}

// Get returns a task by id.
func (e *Engine) Get(ctx context.Context, taskID string) (*Task, error) {
	rec, err := e.tasks.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return fromRecord(rec)
}

// ListByUser returns a user's tasks, newest first.
func (e *Engine) ListByUser(ctx context.Context, userID string) ([]*Task, error) {
	recs, err := e.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return decodeAll(recs)
}

// ListActive returns every task that is not finished.
func (e *Engine) ListActive(ctx context.Context) ([]*Task, error) {
	recs, err := e.tasks.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(recs)
}

// persistTimeout bounds the write of a skip whose regeneration already used
// up the caller's deadline.
const persistTimeout = 10 * time.Second

// dayNotice is a day-ready notification held until the task lock is released.
type dayNotice struct {
	day    int
	reason string
}

// MarkDay records status for the day falling on dayDate, which must be the
// task's current day and still pending.
//
// A skip whose replacement plan cannot be generated is still persisted; the
// updated task is returned together with a RegenerationFailed error.
func (e *Engine) MarkDay(ctx context.Context, taskID string, dayDate time.Time, status schedule.Status) (*Task, error) {
	rule, ok := e.transitions[status]
	if !ok || status == schedule.StatusPending {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	task, notice, err := e.markDay(ctx, taskID, dayDate, status, rule)
	if notice != nil {
		e.notify(WithReason(ctx, notice.reason), task, notice.day)
	}
	return task, err
}

func (e *Engine) markDay(ctx context.Context, taskID string, dayDate time.Time, status schedule.Status, rule Transition) (*Task, *dayNotice, error) {
	unlock := e.locks.Lock(taskID)
	defer unlock()

	// A version conflict means another process wrote the task; reload and
	// re-validate once so a duplicate mark is rejected, not double counted.
	for attempt := 0; ; attempt++ {
		task, err := e.Get(ctx, taskID)
		if err != nil {
			return nil, nil, err
		}

		day, err := currentDayFor(task, dayDate)
		if err != nil {
			return nil, nil, err
		}

		expected := task.Version
		day.Status = status
		if rule.Apply != nil {
			rule.Apply(task, day)
		}

		var (
			regenErr error
			notice   *dayNotice
		)
		switch {
		case rule.Regenerate:
			regenErr = e.regenerate(ctx, task, llm.PurposeSkip)
			if regenErr == nil {
				notice = &dayNotice{day: 1, reason: ReasonRegenerated}
			}
		case task.CurrentDay < len(task.Schedule):
			task.CurrentDay++
			notice = &dayNotice{day: task.CurrentDay, reason: ReasonAdvanced}
		}

		saveCtx, cancel := ctx, context.CancelFunc(func() {})
		if regenErr != nil {
			// The skip is kept even when generation ran out the deadline.
			saveCtx, cancel = context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
		}
		err = e.save(saveCtx, task, expected)
		cancel()
		if errors.Is(err, store.ErrConflict) && attempt == 0 {
			e.logger.WarnContext(ctx, "task changed during mark, reloading", "task", taskID)
			continue
		}
		if err != nil {
			return nil, nil, err
		}

		e.logger.InfoContext(ctx, "day marked",
			"task", task.ID,
			"day", day.Day,
			"status", string(status),
			"streak", task.Stats.CurrentStreak,
			"done", task.Done())

		if regenErr != nil {
			return task, nil, &ProgressionError{
				Kind:         KindRegenerationFailed,
				Day:          day.Day,
				SkipRecorded: true,
				Err:          regenErr,
			}
		}
		return task, notice, nil
	}
}

// Regenerate replaces a task's plan and restarts it at day 1. Counters are
// untouched. On failure the task is left unchanged.
func (e *Engine) Regenerate(ctx context.Context, taskID string) (*Task, error) {
	task, err := e.regenerateTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	e.notify(WithReason(ctx, ReasonRegenerated), task, 1)
	return task, nil
}

func (e *Engine) regenerateTask(ctx context.Context, taskID string) (*Task, error) {
	unlock := e.locks.Lock(taskID)
	defer unlock()

	for attempt := 0; ; attempt++ {
		task, err := e.Get(ctx, taskID)
		if err != nil {
			return nil, err
		}
		expected := task.Version

		if err := e.regenerate(ctx, task, llm.PurposeRegenerate); err != nil {
			return nil, &ProgressionError{Kind: KindRegenerationFailed, Err: err}
		}

		err = e.save(ctx, task, expected)
		if errors.Is(err, store.ErrConflict) && attempt == 0 {
			e.logger.WarnContext(ctx, "task changed during regeneration, retrying", "task", taskID)
			continue
		}
		if err != nil {
			return nil, err
		}
		return task, nil
	}
}

// regenerate asks for a fresh plan over the task's original inputs and, on
// success, swaps it in wholesale. The plan length is recomputed from the
// stored dates.
func (e *Engine) regenerate(ctx context.Context, task *Task, purpose string) error {
	res, err := e.generator.Generate(llm.WithPurpose(ctx, purpose), schedule.GenerateInput{
		Title:        task.Title,
		Description:  task.Description,
		Requirements: task.Requirements,
		StartDate:    task.StartDate,
		EndDate:      task.EndDate,
		UserContext:  task.UserContext,
	})
	if err != nil {
		e.logger.WarnContext(ctx, "plan regeneration failed",
			"task", task.ID,
			"purpose", purpose,
			"error", err)
		return err
	}

	task.Schedule = res.Days
	task.CurrentDay = 1
	task.ScheduleSource = scheduleSource(purpose, res)
	return nil
}

func (e *Engine) save(ctx context.Context, task *Task, expected int64) error {
	rec, err := toRecord(task)
	if err != nil {
		return err
	}
	if err := e.tasks.Update(ctx, rec, expected); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		if errors.Is(err, store.ErrConflict) {
			return err
		}
		return fmt.Errorf("save task %s: %w", task.ID, err)
	}
	task.Version, task.UpdatedAt = rec.Version, rec.UpdatedAt
	return nil
}

func (e *Engine) notify(ctx context.Context, task *Task, day int) {
	if err := e.notifier.NotifyDayReady(ctx, task.UserID, task, day); err != nil {
		e.logger.WarnContext(ctx, "day-ready notification failed",
			"task", task.ID,
			"day", day,
			"error", err)
	}
}

// currentDayFor resolves dayDate to the task's current, still-pending day.
func currentDayFor(task *Task, dayDate time.Time) (*schedule.DayPlan, error) {
	day := task.dayByDate(dayDate)
	if day == nil {
		return nil, &ProgressionError{Kind: KindNotFound, Err: fmt.Errorf("no day on %s", dayDate.Format(time.DateOnly))}
	}
	if day.Status != schedule.StatusPending {
		return nil, &ProgressionError{Kind: KindAlreadyMarked, Day: day.Day, Status: string(day.Status)}
	}
	if day.Day != task.CurrentDay {
		return nil, &ProgressionError{
			Kind: KindNotFound,
			Day:  day.Day,
			Err:  fmt.Errorf("current day is %d", task.CurrentDay),
		}
	}
	return day, nil
}

func scheduleSource(purpose string, res *schedule.Result) string {
	return purpose + ":" + res.Source
}

type nopNotifier struct{}

func (nopNotifier) NotifyDayReady(context.Context, string, *Task, int) error { return nil }
