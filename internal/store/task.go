package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifebuddy/lifebuddy/ent"
	"github.com/lifebuddy/lifebuddy/ent/task"
)

// taskRepo implements TaskRepo using the ent client.
type taskRepo struct {
	client *ent.Client
}

func (r *taskRepo) Create(ctx context.Context, rec *TaskRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.Version = 1

	_, err := r.client.Task.Create().
		SetID(rec.ID).
		SetUserID(rec.UserID).
		SetTitle(rec.Title).
		SetDescription(rec.Description).
		SetRequirements(rec.Requirements).
		SetStartDate(rec.StartDate.UTC()).
		SetEndDate(rec.EndDate.UTC()).
		SetSchedule(jsonOrNull(rec.Schedule)).
		SetCurrentDay(rec.CurrentDay).
		SetScheduleSource(rec.ScheduleSource).
		SetStats(jsonOrNull(rec.Stats)).
		SetUserContext(jsonOrNull(rec.UserContext)).
		SetDone(rec.Done).
		SetVersion(rec.Version).
		SetCreatedAt(rec.CreatedAt).
		SetUpdatedAt(rec.UpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

func (r *taskRepo) Get(ctx context.Context, id string) (*TaskRecord, error) {
	t, err := r.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("query task: %w", err)
	}
	return entTaskToRecord(t), nil
}

func (r *taskRepo) ListByUser(ctx context.Context, userID string) ([]*TaskRecord, error) {
	tasks, err := r.client.Task.Query().
		Where(task.UserID(userID)).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return entTasksToRecords(tasks), nil
}

func (r *taskRepo) ListActive(ctx context.Context) ([]*TaskRecord, error) {
	tasks, err := r.client.Task.Query().
		Where(task.Done(false)).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return entTasksToRecords(tasks), nil
}

// Update is a compare-and-swap on version: zero affected rows means the
// task is gone or another writer got there first.
func (r *taskRepo) Update(ctx context.Context, rec *TaskRecord, expectedVersion int64) error {
	now := time.Now().UTC()
	n, err := r.client.Task.Update().
		Where(task.ID(rec.ID), task.Version(expectedVersion)).
		SetTitle(rec.Title).
		SetDescription(rec.Description).
		SetRequirements(rec.Requirements).
		SetStartDate(rec.StartDate.UTC()).
		SetEndDate(rec.EndDate.UTC()).
		SetSchedule(jsonOrNull(rec.Schedule)).
		SetCurrentDay(rec.CurrentDay).
		SetScheduleSource(rec.ScheduleSource).
		SetStats(jsonOrNull(rec.Stats)).
		SetUserContext(jsonOrNull(rec.UserContext)).
		SetDone(rec.Done).
		SetVersion(expectedVersion + 1).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if n == 0 {
		exists, err := r.client.Task.Query().Where(task.ID(rec.ID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		if !exists {
			return ErrTaskNotFound
		}
		return ErrConflict
	}

	rec.Version = expectedVersion + 1
	rec.UpdatedAt = now
	return nil
}

func entTasksToRecords(tasks []*ent.Task) []*TaskRecord {
	out := make([]*TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, entTaskToRecord(t))
	}
	return out
}

// entTaskToRecord converts an ent Task to a store TaskRecord.
func entTaskToRecord(t *ent.Task) *TaskRecord {
	return &TaskRecord{
		ID:             t.ID,
		UserID:         t.UserID,
		Title:          t.Title,
		Description:    t.Description,
		Requirements:   t.Requirements,
		StartDate:      t.StartDate.UTC(),
		EndDate:        t.EndDate.UTC(),
		Schedule:       t.Schedule,
		CurrentDay:     t.CurrentDay,
		ScheduleSource: t.ScheduleSource,
		Stats:          t.Stats,
		UserContext:    t.UserContext,
		Done:           t.Done,
		Version:        t.Version,
		CreatedAt:      t.CreatedAt.UTC(),
		UpdatedAt:      t.UpdatedAt.UTC(),
	}
}

// jsonOrNull stores an empty document as JSON null so the column is never
// an empty string.
func jsonOrNull(doc json.RawMessage) json.RawMessage {
	if len(doc) == 0 {
		return json.RawMessage("null")
	}
	return doc
}
