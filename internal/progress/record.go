package progress

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/store"
)

func toRecord(t *Task) (*store.TaskRecord, error) {
	days, err := sonic.Marshal(t.Schedule)
	if err != nil {
		return nil, fmt.Errorf("encode schedule: %w", err)
	}
	stats, err := sonic.Marshal(t.Stats)
	if err != nil {
		return nil, fmt.Errorf("encode stats: %w", err)
	}
	uc, err := sonic.Marshal(t.UserContext)
	if err != nil {
		return nil, fmt.Errorf("encode user context: %w", err)
	}
	return &store.TaskRecord{
		ID:             t.ID,
		UserID:         t.UserID,
		Title:          t.Title,
		Description:    t.Description,
		Requirements:   t.Requirements,
		StartDate:      t.StartDate,
		EndDate:        t.EndDate,
		Schedule:       days,
		CurrentDay:     t.CurrentDay,
		ScheduleSource: t.ScheduleSource,
		Stats:          stats,
		UserContext:    uc,
		Done:           t.Done(),
		Version:        t.Version,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}, nil
}

func fromRecord(rec *store.TaskRecord) (*Task, error) {
	t := &Task{
		ID:             rec.ID,
		UserID:         rec.UserID,
		Title:          rec.Title,
		Description:    rec.Description,
		Requirements:   rec.Requirements,
		StartDate:      rec.StartDate,
		EndDate:        rec.EndDate,
		CurrentDay:     rec.CurrentDay,
		ScheduleSource: rec.ScheduleSource,
		Version:        rec.Version,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
	if err := decodeDoc(rec.Schedule, &t.Schedule); err != nil {
		return nil, fmt.Errorf("decode schedule of task %s: %w", rec.ID, err)
	}
	if err := decodeDoc(rec.Stats, &t.Stats); err != nil {
		return nil, fmt.Errorf("decode stats of task %s: %w", rec.ID, err)
	}
	if err := decodeDoc(rec.UserContext, &t.UserContext); err != nil {
		return nil, fmt.Errorf("decode user context of task %s: %w", rec.ID, err)
	}
	if t.Schedule == nil {
		t.Schedule = []schedule.DayPlan{}
	}
	return t, nil
}

func decodeAll(recs []*store.TaskRecord) ([]*Task, error) {
	out := make([]*Task, 0, len(recs))
	for _, rec := range recs {
		t, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func decodeDoc(doc []byte, v any) error {
	if len(doc) == 0 || string(doc) == "null" {
		return nil
	}
	return sonic.Unmarshal(doc, v)
}
