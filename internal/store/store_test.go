package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/lifebuddy/lifebuddy/ent/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lifebuddy.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func newTaskRecord(userID string) *TaskRecord {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &TaskRecord{
		UserID:         userID,
		Title:          "Learn Go",
		Requirements:   "30 minutes a day",
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 2),
		Schedule:       json.RawMessage(`[{"day":1,"subtask":"Install Go","status":"pending"}]`),
		CurrentDay:     1,
		ScheduleSource: "initial",
		Stats:          json.RawMessage(`{"completed":0}`),
		UserContext:    json.RawMessage(`{"timezone":"UTC"}`),
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"tasks", "llm_request_events", "notifications", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifebuddy.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	rec := newTaskRecord("u1")
	require.NoError(t, s.TaskRepo().Create(ctx, rec))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.TaskRepo().Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", got.Title)
}

func TestTaskCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.TaskRepo()
	ctx := context.Background()

	rec := newTaskRecord("u1")
	require.NoError(t, repo.Create(ctx, rec))
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, int64(1), rec.Version)

	got, err := repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.UserID, got.UserID)
	assert.Equal(t, rec.Requirements, got.Requirements)
	assert.True(t, rec.StartDate.Equal(got.StartDate))
	assert.True(t, rec.EndDate.Equal(got.EndDate))
	assert.JSONEq(t, string(rec.Schedule), string(got.Schedule))
	assert.JSONEq(t, string(rec.Stats), string(got.Stats))
	assert.JSONEq(t, string(rec.UserContext), string(got.UserContext))
	assert.Equal(t, 1, got.CurrentDay)
	assert.False(t, got.Done)
	assert.Equal(t, int64(1), got.Version)
}

func TestTaskRepoWritesThroughEntClient(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := newTaskRecord("u1")
	require.NoError(t, s.TaskRepo().Create(ctx, rec))
	require.NoError(t, s.TaskRepo().Update(ctx, rec, 1))

	got, err := s.Client().Task.Query().
		Where(task.ID(rec.ID), task.Version(2)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.JSONEq(t, string(rec.Schedule), string(got.Schedule))
}

func TestTaskEmptyDocumentsStoredAsNull(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := newTaskRecord("u1")
	rec.UserContext = nil
	require.NoError(t, s.TaskRepo().Create(ctx, rec))

	got, err := s.TaskRepo().Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.JSONEq(t, "null", string(got.UserContext))
}

func TestTaskGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.TaskRepo().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskUpdateBumpsVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.TaskRepo()
	ctx := context.Background()

	rec := newTaskRecord("u1")
	require.NoError(t, repo.Create(ctx, rec))

	rec.CurrentDay = 2
	rec.Stats = json.RawMessage(`{"completed":1}`)
	require.NoError(t, repo.Update(ctx, rec, 1))
	assert.Equal(t, int64(2), rec.Version)

	got, err := repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentDay)
	assert.Equal(t, int64(2), got.Version)
	assert.JSONEq(t, `{"completed":1}`, string(got.Stats))
}

func TestTaskUpdateConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.TaskRepo()
	ctx := context.Background()

	rec := newTaskRecord("u1")
	require.NoError(t, repo.Create(ctx, rec))

	first := *rec
	second := *rec
	require.NoError(t, repo.Update(ctx, &first, 1))

	second.CurrentDay = 3
	err := repo.Update(ctx, &second, 1)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentDay, "losing writer must not be applied")
}

func TestTaskUpdateMissing(t *testing.T) {
	s := openTestStore(t)
	rec := newTaskRecord("u1")
	rec.ID = "ghost"
	err := s.TaskRepo().Update(context.Background(), rec, 1)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskConcurrentUpdatesOneWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.TaskRepo()
	ctx := context.Background()

	rec := newTaskRecord("u1")
	require.NoError(t, repo.Create(ctx, rec))

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			cp := *rec
			cp.CurrentDay = day
			err := repo.Update(ctx, &cp, 1)
			mu.Lock()
			defer mu.Unlock()
			switch err {
			case nil:
				wins++
			case ErrConflict:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i + 2)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, writers-1, conflicts)
}

func TestTaskListByUserAndActive(t *testing.T) {
	s := openTestStore(t)
	repo := s.TaskRepo()
	ctx := context.Background()

	a := newTaskRecord("u1")
	a.Title = "first"
	require.NoError(t, repo.Create(ctx, a))
	time.Sleep(5 * time.Millisecond)
	b := newTaskRecord("u1")
	b.Title = "second"
	require.NoError(t, repo.Create(ctx, b))
	other := newTaskRecord("u2")
	require.NoError(t, repo.Create(ctx, other))

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "second", mine[0].Title, "newest first")
	assert.Equal(t, "first", mine[1].Title)

	b.Done = true
	require.NoError(t, repo.Update(ctx, b, b.Version))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(active))
	for _, r := range active {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{a.ID, other.ID}, ids)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}
}

func TestLLMEventsAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Backend: "openrouter", Model: "deepseek/deepseek-r1:free", Purpose: "create", InputTokens: 100, OutputTokens: 900, LatencyMs: 1200, Success: true, RequestBody: "[user]\nplan", ResponseBody: "Day 1: ..."},
		{Backend: "openrouter", Model: "meta-llama/llama-3.3-70b-instruct:free", Purpose: "create", LatencyMs: 40, ErrorKind: "rate_limited", ErrorMessage: "429"},
		{Backend: "openrouter", Model: "deepseek/deepseek-r1:free", Purpose: "skip", InputTokens: 80, OutputTokens: 700, LatencyMs: 800, Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "skip", all[0].Purpose, "newest first")
	assert.Greater(t, all[0].Sequence, all[1].Sequence)
	assert.Equal(t, "rate_limited", all[1].ErrorKind)
	assert.False(t, all[1].Success)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	creates, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "create"})
	require.NoError(t, err)
	assert.Len(t, creates, 2)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: all[1].Sequence})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, all[0].ID, after[0].ID)

	one, err := repo.GetLLMEvent(ctx, all[2].ID)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, "Day 1: ...", one.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Model: "a", Purpose: "create", InputTokens: 10, OutputTokens: 100, LatencyMs: 100, Success: true},
		{Model: "a", Purpose: "create", InputTokens: 20, OutputTokens: 200, LatencyMs: 300, Success: true},
		{Model: "b", Purpose: "skip", InputTokens: 5, OutputTokens: 50, LatencyMs: 50, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMUsageStats{Purpose: "create", Calls: 2, InputTokens: 30, OutputTokens: 300, AvgLatencyMs: 200}, byPurpose[0])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, ModelUsage{Model: "a", Calls: 2, InputTokens: 30, OutputTokens: 300}, byModel[0])
	assert.Equal(t, ModelUsage{Model: "b", Calls: 1, InputTokens: 5, OutputTokens: 50}, byModel[1])
}

func TestNotificationsAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.NotificationRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendNotification(ctx, NotificationData{UserID: "u1", TaskID: "t1", Day: 1, Subtask: "Install Go", Channel: "email", Reason: "created"}))
	require.NoError(t, repo.AppendNotification(ctx, NotificationData{UserID: "u1", TaskID: "t1", Day: 2, Subtask: "Hello world", Channel: "email", Reason: "advanced"}))
	require.NoError(t, repo.AppendNotification(ctx, NotificationData{UserID: "u2", TaskID: "t2", Day: 1}))

	got, err := repo.ListNotifications(ctx, "u1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Day)
	assert.Equal(t, "advanced", got[0].Reason)
	assert.Equal(t, "Install Go", got[1].Subtask)

	limited, err := repo.ListNotifications(ctx, "u1", QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestLLMAndNotificationsShareSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Model: "m", Purpose: "create", Success: true}))
	require.NoError(t, s.NotificationRepo().AppendNotification(ctx, NotificationData{UserID: "u1", TaskID: "t1", Day: 1}))

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	notes, err := s.NotificationRepo().ListNotifications(ctx, "u1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Len(t, notes, 1)
	assert.Less(t, events[0].Sequence, notes[0].Sequence)
}
