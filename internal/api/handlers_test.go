package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifebuddy/lifebuddy/internal/llm"
	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/store"
)

const threeDayPlan = `Day 1:
Title: Install the toolchain
Day 2:
Title: Write a first program
Day 3:
Title: Read the standard library docs`

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestServer(t *testing.T, mock *llm.MockProvider) *Server {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	inv := llm.NewInvoker([]llm.Provider{mock},
		llm.WithDefaultModels(llm.ModelRef{Backend: "mock", Model: "demo"}),
		llm.WithInvokerLogger(discard))
	gen := schedule.New(inv, schedule.DefaultConfig(), discard)
	engine := progress.NewEngine(s.TaskRepo(), gen, progress.WithLogger(discard))

	return New(Options{Tasks: engine, Logger: discard})
}

func do(t *testing.T, srv http.Handler, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		buf.Write(raw)
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createBody() map[string]any {
	return map[string]any{
		"title":     "Learn X",
		"startDate": "2025-03-01",
		"endDate":   "2025-03-03",
		"consent":   true,
		"userContext": map[string]any{
			"timezone":               "Europe/Berlin",
			"notificationPreference": "email",
		},
	}
}

func createTask(t *testing.T, srv http.Handler) *progress.Task {
	t.Helper()
	rec := do(t, srv, http.MethodPost, "/api/v1/tasks", "u1", createBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[*progress.Task](t, rec)
}

func TestCreateTask(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(llm.MockResponse{Content: threeDayPlan}))

	task := createTask(t, srv)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "u1", task.UserID)
	assert.Equal(t, 1, task.CurrentDay)
	require.Len(t, task.Schedule, 3)
	assert.Equal(t, "Write a first program", task.Schedule[1].Subtask)
	for _, d := range task.Schedule {
		assert.Equal(t, schedule.StatusPending, d.Status)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider().WithFallback(llm.DemoPlan))

	tests := []struct {
		name   string
		mutate func(map[string]any)
		want   int
	}{
		{"missing title", func(b map[string]any) { delete(b, "title") }, http.StatusBadRequest},
		{"bad date", func(b map[string]any) { b["startDate"] = "03/01/2025" }, http.StatusBadRequest},
		{"no consent", func(b map[string]any) { b["consent"] = false }, http.StatusBadRequest},
		{"reversed range", func(b map[string]any) { b["endDate"] = "2025-02-01" }, http.StatusBadRequest},
		{"bad preference", func(b map[string]any) {
			b["userContext"] = map[string]any{"notificationPreference": "pigeon"}
		}, http.StatusBadRequest},
		{"bad model ref", func(b map[string]any) { b["models"] = []string{"openai:"} }, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := createBody()
			tt.mutate(body)
			rec := do(t, srv, http.MethodPost, "/api/v1/tasks", "u1", body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestCreateTaskMalformedBody(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBufferString("{"))
	req.Header.Set(UserIDHeader, "u1")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequiresUserHeader(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())
	rec := do(t, srv, http.MethodGet, "/api/v1/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTaskInvalidSchedule(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(
		llm.MockResponse{Content: "I cannot help with that."},
		llm.MockResponse{Content: "Still no plan."},
	))

	rec := do(t, srv, http.MethodPost, "/api/v1/tasks", "u1", createBody())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "invalid_schedule", resp.Error)
	assert.NotEmpty(t, resp.Message)
}

func TestCreateTaskModelsUnavailable(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	rec := do(t, srv, http.MethodPost, "/api/v1/tasks", "u1", createBody())
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "model_unavailable", decode[ErrorResponse](t, rec).Error)
}

func TestGetAndListTasks(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider().WithFallback(llm.DemoPlan))
	task := createTask(t, srv)

	rec := do(t, srv, http.MethodGet, "/api/v1/tasks/"+task.ID, "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, task.ID, decode[*progress.Task](t, rec).ID)

	rec = do(t, srv, http.MethodGet, "/api/v1/tasks/"+task.ID, "intruder", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "other users must not see the task")

	rec = do(t, srv, http.MethodGet, "/api/v1/tasks/missing", "u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/v1/tasks", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[ListTasksResponse](t, rec)
	assert.Len(t, list.Tasks, 1)

	rec = do(t, srv, http.MethodGet, "/api/v1/tasks", "u2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[ListTasksResponse](t, rec).Tasks)
}

func TestMarkDayTwice(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider().WithFallback(llm.DemoPlan))
	task := createTask(t, srv)
	path := "/api/v1/tasks/" + task.ID + "/days"

	rec := do(t, srv, http.MethodPost, path, "u1", MarkDayRequest{Date: "2025-03-01", Status: "completed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[MarkDayResponse](t, rec)
	assert.Nil(t, resp.Warning)
	assert.Equal(t, 1, resp.Task.Stats.Completed)
	assert.Equal(t, 2, resp.Task.CurrentDay)

	rec = do(t, srv, http.MethodPost, path, "u1", MarkDayRequest{Date: "2025-03-01", Status: "completed"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already_marked", decode[ErrorResponse](t, rec).Error)

	rec = do(t, srv, http.MethodGet, "/api/v1/tasks/"+task.ID, "u1", nil)
	assert.Equal(t, 1, decode[*progress.Task](t, rec).Stats.Completed)
}

func TestMarkDayErrors(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider().WithFallback(llm.DemoPlan))
	task := createTask(t, srv)
	path := "/api/v1/tasks/" + task.ID + "/days"

	rec := do(t, srv, http.MethodPost, path, "u1", MarkDayRequest{Date: "2025-03-03", Status: "completed"})
	assert.Equal(t, http.StatusNotFound, rec.Code, "not the current day")

	rec = do(t, srv, http.MethodPost, path, "u1", MarkDayRequest{Date: "2025-03-01", Status: "pending"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, path, "intruder", MarkDayRequest{Date: "2025-03-01", Status: "completed"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSkipWithoutNewPlanWarns(t *testing.T) {
	// One plan for creation, then nothing: regeneration exhausts the cascade.
	srv := newTestServer(t, llm.NewMockProvider(llm.MockResponse{Content: threeDayPlan}))
	task := createTask(t, srv)

	rec := do(t, srv, http.MethodPost, "/api/v1/tasks/"+task.ID+"/days", "u1",
		MarkDayRequest{Date: "2025-03-01", Status: "skipped"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[MarkDayResponse](t, rec)
	require.NotNil(t, resp.Warning)
	assert.Equal(t, "regeneration_failed", resp.Warning.Code)
	assert.Contains(t, resp.Warning.Message, "skip was recorded")
	assert.Equal(t, 1, resp.Task.Stats.Skipped)
	assert.Equal(t, 0, resp.Task.Stats.CurrentStreak)
	assert.Equal(t, schedule.StatusSkipped, resp.Task.Schedule[0].Status)
}

func TestSkipRegenerates(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider().WithFallback(llm.DemoPlan))
	task := createTask(t, srv)

	rec := do(t, srv, http.MethodPost, "/api/v1/tasks/"+task.ID+"/days", "u1",
		MarkDayRequest{Date: "2025-03-01", Status: "skipped"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[MarkDayResponse](t, rec)
	assert.Nil(t, resp.Warning)
	assert.Equal(t, 1, resp.Task.CurrentDay)
	assert.Len(t, resp.Task.Schedule, 3)
	assert.Equal(t, schedule.StatusPending, resp.Task.Schedule[0].Status)
	assert.Equal(t, "skip:initial", resp.Task.ScheduleSource)
}

func TestRegenerate(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider().WithFallback(llm.DemoPlan))
	task := createTask(t, srv)

	rec := do(t, srv, http.MethodPost, "/api/v1/tasks/"+task.ID+"/regenerate", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[*progress.Task](t, rec)
	assert.Equal(t, "regenerate:initial", got.ScheduleSource)
	assert.Equal(t, 1, got.CurrentDay)
}

func TestRegenerateFailure(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(llm.MockResponse{Content: threeDayPlan}))
	task := createTask(t, srv)

	rec := do(t, srv, http.MethodPost, "/api/v1/tasks/"+task.ID+"/regenerate", "u1", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "regeneration_failed", decode[ErrorResponse](t, rec).Error)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())
	rec := do(t, srv, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
