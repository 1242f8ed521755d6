package progress

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/lifebuddy/lifebuddy/internal/llm"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/store"
)

var testStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

// fakeGenerator builds a plan with one day per calendar day of the range.
type fakeGenerator struct {
	mu       sync.Mutex
	calls    []schedule.GenerateInput
	purposes []string
	// failFrom makes every call numbered >= failFrom (1-based) fail. Zero never fails.
	failFrom int
	// blockFrom makes calls numbered >= blockFrom wait for ctx to end.
	blockFrom int
	label     string
}

func (g *fakeGenerator) Generate(ctx context.Context, in schedule.GenerateInput) (*schedule.Result, error) {
	g.mu.Lock()
	g.calls = append(g.calls, in)
	g.purposes = append(g.purposes, llm.PurposeFrom(ctx))
	call := len(g.calls)
	g.mu.Unlock()

	if g.blockFrom > 0 && call >= g.blockFrom {
		<-ctx.Done()
		return nil, &schedule.GenerationError{Kind: schedule.ModelUnavailable, Attempts: 1, Err: ctx.Err()}
	}
	if g.failFrom > 0 && call >= g.failFrom {
		return nil, &schedule.GenerationError{Kind: schedule.ModelUnavailable, Attempts: 1, Err: errors.New("all models down")}
	}

	n, err := schedule.DayCount(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	days := make([]schedule.DayPlan, n)
	for i := range days {
		days[i] = schedule.DayPlan{
			Day:       i + 1,
			Date:      schedule.DateForDay(in.StartDate, i+1),
			Subtask:   fmt.Sprintf("%s step %d (gen %d)", in.Title, i+1, call),
			KeyPoints: []string{},
			Resources: []string{},
			Status:    schedule.StatusPending,
		}
	}
	days[0].PrerequisiteMet = true
	return &schedule.Result{Days: days, DayCount: n, Source: schedule.SourceInitial, Model: "mock:demo", Attempts: 1}, nil
}

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

type notice struct {
	userID, taskID string
	day            int
	reason         string
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
	err     error
}

func (n *recordingNotifier) NotifyDayReady(ctx context.Context, userID string, task *Task, day int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{userID: userID, taskID: task.ID, day: day, reason: ReasonFrom(ctx)})
	return n.err
}

func (n *recordingNotifier) last() notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.notices[len(n.notices)-1]
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.notices)
}

type harness struct {
	engine   *Engine
	store    *store.Store
	gen      *fakeGenerator
	notifier *recordingNotifier
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	h := &harness{store: s, gen: &fakeGenerator{}, notifier: &recordingNotifier{}}
	opts = append([]Option{WithNotifier(h.notifier)}, opts...)
	h.engine = NewEngine(s.TaskRepo(), h.gen, opts...)
	return h
}

func (h *harness) create(t *testing.T, days int) *Task {
	t.Helper()
	task, err := h.engine.CreateTask(context.Background(), CreateInput{
		UserID:       "u1",
		Title:        "Learn X",
		Requirements: "evenings only",
		StartDate:    testStart,
		EndDate:      testStart.AddDate(0, 0, days-1),
		UserContext:  schedule.UserContext{Timezone: "Europe/Berlin"},
		Consent:      true,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func dayDate(n int) time.Time {
	return schedule.DateForDay(testStart, n)
}

func TestCreateTask(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)

	if task.ID == "" {
		t.Fatal("expected an id")
	}
	if len(task.Schedule) != 3 {
		t.Fatalf("schedule length = %d, want 3", len(task.Schedule))
	}
	for _, d := range task.Schedule {
		if d.Status != schedule.StatusPending {
			t.Errorf("day %d status = %s, want pending", d.Day, d.Status)
		}
	}
	if task.CurrentDay != 1 {
		t.Errorf("currentDay = %d, want 1", task.CurrentDay)
	}
	if task.ScheduleSource != "create:initial" {
		t.Errorf("scheduleSource = %q", task.ScheduleSource)
	}
	if task.Version != 1 {
		t.Errorf("version = %d, want 1", task.Version)
	}
	if h.gen.purposes[0] != llm.PurposeCreate {
		t.Errorf("purpose = %q, want %q", h.gen.purposes[0], llm.PurposeCreate)
	}
	if got := h.notifier.last(); got.day != 1 || got.reason != ReasonCreated || got.userID != "u1" {
		t.Errorf("notice = %+v, want day 1 created for u1", got)
	}

	stored, err := h.engine.Get(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Title != "Learn X" || len(stored.Schedule) != 3 || !stored.Schedule[0].PrerequisiteMet {
		t.Errorf("stored task = %+v", stored)
	}
	if stored.UserContext.Timezone != "Europe/Berlin" {
		t.Errorf("user context not persisted: %+v", stored.UserContext)
	}
	if !stored.Schedule[1].Date.Equal(dayDate(2)) {
		t.Errorf("day 2 date = %v, want %v", stored.Schedule[1].Date, dayDate(2))
	}
}

func TestCreateTaskNormalizesDates(t *testing.T) {
	h := newHarness(t)
	loc := time.FixedZone("UTC-5", -5*3600)
	task, err := h.engine.CreateTask(context.Background(), CreateInput{
		UserID:    "u1",
		Title:     "Run",
		StartDate: time.Date(2025, 3, 1, 22, 30, 0, 0, loc),
		EndDate:   time.Date(2025, 3, 2, 6, 0, 0, 0, loc),
		Consent:   true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !task.StartDate.Equal(testStart) {
		t.Errorf("start = %v, want %v", task.StartDate, testStart)
	}
	if len(task.Schedule) != 2 {
		t.Errorf("schedule length = %d, want 2", len(task.Schedule))
	}
}

func TestCreateTaskRequiresConsent(t *testing.T) {
	h := newHarness(t)
	_, err := h.engine.CreateTask(context.Background(), CreateInput{
		UserID: "u1", Title: "Learn X", StartDate: testStart, EndDate: testStart,
	})
	if !errors.Is(err, ErrConsentRequired) {
		t.Fatalf("err = %v, want ErrConsentRequired", err)
	}
	if h.gen.callCount() != 0 {
		t.Error("generator must not run without consent")
	}
}

func TestCreateTaskRejectsBadInput(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.engine.CreateTask(ctx, CreateInput{UserID: "u1", Title: "  ", StartDate: testStart, EndDate: testStart, Consent: true})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank title: err = %v, want ErrInvalidInput", err)
	}

	_, err = h.engine.CreateTask(ctx, CreateInput{UserID: "u1", Title: "x", StartDate: testStart, EndDate: testStart.AddDate(0, 0, -1), Consent: true})
	if !errors.Is(err, schedule.ErrInvalidRange) {
		t.Errorf("reversed range: err = %v, want ErrInvalidRange", err)
	}
}

func TestCreateTaskGenerationFailureStoresNothing(t *testing.T) {
	h := newHarness(t)
	h.gen.failFrom = 1

	_, err := h.engine.CreateTask(context.Background(), CreateInput{
		UserID: "u1", Title: "Learn X", StartDate: testStart, EndDate: testStart.AddDate(0, 0, 2), Consent: true,
	})
	if !errors.Is(err, schedule.ErrModelUnavailable) {
		t.Fatalf("err = %v, want ErrModelUnavailable", err)
	}
	tasks, err := h.engine.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("stored %d tasks, want 0", len(tasks))
	}
	if h.notifier.count() != 0 {
		t.Error("no notification expected")
	}
}

func TestMarkCompletedAdvances(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)

	got, err := h.engine.MarkDay(context.Background(), task.ID, dayDate(1), schedule.StatusCompleted)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	want := Stats{Completed: 1, CurrentStreak: 1, BestStreak: 1}
	if got.Stats != want {
		t.Errorf("stats = %+v, want %+v", got.Stats, want)
	}
	if got.CurrentDay != 2 {
		t.Errorf("currentDay = %d, want 2", got.CurrentDay)
	}
	if got.Schedule[0].Status != schedule.StatusCompleted {
		t.Errorf("day 1 status = %s", got.Schedule[0].Status)
	}
	if n := h.notifier.last(); n.day != 2 || n.reason != ReasonAdvanced {
		t.Errorf("notice = %+v, want day 2 advanced", n)
	}
	if got.Version != 2 {
		t.Errorf("version = %d, want 2", got.Version)
	}
}

func TestMarkCompletedTwiceRejected(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)
	ctx := context.Background()

	first, err := h.engine.MarkDay(ctx, task.ID, dayDate(1), schedule.StatusCompleted)
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}

	_, err = h.engine.MarkDay(ctx, task.ID, dayDate(1), schedule.StatusCompleted)
	if !errors.Is(err, ErrAlreadyMarked) {
		t.Fatalf("second mark: err = %v, want ErrAlreadyMarked", err)
	}
	var pe *ProgressionError
	if !errors.As(err, &pe) || pe.Status != "completed" {
		t.Errorf("error = %#v, want status completed", err)
	}

	after, err := h.engine.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if after.Stats.Completed != 1 {
		t.Errorf("completed = %d, want 1", after.Stats.Completed)
	}
	if after.Version != first.Version {
		t.Errorf("version changed from %d to %d", first.Version, after.Version)
	}
}

func TestMarkSkippedTwiceRejected(t *testing.T) {
	h := newHarness(t)
	h.gen.failFrom = 2 // keep the skipped day in place
	task := h.create(t, 3)
	ctx := context.Background()

	if _, err := h.engine.MarkDay(ctx, task.ID, dayDate(1), schedule.StatusSkipped); !errors.Is(err, ErrRegenerationFailed) {
		t.Fatalf("first skip: err = %v", err)
	}
	_, err := h.engine.MarkDay(ctx, task.ID, dayDate(1), schedule.StatusSkipped)
	if !errors.Is(err, ErrAlreadyMarked) {
		t.Fatalf("second skip: err = %v, want ErrAlreadyMarked", err)
	}
	after, _ := h.engine.Get(ctx, task.ID)
	if after.Stats.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", after.Stats.Skipped)
	}
}

func TestStreakLaw(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 5)
	ctx := context.Background()

	var err error
	for n := 1; n <= 5; n++ {
		task, err = h.engine.MarkDay(ctx, task.ID, dayDate(n), schedule.StatusCompleted)
		if err != nil {
			t.Fatalf("mark day %d: %v", n, err)
		}
		if task.Stats.CurrentStreak != n || task.Stats.BestStreak < n {
			t.Fatalf("after %d completions stats = %+v", n, task.Stats)
		}
	}

	if !task.Done() {
		t.Error("task should be done after the last day")
	}
	if task.CurrentDay != 5 {
		t.Errorf("currentDay = %d, want 5", task.CurrentDay)
	}
	// created + four advances; finishing the last day notifies nothing.
	if h.notifier.count() != 5 {
		t.Errorf("notifications = %d, want 5", h.notifier.count())
	}

	_, err = h.engine.MarkDay(ctx, task.ID, dayDate(5), schedule.StatusCompleted)
	if !errors.Is(err, ErrAlreadyMarked) {
		t.Errorf("re-mark last day: err = %v, want ErrAlreadyMarked", err)
	}

	recs, err := h.store.TaskRepo().ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("finished task still active")
	}
}

func TestSkipLaw(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 4)
	ctx := context.Background()

	for n := 1; n <= 2; n++ {
		if _, err := h.engine.MarkDay(ctx, task.ID, dayDate(n), schedule.StatusCompleted); err != nil {
			t.Fatalf("mark day %d: %v", n, err)
		}
	}

	got, err := h.engine.MarkDay(ctx, task.ID, dayDate(3), schedule.StatusSkipped)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}

	want := Stats{Completed: 2, Skipped: 1, CurrentStreak: 0, BestStreak: 2}
	if got.Stats != want {
		t.Errorf("stats = %+v, want %+v", got.Stats, want)
	}
	if got.CurrentDay != 1 {
		t.Errorf("currentDay = %d, want 1", got.CurrentDay)
	}
	if len(got.Schedule) != 4 {
		t.Errorf("schedule length = %d, want 4", len(got.Schedule))
	}
	for _, d := range got.Schedule {
		if d.Status != schedule.StatusPending {
			t.Errorf("regenerated day %d status = %s", d.Day, d.Status)
		}
	}
	if got.ScheduleSource != "skip:initial" {
		t.Errorf("scheduleSource = %q", got.ScheduleSource)
	}

	regen := h.gen.calls[1]
	if h.gen.purposes[1] != llm.PurposeSkip {
		t.Errorf("purpose = %q, want skip", h.gen.purposes[1])
	}
	if regen.Title != "Learn X" || regen.Requirements != "evenings only" ||
		!regen.StartDate.Equal(task.StartDate) || !regen.EndDate.Equal(task.EndDate) ||
		regen.UserContext.Timezone != "Europe/Berlin" {
		t.Errorf("regeneration input = %+v", regen)
	}
	if n := h.notifier.last(); n.day != 1 || n.reason != ReasonRegenerated {
		t.Errorf("notice = %+v, want day 1 regenerated", n)
	}
}

func TestSkipResetsAnyStreak(t *testing.T) {
	for _, before := range []int{0, 1, 3} {
		t.Run(fmt.Sprintf("streak_%d", before), func(t *testing.T) {
			h := newHarness(t)
			task := h.create(t, 5)
			ctx := context.Background()
			for n := 1; n <= before; n++ {
				if _, err := h.engine.MarkDay(ctx, task.ID, dayDate(n), schedule.StatusCompleted); err != nil {
					t.Fatalf("mark: %v", err)
				}
			}
			got, err := h.engine.MarkDay(ctx, task.ID, dayDate(before+1), schedule.StatusSkipped)
			if err != nil {
				t.Fatalf("skip: %v", err)
			}
			if got.Stats.CurrentStreak != 0 || got.Stats.Skipped != 1 {
				t.Errorf("stats = %+v", got.Stats)
			}
			if got.Stats.BestStreak != before {
				t.Errorf("bestStreak = %d, want %d", got.Stats.BestStreak, before)
			}
		})
	}
}

func TestSkipRegenerationFailureKeepsSkip(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)
	ctx := context.Background()

	if _, err := h.engine.MarkDay(ctx, task.ID, dayDate(1), schedule.StatusCompleted); err != nil {
		t.Fatalf("mark: %v", err)
	}
	h.gen.failFrom = 2
	notices := h.notifier.count()

	got, err := h.engine.MarkDay(ctx, task.ID, dayDate(2), schedule.StatusSkipped)
	if !errors.Is(err, ErrRegenerationFailed) {
		t.Fatalf("err = %v, want ErrRegenerationFailed", err)
	}
	if !errors.Is(err, schedule.ErrModelUnavailable) {
		t.Errorf("err should wrap the generation failure: %v", err)
	}
	var pe *ProgressionError
	if !errors.As(err, &pe) || !pe.SkipRecorded {
		t.Fatalf("error = %#v, want SkipRecorded", err)
	}
	if pe.UserMessage() == (&ProgressionError{Kind: KindRegenerationFailed}).UserMessage() {
		t.Error("skip failure message must differ from a plain regeneration failure")
	}
	if got == nil {
		t.Fatal("expected the updated task alongside the error")
	}

	stored, err := h.engine.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := Stats{Completed: 1, Skipped: 1, CurrentStreak: 0, BestStreak: 1}
	if stored.Stats != want {
		t.Errorf("stats = %+v, want %+v", stored.Stats, want)
	}
	if stored.Schedule[1].Status != schedule.StatusSkipped {
		t.Errorf("day 2 status = %s, want skipped", stored.Schedule[1].Status)
	}
	if stored.Schedule[2].Subtask != task.Schedule[2].Subtask || stored.Schedule[2].Status != schedule.StatusPending {
		t.Errorf("rest of the plan changed: %+v", stored.Schedule[2])
	}
	if stored.CurrentDay != 2 {
		t.Errorf("currentDay = %d, want 2", stored.CurrentDay)
	}
	if h.notifier.count() != notices {
		t.Error("no notification expected when regeneration fails")
	}
}

func TestSkipKeptWhenRegenerationOutlivesDeadline(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)
	h.gen.blockFrom = 2

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	got, err := h.engine.MarkDay(ctx, task.ID, dayDate(1), schedule.StatusSkipped)
	var pe *ProgressionError
	if !errors.As(err, &pe) || !pe.SkipRecorded {
		t.Fatalf("err = %v, want a recorded skip", err)
	}
	if got == nil {
		t.Fatal("expected the updated task alongside the error")
	}

	stored, err := h.engine.Get(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Schedule[0].Status != schedule.StatusSkipped {
		t.Errorf("day 1 status = %s, want skipped", stored.Schedule[0].Status)
	}
	if stored.Stats.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", stored.Stats.Skipped)
	}
}

func TestMarkDayNotCurrent(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)
	ctx := context.Background()

	for _, d := range []time.Time{dayDate(3), dayDate(10), testStart.AddDate(0, 0, -1)} {
		_, err := h.engine.MarkDay(ctx, task.ID, d, schedule.StatusCompleted)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("date %s: err = %v, want ErrNotFound", d.Format(time.DateOnly), err)
		}
	}

	after, _ := h.engine.Get(ctx, task.ID)
	if after.Stats != (Stats{}) || after.Version != 1 {
		t.Errorf("rejected marks changed the task: %+v", after)
	}
}

func TestMarkDayMatchesCalendarDateInAnyZone(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)

	ny := time.FixedZone("EST", -5*3600)
	// 02:00 UTC on March 2, but March 1 on the caller's calendar.
	local := time.Date(2025, 3, 1, 21, 0, 0, 0, ny)
	if _, err := h.engine.MarkDay(context.Background(), task.ID, local, schedule.StatusCompleted); err != nil {
		t.Fatalf("mark with local date: %v", err)
	}
}

func TestMarkDayInvalidStatus(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 2)

	for _, s := range []schedule.Status{schedule.StatusPending, "paused"} {
		_, err := h.engine.MarkDay(context.Background(), task.ID, dayDate(1), s)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("status %q: err = %v, want ErrInvalidStatus", s, err)
		}
	}
}

func TestMarkDayMissingTask(t *testing.T) {
	h := newHarness(t)
	_, err := h.engine.MarkDay(context.Background(), "missing", dayDate(1), schedule.StatusCompleted)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestRegenerateResetsDayKeepsStats(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)
	ctx := context.Background()

	for n := 1; n <= 2; n++ {
		if _, err := h.engine.MarkDay(ctx, task.ID, dayDate(n), schedule.StatusCompleted); err != nil {
			t.Fatalf("mark: %v", err)
		}
	}

	got, err := h.engine.Regenerate(ctx, task.ID)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if got.CurrentDay != 1 {
		t.Errorf("currentDay = %d, want 1", got.CurrentDay)
	}
	want := Stats{Completed: 2, CurrentStreak: 2, BestStreak: 2}
	if got.Stats != want {
		t.Errorf("stats = %+v, want %+v", got.Stats, want)
	}
	if got.ScheduleSource != "regenerate:initial" {
		t.Errorf("scheduleSource = %q", got.ScheduleSource)
	}
	if h.gen.purposes[len(h.gen.purposes)-1] != llm.PurposeRegenerate {
		t.Errorf("purpose = %q", h.gen.purposes[len(h.gen.purposes)-1])
	}
	if n := h.notifier.last(); n.day != 1 || n.reason != ReasonRegenerated {
		t.Errorf("notice = %+v", n)
	}
}

func TestRegenerateRecomputesLength(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// A stored plan whose schedule is shorter than its date range.
	short := &Task{
		UserID:     "u1",
		Title:      "Learn X",
		StartDate:  testStart,
		EndDate:    testStart.AddDate(0, 0, 3),
		CurrentDay: 2,
		Schedule: []schedule.DayPlan{
			{Day: 1, Date: dayDate(1), Subtask: "a", Status: schedule.StatusCompleted},
			{Day: 2, Date: dayDate(2), Subtask: "b", Status: schedule.StatusPending},
		},
	}
	rec, err := toRecord(short)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := h.store.TaskRepo().Create(ctx, rec); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := h.engine.Regenerate(ctx, rec.ID)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if len(got.Schedule) != 4 {
		t.Errorf("schedule length = %d, want 4 from the date range", len(got.Schedule))
	}
	if got.CurrentDay != 1 {
		t.Errorf("currentDay = %d, want 1", got.CurrentDay)
	}
}

func TestRegenerateFailureLeavesTask(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)
	ctx := context.Background()
	if _, err := h.engine.MarkDay(ctx, task.ID, dayDate(1), schedule.StatusCompleted); err != nil {
		t.Fatalf("mark: %v", err)
	}
	before, _ := h.engine.Get(ctx, task.ID)
	h.gen.failFrom = 1

	got, err := h.engine.Regenerate(ctx, task.ID)
	if !errors.Is(err, ErrRegenerationFailed) {
		t.Fatalf("err = %v, want ErrRegenerationFailed", err)
	}
	if got != nil {
		t.Error("expected no task on failure")
	}
	var pe *ProgressionError
	if errors.As(err, &pe) && pe.SkipRecorded {
		t.Error("explicit regeneration records no skip")
	}

	after, _ := h.engine.Get(ctx, task.ID)
	if after.Version != before.Version || after.CurrentDay != 2 || after.Stats != before.Stats {
		t.Errorf("task changed: before %+v after %+v", before, after)
	}
}

func TestConcurrentMarksCountOnce(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)
	ctx := context.Background()

	const clients = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		rejected int
	)
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.engine.MarkDay(ctx, task.ID, dayDate(1), schedule.StatusCompleted)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrAlreadyMarked):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != 1 || rejected != clients-1 {
		t.Errorf("ok = %d, rejected = %d", ok, rejected)
	}
	after, _ := h.engine.Get(ctx, task.ID)
	if after.Stats.Completed != 1 || after.Stats.CurrentStreak != 1 {
		t.Errorf("stats = %+v, want a single completion", after.Stats)
	}
	if h.engine.locks.size() != 0 {
		t.Errorf("lock table holds %d entries after all marks", h.engine.locks.size())
	}
}

// racingRepo lets another writer complete day 1 right before the engine's
// first update, as a second process would.
type racingRepo struct {
	store.TaskRepo
	once sync.Once
}

func (r *racingRepo) Update(ctx context.Context, rec *store.TaskRecord, expected int64) error {
	var raceErr error
	r.once.Do(func() {
		other, err := r.TaskRepo.Get(ctx, rec.ID)
		if err != nil {
			raceErr = err
			return
		}
		t, err := fromRecord(other)
		if err != nil {
			raceErr = err
			return
		}
		t.Schedule[0].Status = schedule.StatusCompleted
		recordCompletion(t, &t.Schedule[0])
		t.CurrentDay = 2
		winner, err := toRecord(t)
		if err != nil {
			raceErr = err
			return
		}
		raceErr = r.TaskRepo.Update(ctx, winner, other.Version)
	})
	if raceErr != nil {
		return raceErr
	}
	return r.TaskRepo.Update(ctx, rec, expected)
}

func TestVersionConflictReloadsAndRejectsDuplicate(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)
	ctx := context.Background()

	engine := NewEngine(&racingRepo{TaskRepo: h.store.TaskRepo()}, h.gen)
	_, err := engine.MarkDay(ctx, task.ID, dayDate(1), schedule.StatusCompleted)
	if !errors.Is(err, ErrAlreadyMarked) {
		t.Fatalf("err = %v, want ErrAlreadyMarked after reload", err)
	}

	after, _ := h.engine.Get(ctx, task.ID)
	if after.Stats.Completed != 1 {
		t.Errorf("completed = %d, want 1", after.Stats.Completed)
	}
}

func TestNotifierFailureDoesNotFailTransition(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)
	h.notifier.err = errors.New("smtp down")

	got, err := h.engine.MarkDay(context.Background(), task.ID, dayDate(1), schedule.StatusCompleted)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if got.CurrentDay != 2 {
		t.Errorf("currentDay = %d, want 2", got.CurrentDay)
	}
}

// lockCountingNotifier records how many task locks are live while it runs.
type lockCountingNotifier struct {
	engine *Engine
	held   []int
}

func (n *lockCountingNotifier) NotifyDayReady(ctx context.Context, userID string, task *Task, day int) error {
	n.held = append(n.held, n.engine.locks.size())
	return nil
}

func TestNotifyRunsAfterTaskLockReleased(t *testing.T) {
	h := newHarness(t)
	task := h.create(t, 3)
	ln := &lockCountingNotifier{engine: h.engine}
	h.engine.notifier = ln
	ctx := context.Background()

	if _, err := h.engine.MarkDay(ctx, task.ID, dayDate(1), schedule.StatusCompleted); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if _, err := h.engine.Regenerate(ctx, task.ID); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if len(ln.held) != 2 {
		t.Fatalf("notifications = %d, want 2", len(ln.held))
	}
	for i, n := range ln.held {
		if n != 0 {
			t.Errorf("notification %d sent with %d task locks held", i, n)
		}
	}
}

func TestWithTransitionsSwapsSkipPolicy(t *testing.T) {
	rules := DefaultTransitions()
	rules[schedule.StatusSkipped] = Transition{Apply: recordSkip}
	h := newHarness(t, WithTransitions(rules))
	task := h.create(t, 3)

	got, err := h.engine.MarkDay(context.Background(), task.ID, dayDate(1), schedule.StatusSkipped)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if got.CurrentDay != 2 {
		t.Errorf("currentDay = %d, want 2", got.CurrentDay)
	}
	if h.gen.callCount() != 1 {
		t.Errorf("generator calls = %d, want 1", h.gen.callCount())
	}
	if got.Stats.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", got.Stats.Skipped)
	}
}

func TestListByUser(t *testing.T) {
	h := newHarness(t)
	h.create(t, 2)
	h.create(t, 3)

	tasks, err := h.engine.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(tasks))
	}
	other, _ := h.engine.ListByUser(context.Background(), "u2")
	if len(other) != 0 {
		t.Errorf("u2 sees %d tasks", len(other))
	}
}

func TestCreateTaskWithMockModel(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "mock.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	mock := llm.NewMockProvider(llm.MockResponse{Content: `Day 1: Title: Install the toolchain
Day 2: Title: Write a first program
Day 3: Title: Read the standard library docs`})
	inv := llm.NewInvoker([]llm.Provider{mock}, llm.WithDefaultModels(llm.ModelRef{Backend: "mock", Model: "demo"}))
	engine := NewEngine(s.TaskRepo(), schedule.New(inv, schedule.DefaultConfig(), nil))

	task, err := engine.CreateTask(context.Background(), CreateInput{
		UserID:    "u1",
		Title:     "Learn X",
		StartDate: testStart,
		EndDate:   testStart.AddDate(0, 0, 2),
		Consent:   true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(task.Schedule) != 3 || task.CurrentDay != 1 {
		t.Fatalf("task = %+v", task)
	}
	if task.Schedule[1].Subtask != "Write a first program" {
		t.Errorf("day 2 subtask = %q", task.Schedule[1].Subtask)
	}
	for _, d := range task.Schedule {
		if d.Status != schedule.StatusPending {
			t.Errorf("day %d status = %s", d.Day, d.Status)
		}
	}
}
