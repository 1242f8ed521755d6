package plan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
)

type markCall struct {
	date   time.Time
	status schedule.Status
}

// fakeService implements Service for testing.
type fakeService struct {
	task     *progress.Task
	getErr   error
	markTask *progress.Task
	markErr  error
	regenErr error

	marks  []markCall
	regens int
}

func (f *fakeService) Get(_ context.Context, _ string) (*progress.Task, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.task, nil
}

func (f *fakeService) MarkDay(_ context.Context, _ string, date time.Time, status schedule.Status) (*progress.Task, error) {
	f.marks = append(f.marks, markCall{date: date, status: status})
	return f.markTask, f.markErr
}

func (f *fakeService) Regenerate(_ context.Context, _ string) (*progress.Task, error) {
	f.regens++
	if f.regenErr != nil {
		return nil, f.regenErr
	}
	return f.markTask, nil
}

func sampleTask(days int) *progress.Task {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	t := &progress.Task{
		ID:         "task-1",
		UserID:     "u1",
		Title:      "Learn Go",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, days-1),
		CurrentDay: 1,
	}
	for i := 0; i < days; i++ {
		t.Schedule = append(t.Schedule, schedule.DayPlan{
			Day:       i + 1,
			Date:      start.AddDate(0, 0, i),
			Subtask:   "Study part " + string(rune('A'+i)),
			KeyPoints: []string{"read", "practice"},
			Status:    schedule.StatusPending,
		})
	}
	return t
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// run executes cmd synchronously and feeds its message back.
func run(t *testing.T, s *PlanScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	s.Update(cmd())
}

func TestInitLoadsTask(t *testing.T) {
	svc := &fakeService{task: sampleTask(3)}
	s := New(svc, "task-1", time.Second)

	cmd := s.Init()
	if s.busy == "" {
		t.Error("expected loading state")
	}
	run(t, s, cmd)

	if s.task == nil || s.task.ID != "task-1" {
		t.Fatalf("task not loaded: %+v", s.task)
	}
	if s.Title() != "Learn Go" {
		t.Errorf("title = %q", s.Title())
	}
}

func TestInitWithTaskSkipsLoad(t *testing.T) {
	s := NewWithTask(&fakeService{}, sampleTask(3), time.Second)
	if cmd := s.Init(); cmd != nil {
		t.Error("expected no load command")
	}
}

func TestLoadFailureShown(t *testing.T) {
	svc := &fakeService{getErr: progress.ErrTaskNotFound}
	s := New(svc, "gone", time.Second)
	run(t, s, s.Init())

	if !strings.Contains(s.View(80, 20), "no longer exists") {
		t.Errorf("expected not-found message, got:\n%s", s.View(80, 20))
	}
}

func TestCompleteMarksCurrentDay(t *testing.T) {
	task := sampleTask(3)
	after := sampleTask(3)
	after.Schedule[0].Status = schedule.StatusCompleted
	after.CurrentDay = 2
	after.Stats = progress.Stats{Completed: 1, CurrentStreak: 1, BestStreak: 1}

	svc := &fakeService{markTask: after}
	s := NewWithTask(svc, task, time.Second)

	_, cmd := s.Update(keyPress('c'))
	run(t, s, cmd)

	if len(svc.marks) != 1 {
		t.Fatalf("expected 1 mark, got %d", len(svc.marks))
	}
	if !svc.marks[0].date.Equal(task.Schedule[0].Date) || svc.marks[0].status != schedule.StatusCompleted {
		t.Errorf("unexpected mark: %+v", svc.marks[0])
	}
	if s.task.CurrentDay != 2 {
		t.Errorf("current day = %d, want 2", s.task.CurrentDay)
	}
	if cur, best := s.Streak(); cur != 1 || best != 1 {
		t.Errorf("streak = %d/%d", cur, best)
	}
	if !strings.Contains(s.notice, "Streak: 1") {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestSkipSendsSkipped(t *testing.T) {
	svc := &fakeService{markTask: sampleTask(3)}
	s := NewWithTask(svc, sampleTask(3), time.Second)

	_, cmd := s.Update(keyPress('s'))
	run(t, s, cmd)

	if len(svc.marks) != 1 || svc.marks[0].status != schedule.StatusSkipped {
		t.Fatalf("unexpected marks: %+v", svc.marks)
	}
	if !strings.Contains(s.notice, "rebuilt from day 1") {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestSkipWithFailedRegenerationKeepsRecordedSkip(t *testing.T) {
	after := sampleTask(3)
	after.Schedule[0].Status = schedule.StatusSkipped
	after.Stats.Skipped = 1

	svc := &fakeService{
		markTask: after,
		markErr: &progress.ProgressionError{
			Kind:         progress.KindRegenerationFailed,
			Day:          1,
			SkipRecorded: true,
			Err:          errors.New("all models down"),
		},
	}
	s := NewWithTask(svc, sampleTask(3), time.Second)

	_, cmd := s.Update(keyPress('s'))
	run(t, s, cmd)

	if s.task.Stats.Skipped != 1 {
		t.Error("expected the recorded skip to be shown")
	}
	if s.failure != "" {
		t.Errorf("expected a warning, not a failure: %q", s.failure)
	}
	if !strings.Contains(s.notice, "skip was recorded") {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestAlreadyMarkedShowsFailure(t *testing.T) {
	svc := &fakeService{markErr: &progress.ProgressionError{
		Kind:   progress.KindAlreadyMarked,
		Day:    1,
		Status: "completed",
	}}
	s := NewWithTask(svc, sampleTask(3), time.Second)

	_, cmd := s.Update(keyPress('c'))
	run(t, s, cmd)

	if !strings.Contains(s.failure, "already marked completed") {
		t.Errorf("failure = %q", s.failure)
	}
	if s.task.CurrentDay != 1 {
		t.Error("task should be unchanged")
	}
}

func TestRegenerate(t *testing.T) {
	svc := &fakeService{markTask: sampleTask(5)}
	s := NewWithTask(svc, sampleTask(3), time.Second)

	_, cmd := s.Update(keyPress('r'))
	run(t, s, cmd)

	if svc.regens != 1 {
		t.Fatalf("expected 1 regenerate call, got %d", svc.regens)
	}
	if len(s.task.Schedule) != 5 {
		t.Errorf("schedule length = %d, want 5", len(s.task.Schedule))
	}
}

func TestRegenerateFailureLeavesTask(t *testing.T) {
	svc := &fakeService{regenErr: &progress.ProgressionError{Kind: progress.KindRegenerationFailed}}
	task := sampleTask(3)
	s := NewWithTask(svc, task, time.Second)

	_, cmd := s.Update(keyPress('r'))
	run(t, s, cmd)

	if s.task != task {
		t.Error("task should be unchanged")
	}
	if s.failure == "" {
		t.Error("expected failure message")
	}
}

func TestKeysIgnoredWhileBusy(t *testing.T) {
	svc := &fakeService{markTask: sampleTask(3)}
	s := NewWithTask(svc, sampleTask(3), time.Second)

	_, first := s.Update(keyPress('c'))
	_, second := s.Update(keyPress('c'))
	if first == nil {
		t.Fatal("expected command for first press")
	}
	if second != nil {
		t.Error("expected second press to be ignored while busy")
	}
}

func TestCompletedPlanRejectsMarks(t *testing.T) {
	task := sampleTask(2)
	task.Schedule[0].Status = schedule.StatusCompleted
	task.Schedule[1].Status = schedule.StatusCompleted
	task.CurrentDay = 2

	svc := &fakeService{}
	s := NewWithTask(svc, task, time.Second)

	_, cmd := s.Update(keyPress('c'))
	if cmd != nil {
		t.Error("expected no command for a finished plan")
	}
	if len(svc.marks) != 0 {
		t.Error("service should not be called")
	}
	if !strings.Contains(s.notice, "complete") {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestQuit(t *testing.T) {
	s := NewWithTask(&fakeService{}, sampleTask(1), time.Second)
	_, cmd := s.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewShowsCurrentDay(t *testing.T) {
	task := sampleTask(3)
	task.Schedule[0].Status = schedule.StatusCompleted
	task.CurrentDay = 2
	s := NewWithTask(&fakeService{}, task, time.Second)

	view := s.View(100, 30)
	for _, want := range []string{"Day 2", "Study part B", "1/3", "read"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
