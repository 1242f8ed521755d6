package app

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/router"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/screens/goal"
	"github.com/lifebuddy/lifebuddy/internal/screens/plan"
)

// stubService implements Service for testing.
type stubService struct{}

func (stubService) Get(context.Context, string) (*progress.Task, error) {
	return &progress.Task{ID: "t1", Title: "Stub", CurrentDay: 1}, nil
}
func (stubService) MarkDay(context.Context, string, time.Time, schedule.Status) (*progress.Task, error) {
	return nil, nil
}
func (stubService) Regenerate(context.Context, string) (*progress.Task, error) {
	return nil, nil
}
func (stubService) CreateTask(_ context.Context, in progress.CreateInput) (*progress.Task, error) {
	return &progress.Task{ID: "t2", Title: in.Title, CurrentDay: 1}, nil
}

func TestStartsAtGoalEntryWithoutTask(t *testing.T) {
	m := NewAppModel(Options{Service: stubService{}, UserID: "u1"})
	if _, ok := m.router.Active().(*goal.GoalScreen); !ok {
		t.Fatalf("expected goal screen, got %T", m.router.Active())
	}
}

func TestStartsOnBoardWithTask(t *testing.T) {
	m := NewAppModel(Options{Service: stubService{}, UserID: "u1", TaskID: "t1"})
	if _, ok := m.router.Active().(*plan.PlanScreen); !ok {
		t.Fatalf("expected plan screen, got %T", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("expected a load command")
	}
}

func TestReplaceMovesToBoard(t *testing.T) {
	m := NewAppModel(Options{Service: stubService{}, UserID: "u1"})
	board := plan.NewWithTask(stubService{}, &progress.Task{ID: "t2", Title: "New"}, 0)

	updated, _ := m.Update(router.ReplaceScreenMsg{Screen: board})
	am := updated.(AppModel)
	if am.router.Active() != board {
		t.Error("expected the board to be active")
	}
	if am.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", am.router.Depth())
	}
}

func TestWindowSize(t *testing.T) {
	m := NewAppModel(Options{Service: stubService{}})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	am := updated.(AppModel)
	if am.width != 100 || am.height != 40 {
		t.Errorf("size = %dx%d", am.width, am.height)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := NewAppModel(Options{Service: stubService{}})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
