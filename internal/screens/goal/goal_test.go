package goal

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/router"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/screen"
)

// fakeCreator implements Creator for testing.
type fakeCreator struct {
	inputs []progress.CreateInput
	err    error
}

func (f *fakeCreator) CreateTask(_ context.Context, in progress.CreateInput) (*progress.Task, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &progress.Task{ID: "new", Title: in.Title, CurrentDay: 1}, nil
}

// stubScreen is the screen shown after creation.
type stubScreen struct{ task *progress.Task }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "stub" }

func newScreen(c Creator) *GoalScreen {
	return New(Options{
		Creator: c,
		UserID:  "u1",
		Timeout: time.Second,
		Next:    func(t *progress.Task) screen.Screen { return &stubScreen{task: t} },
		Now: func() time.Time {
			return time.Date(2025, 3, 10, 21, 30, 0, 0, time.FixedZone("PST", -8*3600))
		},
	})
}

func typeText(g *GoalScreen, text string) {
	for _, r := range text {
		g.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestSubmitCreatesSevenDayPlan(t *testing.T) {
	c := &fakeCreator{}
	g := newScreen(c)
	typeText(g, "Run a 5k")

	_, cmd := g.Update(enter())
	if cmd == nil {
		t.Fatal("expected create command")
	}
	if !g.busy {
		t.Error("expected busy while creating")
	}

	msg := cmd()
	if len(c.inputs) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(c.inputs))
	}
	in := c.inputs[0]
	if in.Title != "Run a 5k" || in.UserID != "u1" || !in.Consent {
		t.Errorf("unexpected input: %+v", in)
	}
	wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !in.StartDate.Equal(wantStart) {
		t.Errorf("start = %v, want %v", in.StartDate, wantStart)
	}
	if !in.EndDate.Equal(wantStart.AddDate(0, 0, 6)) {
		t.Errorf("end = %v, want 6 days after start", in.EndDate)
	}

	_, next := g.Update(msg)
	if next == nil {
		t.Fatal("expected navigation command")
	}
	replace, ok := next().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if stub := replace.Screen.(*stubScreen); stub.task.ID != "new" {
		t.Errorf("next screen got task %q", stub.task.ID)
	}
}

func TestEmptyTitleRejected(t *testing.T) {
	c := &fakeCreator{}
	g := newScreen(c)
	typeText(g, "   ")

	_, cmd := g.Update(enter())
	if cmd != nil {
		t.Error("expected no command for a blank title")
	}
	if !g.input.Rejected() {
		t.Error("expected input to be flagged")
	}
	if len(c.inputs) != 0 {
		t.Error("creator should not be called")
	}
}

func TestCreateFailureShown(t *testing.T) {
	c := &fakeCreator{err: &schedule.GenerationError{Kind: schedule.ModelUnavailable, Attempts: 1}}
	g := newScreen(c)
	typeText(g, "Read more")

	_, cmd := g.Update(enter())
	g.Update(cmd())

	if g.busy {
		t.Error("expected busy to clear")
	}
	if !strings.Contains(g.failure, "couldn't reach an AI model") {
		t.Errorf("failure = %q", g.failure)
	}
}

func TestEscQuits(t *testing.T) {
	g := newScreen(&fakeCreator{})
	_, cmd := g.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
