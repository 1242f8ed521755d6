package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/router"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/screen"
	"github.com/lifebuddy/lifebuddy/internal/ui/components"
	"github.com/lifebuddy/lifebuddy/internal/ui/layout"
	"github.com/lifebuddy/lifebuddy/internal/ui/theme"
)

// DefaultDays is the plan length created from the board.
const DefaultDays = 7

// Creator generates and stores a new task.
type Creator interface {
	CreateTask(ctx context.Context, in progress.CreateInput) (*progress.Task, error)
}

// Options configures the goal screen.
type Options struct {
	Creator     Creator
	UserID      string
	Days        int
	UserContext schedule.UserContext
	Timeout     time.Duration

	// Next builds the screen shown once the task exists.
	Next func(*progress.Task) screen.Screen

	// Now defaults to time.Now.
	Now func() time.Time
}

// createdMsg is sent when CreateTask returns.
type createdMsg struct {
	Task *progress.Task
	Err  error
}

// GoalScreen asks for a goal title and creates a plan from it.
type GoalScreen struct {
	opts    Options
	input   components.TextInput
	busy    bool
	failure string
}

var _ screen.Screen = (*GoalScreen)(nil)

// New creates a goal entry screen.
func New(opts Options) *GoalScreen {
	if opts.Days <= 0 {
		opts.Days = DefaultDays
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &GoalScreen{
		opts:  opts,
		input: components.NewTextInput("What do you want to work on?", "e.g. Learn conversational Spanish", 120),
	}
}

func (g *GoalScreen) Init() tea.Cmd {
	return g.input.Init()
}

func (g *GoalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case createdMsg:
		g.busy = false
		if msg.Err != nil {
			g.failure = describe(msg.Err)
			return g, nil
		}
		next := g.opts.Next(msg.Task)
		return g, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		if g.busy {
			return g, nil
		}
		switch msg.String() {
		case "esc":
			return g, tea.Quit
		case "enter":
			return g.submit()
		}
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

func (g *GoalScreen) submit() (screen.Screen, tea.Cmd) {
	title := g.input.Value()
	if title == "" {
		g.input.Reject()
		return g, nil
	}
	g.busy = true
	g.failure = ""

	now := g.opts.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	in := progress.CreateInput{
		UserID:      g.opts.UserID,
		Title:       title,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, g.opts.Days-1),
		UserContext: g.opts.UserContext,
		Consent:     true,
	}
	creator, timeout := g.opts.Creator, g.opts.Timeout
	return g, func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		task, err := creator.CreateTask(ctx, in)
		return createdMsg{Task: task, Err: err}
	}
}

func (g *GoalScreen) View(width, height int) string {
	body := g.input.View() + "\n\n"
	switch {
	case g.busy:
		body += theme.Hint.Render(fmt.Sprintf("Building your %d-day plan...", g.opts.Days))
	case g.failure != "":
		body += theme.Failure.Render(g.failure)
	default:
		body += theme.Hint.Render(fmt.Sprintf("Press Enter to build a %d-day plan starting today.", g.opts.Days))
	}
	return lipgloss.NewStyle().Width(width).Padding(1, 2).Render(body)
}

func (g *GoalScreen) Title() string {
	return "New goal"
}

// KeyHints implements screen.KeyHintProvider.
func (g *GoalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Create plan"},
		{Key: "Esc", Description: "Quit"},
	}
}

func describe(err error) string {
	var ge *schedule.GenerationError
	switch {
	case errors.As(err, &ge):
		return ge.UserMessage()
	case errors.Is(err, context.DeadlineExceeded):
		return "That took too long. Try again."
	}
	return "Couldn't create the plan: " + err.Error()
}
