package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/router"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/screen"
	"github.com/lifebuddy/lifebuddy/internal/screens/goal"
	"github.com/lifebuddy/lifebuddy/internal/screens/plan"
	"github.com/lifebuddy/lifebuddy/internal/ui/layout"
)

// Service is everything the board needs from the progression engine.
// *progress.Engine satisfies it.
type Service interface {
	plan.Service
	CreateTask(ctx context.Context, in progress.CreateInput) (*progress.Task, error)
}

// Options configures the board.
type Options struct {
	Service Service
	UserID  string

	// TaskID opens an existing plan. Empty starts at goal entry.
	TaskID string

	// Days is the length of plans created from goal entry.
	Days        int
	UserContext schedule.UserContext

	// Timeout bounds each engine call, including generation.
	Timeout time.Duration
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// NewAppModel creates the board on the goal or plan screen.
func NewAppModel(opts Options) AppModel {
	var initial screen.Screen
	if opts.TaskID != "" {
		initial = plan.New(opts.Service, opts.TaskID, opts.Timeout)
	} else {
		initial = goal.New(goal.Options{
			Creator:     opts.Service,
			UserID:      opts.UserID,
			Days:        opts.Days,
			UserContext: opts.UserContext,
			Timeout:     opts.Timeout,
			Next: func(t *progress.Task) screen.Screen {
				return plan.NewWithTask(opts.Service, t, opts.Timeout)
			},
		})
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	var streak, best int
	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StreakProvider); ok {
			streak, best = sp.Streak()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, streak, best, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(NewAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
