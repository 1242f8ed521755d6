package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/screen"
	"github.com/lifebuddy/lifebuddy/internal/ui/components"
	"github.com/lifebuddy/lifebuddy/internal/ui/layout"
	"github.com/lifebuddy/lifebuddy/internal/ui/theme"
)

// Actions reported in actionDoneMsg.
const (
	actionComplete   = "complete"
	actionSkip       = "skip"
	actionRegenerate = "regenerate"
)

// Service is the part of the progression engine the board drives.
type Service interface {
	Get(ctx context.Context, taskID string) (*progress.Task, error)
	MarkDay(ctx context.Context, taskID string, dayDate time.Time, status schedule.Status) (*progress.Task, error)
	Regenerate(ctx context.Context, taskID string) (*progress.Task, error)
}

// PlanScreen shows a task's days and lets the user mark the current one.
type PlanScreen struct {
	svc     Service
	taskID  string
	task    *progress.Task
	timeout time.Duration

	busy    string
	notice  string
	failure string
}

var _ screen.Screen = (*PlanScreen)(nil)

// New creates a board that loads taskID on Init.
func New(svc Service, taskID string, timeout time.Duration) *PlanScreen {
	return &PlanScreen{svc: svc, taskID: taskID, timeout: timeout}
}

// NewWithTask creates a board for a task the caller already holds.
func NewWithTask(svc Service, task *progress.Task, timeout time.Duration) *PlanScreen {
	return &PlanScreen{svc: svc, taskID: task.ID, task: task, timeout: timeout}
}

func (s *PlanScreen) Init() tea.Cmd {
	if s.task != nil {
		return nil
	}
	s.busy = "Loading plan..."
	return s.loadCmd()
}

func (s *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case taskLoadedMsg:
		s.busy = ""
		if msg.Err != nil {
			s.failure = describe(msg.Err)
			return s, nil
		}
		s.task = msg.Task
		return s, nil

	case actionDoneMsg:
		return s.handleActionDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PlanScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key == "q" {
		return s, tea.Quit
	}
	if s.busy != "" || s.task == nil {
		return s, nil
	}

	switch key {
	case "c":
		return s.mark(actionComplete, schedule.StatusCompleted)
	case "s":
		return s.mark(actionSkip, schedule.StatusSkipped)
	case "r":
		s.begin("Building a fresh plan...")
		return s, s.regenerateCmd()
	}
	return s, nil
}

func (s *PlanScreen) mark(action string, status schedule.Status) (screen.Screen, tea.Cmd) {
	if s.task.Done() {
		s.notice = "This plan is complete. Press r for a new one."
		return s, nil
	}
	day := s.task.Current()
	if day == nil || day.Status != schedule.StatusPending {
		s.notice = "Nothing to mark today."
		return s, nil
	}
	if status == schedule.StatusSkipped {
		s.begin("Skipping and rebuilding your plan...")
	} else {
		s.begin("Saving...")
	}
	return s, s.markCmd(action, day.Date, status)
}

func (s *PlanScreen) begin(label string) {
	s.busy = label
	s.notice = ""
	s.failure = ""
}

func (s *PlanScreen) handleActionDone(msg actionDoneMsg) (screen.Screen, tea.Cmd) {
	s.busy = ""
	if msg.Task != nil {
		s.task = msg.Task
	}

	var pe *progress.ProgressionError
	switch {
	case msg.Err == nil:
		s.notice = s.successNotice(msg.Action)
	case errors.As(msg.Err, &pe) && pe.SkipRecorded:
		s.notice = pe.UserMessage()
	default:
		s.failure = describe(msg.Err)
	}
	return s, nil
}

func (s *PlanScreen) successNotice(action string) string {
	switch action {
	case actionComplete:
		if s.task.Done() {
			return fmt.Sprintf("Plan complete! Best streak: %d.", s.task.Stats.BestStreak)
		}
		return fmt.Sprintf("Nice work. Streak: %d.", s.task.Stats.CurrentStreak)
	case actionSkip:
		return "Skipped. Your plan was rebuilt from day 1."
	case actionRegenerate:
		return "New plan ready."
	}
	return ""
}

func (s *PlanScreen) ctx() (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(context.Background(), s.timeout)
	}
	return context.WithCancel(context.Background())
}

func (s *PlanScreen) loadCmd() tea.Cmd {
	svc, id := s.svc, s.taskID
	return func() tea.Msg {
		ctx, cancel := s.ctx()
		defer cancel()
		task, err := svc.Get(ctx, id)
		return taskLoadedMsg{Task: task, Err: err}
	}
}

func (s *PlanScreen) markCmd(action string, date time.Time, status schedule.Status) tea.Cmd {
	svc, id := s.svc, s.taskID
	return func() tea.Msg {
		ctx, cancel := s.ctx()
		defer cancel()
		task, err := svc.MarkDay(ctx, id, date, status)
		return actionDoneMsg{Action: action, Task: task, Err: err}
	}
}

func (s *PlanScreen) regenerateCmd() tea.Cmd {
	svc, id := s.svc, s.taskID
	return func() tea.Msg {
		ctx, cancel := s.ctx()
		defer cancel()
		task, err := svc.Regenerate(ctx, id)
		return actionDoneMsg{Action: actionRegenerate, Task: task, Err: err}
	}
}

func (s *PlanScreen) View(width, height int) string {
	if s.task == nil {
		msg := s.busy
		if s.failure != "" {
			msg = theme.Failure.Render(s.failure)
		}
		return lipgloss.NewStyle().Width(width).Padding(1, 2).Render(msg)
	}

	var b strings.Builder
	done := 0
	for _, d := range s.task.Schedule {
		if d.Status != schedule.StatusPending {
			done++
		}
	}
	b.WriteString(components.NewProgressBar("Progress", done, len(s.task.Schedule), width-4).View())
	b.WriteString("\n\n")

	detail := s.renderCurrent(width - 4)
	listHeight := height - lipgloss.Height(detail) - 6
	if listHeight < 3 {
		listHeight = 3
	}
	b.WriteString(components.NewDayList(s.task.Schedule, s.task.CurrentDay, listHeight).View())
	b.WriteString("\n\n")
	b.WriteString(detail)
	b.WriteString("\n")

	switch {
	case s.busy != "":
		b.WriteString(theme.Hint.Render(s.busy))
	case s.failure != "":
		b.WriteString(theme.Failure.Render(s.failure))
	case s.notice != "":
		b.WriteString(theme.Warning.Render(s.notice))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *PlanScreen) renderCurrent(width int) string {
	day := s.task.Current()
	if day == nil {
		return theme.Hint.Render("This plan has no days.")
	}

	var b strings.Builder
	heading := fmt.Sprintf("Day %d · %s", day.Day, day.Date.Format("Mon Jan 2"))
	if day.DayTitle != "" {
		heading += " · " + day.DayTitle
	}
	b.WriteString(theme.Title.Render(heading) + "\n")
	b.WriteString(theme.Body.Render(day.Subtask) + "\n")
	for _, kp := range day.KeyPoints {
		b.WriteString(theme.Body.Render("  • "+kp) + "\n")
	}
	if day.Duration != "" {
		b.WriteString(theme.Subtitle.Render("Time: "+day.Duration) + "\n")
	}
	if day.Tips != "" {
		b.WriteString(theme.Subtitle.Render("Tip: "+day.Tips) + "\n")
	}
	if len(day.Resources) > 0 {
		b.WriteString(theme.Subtitle.Render("Resources: "+strings.Join(day.Resources, ", ")) + "\n")
	}
	if day.Motivation != "" {
		b.WriteString(theme.Hint.Render(day.Motivation))
	}
	return theme.Card.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (s *PlanScreen) Title() string {
	if s.task == nil {
		return "Plan"
	}
	return s.task.Title
}

// Streak implements screen.StreakProvider.
func (s *PlanScreen) Streak() (int, int) {
	if s.task == nil {
		return 0, 0
	}
	return s.task.Stats.CurrentStreak, s.task.Stats.BestStreak
}

// KeyHints implements screen.KeyHintProvider.
func (s *PlanScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "c", Description: "Complete"},
		{Key: "s", Description: "Skip"},
		{Key: "r", Description: "Regenerate"},
		{Key: "q", Description: "Quit"},
	}
}

// describe renders an engine error for the status line.
func describe(err error) string {
	var pe *progress.ProgressionError
	if errors.As(err, &pe) {
		return pe.UserMessage()
	}
	switch {
	case errors.Is(err, progress.ErrTaskNotFound):
		return "That plan no longer exists."
	case errors.Is(err, context.DeadlineExceeded):
		return "That took too long. Try again."
	}
	return "Something went wrong: " + err.Error()
}
