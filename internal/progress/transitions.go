package progress

import "github.com/lifebuddy/lifebuddy/internal/schedule"

// Transition is the effect of marking the current day with a status.
type Transition struct {
	// Apply updates counters. The day's status is already set.
	Apply func(t *Task, day *schedule.DayPlan)

	// Regenerate replaces the whole plan after Apply. When false the task
	// advances to the next day instead.
	Regenerate bool
}

// Transitions maps a target status to its effect. A status without an
// entry cannot be marked.
type Transitions map[schedule.Status]Transition

// DefaultTransitions returns the standard rules: a completion extends the
// streak and advances, a skip resets the streak and regenerates the plan.
func DefaultTransitions() Transitions {
	return Transitions{
		schedule.StatusCompleted: {Apply: recordCompletion},
		schedule.StatusSkipped:   {Apply: recordSkip, Regenerate: true},
	}
}

func recordCompletion(t *Task, _ *schedule.DayPlan) {
	t.Stats.Completed++
	t.Stats.CurrentStreak++
	t.Stats.BestStreak = max(t.Stats.BestStreak, t.Stats.CurrentStreak)
}

func recordSkip(t *Task, _ *schedule.DayPlan) {
	t.Stats.Skipped++
	t.Stats.CurrentStreak = 0
}
