package progress

import (
	"time"

	"github.com/lifebuddy/lifebuddy/internal/schedule"
)

// Stats are a task's progression counters. Completed and Skipped only grow;
// CurrentStreak resets to zero on a skip.
type Stats struct {
	Completed     int `json:"completed"`
	Skipped       int `json:"skipped"`
	CurrentStreak int `json:"currentStreak"`
	BestStreak    int `json:"bestStreak"`
}

// Task is a user's steppable multi-day plan.
type Task struct {
	ID             string               `json:"id"`
	UserID         string               `json:"userId"`
	Title          string               `json:"title"`
	Description    string               `json:"description,omitempty"`
	Requirements   string               `json:"requirements,omitempty"`
	StartDate      time.Time            `json:"startDate"`
	EndDate        time.Time            `json:"endDate"`
	Schedule       []schedule.DayPlan   `json:"schedule"`
	CurrentDay     int                  `json:"currentDay"`
	ScheduleSource string               `json:"scheduleSource"`
	Stats          Stats                `json:"stats"`
	UserContext    schedule.UserContext `json:"userContext"`
	Version        int64                `json:"version"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// Current returns the day the user is on, or nil for an empty schedule.
func (t *Task) Current() *schedule.DayPlan {
	if t.CurrentDay < 1 || t.CurrentDay > len(t.Schedule) {
		return nil
	}
	return &t.Schedule[t.CurrentDay-1]
}

// Done reports whether the last day has been completed.
func (t *Task) Done() bool {
	n := len(t.Schedule)
	return n > 0 && t.CurrentDay == n && t.Schedule[n-1].Status == schedule.StatusCompleted
}

// dayByDate finds the plan entry for a calendar date.
func (t *Task) dayByDate(date time.Time) *schedule.DayPlan {
	for i := range t.Schedule {
		if sameDate(t.Schedule[i].Date, date) {
			return &t.Schedule[i]
		}
	}
	return nil
}

// sameDate compares calendar fields without converting zones, so a caller's
// local "2025-03-02" matches the stored UTC midnight of that date.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// civilDate truncates t to midnight UTC on its own calendar date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
