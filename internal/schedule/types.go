package schedule

import "time"

// Status is the lifecycle state of one day in a plan.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// DayPlan is one day's structured content within a generated schedule.
type DayPlan struct {
	Day        int       `json:"day"`
	Date       time.Time `json:"date"`
	Subtask    string    `json:"subtask"`
	DayTitle   string    `json:"dayTitle,omitempty"`
	KeyPoints  []string  `json:"keyPoints"`
	Example    string    `json:"example,omitempty"`
	Resources  []string  `json:"resources"`
	Tips       string    `json:"tips,omitempty"`
	Duration   string    `json:"duration,omitempty"`
	Motivation string    `json:"motivation,omitempty"`
	Status     Status    `json:"status"`

	// PrerequisiteMet is set for day 1 at creation. Nothing gates on it.
	PrerequisiteMet bool `json:"prerequisiteMet"`

	Quiz *Quiz `json:"quiz,omitempty"`
}

// Quiz is an optional per-day check carried through untouched.
type Quiz struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	UserAnswer    string   `json:"userAnswer,omitempty"`
	IsCorrect     *bool    `json:"isCorrect,omitempty"`
}

// UserContext is caller-supplied profile data. It is only interpolated into
// prompts; the engine never branches on it.
type UserContext struct {
	Timezone               string `json:"timezone,omitempty"`
	SubscriptionTier       string `json:"subscriptionTier,omitempty"`
	NotificationPreference string `json:"notificationPreference,omitempty"`
}

// Source values record which generation pass produced a schedule.
const (
	SourceInitial = "initial"
	SourceRetry   = "retry"
)
