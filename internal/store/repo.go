package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrConflict is returned by TaskRepo.Update when the stored version no
	// longer matches the caller's expected version.
	ErrConflict = errors.New("task was modified concurrently")
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact match when set
}

// TaskRecord is the persisted form of a task. Schedule, Stats and
// UserContext are opaque JSON documents owned by the progress package.
type TaskRecord struct {
	ID             string
	UserID         string
	Title          string
	Description    string
	Requirements   string
	StartDate      time.Time
	EndDate        time.Time
	Schedule       json.RawMessage
	CurrentDay     int
	ScheduleSource string
	Stats          json.RawMessage
	UserContext    json.RawMessage
	Done           bool
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TaskRepo persists tasks with optimistic concurrency on Version.
type TaskRepo interface {
	// Create inserts rec, assigning an ID when empty, and sets Version to 1.
	Create(ctx context.Context, rec *TaskRecord) error

	// Get returns the task with the given id or ErrTaskNotFound.
	Get(ctx context.Context, id string) (*TaskRecord, error)

	// ListByUser returns a user's tasks, newest first.
	ListByUser(ctx context.Context, userID string) ([]*TaskRecord, error)

	// ListActive returns every task that is not done.
	ListActive(ctx context.Context) ([]*TaskRecord, error)

	// Update writes rec if the stored version equals expectedVersion and
	// bumps rec.Version. It returns ErrConflict on a version mismatch.
	Update(ctx context.Context, rec *TaskRecord, expectedVersion int64) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Backend      string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorKind    string
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM calls by purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
}

// ModelUsage aggregates token usage for a single model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single event or nil when it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates calls per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates calls per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// NotificationData describes a "day ready" notice handed to the delivery layer.
type NotificationData struct {
	UserID  string
	TaskID  string
	Day     int
	Subtask string
	Channel string
	Reason  string
}

// NotificationRecord is a stored notification.
type NotificationRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	NotificationData
}

// NotificationRepo stores pending notifications for delivery.
type NotificationRepo interface {
	AppendNotification(ctx context.Context, data NotificationData) error

	// ListNotifications returns a user's notifications, newest first.
	ListNotifications(ctx context.Context, userID string, opts QueryOpts) ([]NotificationRecord, error)
}
