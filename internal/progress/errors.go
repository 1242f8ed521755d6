package progress

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is.
var (
	ErrNotFound           = errors.New("day not found")
	ErrAlreadyMarked      = errors.New("day already marked")
	ErrRegenerationFailed = errors.New("plan regeneration failed")
	ErrTaskNotFound       = errors.New("task not found")
	ErrConsentRequired    = errors.New("consent is required to generate a plan")
	ErrInvalidStatus      = errors.New("status must be completed or skipped")
	ErrInvalidInput       = errors.New("invalid task input")
)

// ErrorKind classifies a rejected progression request.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindAlreadyMarked
	KindRegenerationFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyMarked:
		return "already_marked"
	case KindRegenerationFailed:
		return "regeneration_failed"
	default:
		return fmt.Sprintf("progress_kind(%d)", int(k))
	}
}

// ProgressionError is returned by MarkDay and Regenerate.
type ProgressionError struct {
	Kind ErrorKind

	// Day is the plan day the request addressed, when known.
	Day int

	// Status is the day's existing status for KindAlreadyMarked.
	Status string

	// SkipRecorded is set when a skip was persisted but the replacement
	// plan could not be generated.
	SkipRecorded bool

	Err error
}

func (e *ProgressionError) Error() string {
	msg := "progress: " + e.Kind.String()
	if e.Day > 0 {
		msg += fmt.Sprintf(" (day %d)", e.Day)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProgressionError) Unwrap() error { return e.Err }

func (e *ProgressionError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrAlreadyMarked:
		return e.Kind == KindAlreadyMarked
	case ErrRegenerationFailed:
		return e.Kind == KindRegenerationFailed
	}
	return false
}

// UserMessage is safe to show to the task owner.
func (e *ProgressionError) UserMessage() string {
	switch e.Kind {
	case KindNotFound:
		return "That day isn't the one you're on. Refresh your plan and try again."
	case KindAlreadyMarked:
		if e.Status != "" {
			return fmt.Sprintf("That day is already marked %s.", e.Status)
		}
		return "That day is already marked."
	case KindRegenerationFailed:
		if e.SkipRecorded {
			return "Your skip was recorded and your streak was reset, but we couldn't build a new plan. Your current plan is unchanged; try regenerating it."
		}
		return "We couldn't build a new plan right now. Your current plan is unchanged; try regenerating again."
	}
	return "Something went wrong updating your plan."
}
