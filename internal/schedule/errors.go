package schedule

import (
	"errors"
	"fmt"
)

// ParseErrorKind says why raw model text could not become a plan.
type ParseErrorKind int

const (
	// NoDaysFound means no "Day N:" marker was present.
	NoDaysFound ParseErrorKind = iota
	// EmptySubtask means a day had no subtask after the fallback chain.
	EmptySubtask
	// DayCountMismatch means the number of days differs from the range.
	DayCountMismatch
	// InvalidDocument means the parsed plan failed a validator.
	InvalidDocument
)

func (k ParseErrorKind) String() string {
	switch k {
	case NoDaysFound:
		return "no_days_found"
	case EmptySubtask:
		return "empty_subtask"
	case DayCountMismatch:
		return "day_count_mismatch"
	case InvalidDocument:
		return "invalid_document"
	default:
		return fmt.Sprintf("parse_kind(%d)", int(k))
	}
}

// ParseError is the parser's soft failure signal.
type ParseError struct {
	Kind ParseErrorKind

	// Day is the offending day for EmptySubtask.
	Day int

	// Found and Want are the parsed and requested day counts.
	Found int
	Want  int

	// Validator names the failing validator for InvalidDocument.
	Validator string
	Err       error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case NoDaysFound:
		return "parse schedule: no day markers found"
	case EmptySubtask:
		return fmt.Sprintf("parse schedule: day %d has no subtask", e.Day)
	case DayCountMismatch:
		return fmt.Sprintf("parse schedule: found %d days, want %d", e.Found, e.Want)
	case InvalidDocument:
		return fmt.Sprintf("parse schedule: validator %q: %v", e.Validator, e.Err)
	default:
		return "parse schedule: " + e.Kind.String()
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// GenerationErrorKind classifies a failed generation.
type GenerationErrorKind int

const (
	// InvalidSchedule means every attempt produced unparseable output.
	InvalidSchedule GenerationErrorKind = iota
	// ModelUnavailable means every candidate model failed on an attempt.
	ModelUnavailable
)

func (k GenerationErrorKind) String() string {
	switch k {
	case InvalidSchedule:
		return "invalid_schedule"
	case ModelUnavailable:
		return "model_unavailable"
	default:
		return fmt.Sprintf("generation_kind(%d)", int(k))
	}
}

// Sentinels matched by errors.Is against a *GenerationError of that kind.
var (
	ErrInvalidSchedule  = errors.New("generated schedule is invalid")
	ErrModelUnavailable = errors.New("no model could produce a schedule")
)

// GenerationError is returned by Generator.Generate after it gives up.
type GenerationError struct {
	Kind     GenerationErrorKind
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate schedule (%s after %d attempt(s)): %v", e.Kind, e.Attempts, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Is(target error) bool {
	switch target {
	case ErrInvalidSchedule:
		return e.Kind == InvalidSchedule
	case ErrModelUnavailable:
		return e.Kind == ModelUnavailable
	}
	return false
}

// UserMessage is safe to show to the person who asked for the plan.
func (e *GenerationError) UserMessage() string {
	if e.Kind == ModelUnavailable {
		return "We couldn't reach an AI model to build your plan right now. Please try again in a few minutes."
	}
	return "We couldn't produce a complete plan for this goal. Try again, or rephrase the goal with a bit more detail."
}
