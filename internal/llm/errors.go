package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorKind classifies why a model call failed.
type ErrorKind int

const (
	// KindTransient covers 5xx responses, network failures, per-attempt
	// timeouts and empty responses.
	KindTransient ErrorKind = iota
	// KindAuth means the backend rejected the credential (401) or no
	// credential is configured for it.
	KindAuth
	// KindAccessDenied covers quota and plan restrictions (402, 403) and
	// models the account cannot reach (404).
	KindAccessDenied
	// KindRateLimited means the backend returned 429.
	KindRateLimited
	// KindAllModelsExhausted is returned by the Invoker after every
	// candidate model failed.
	KindAllModelsExhausted
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindAuth:
		return "auth"
	case KindAccessDenied:
		return "access_denied"
	case KindRateLimited:
		return "rate_limited"
	case KindAllModelsExhausted:
		return "all_models_exhausted"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ModelError is the error type returned by providers and the Invoker.
type ModelError struct {
	Kind ErrorKind

	// Model is the model reference ("backend:model") that failed.
	Model string

	// StatusCode is the HTTP status returned by the backend, if any.
	StatusCode int

	// RetryAfter is the backend's Retry-After hint for rate limits.
	RetryAfter time.Duration

	// Failures lists every candidate failure, in order, when Kind is
	// KindAllModelsExhausted.
	Failures []*ModelError

	Err error
}

func (e *ModelError) Error() string {
	if e.Kind == KindAllModelsExhausted {
		parts := make([]string, 0, len(e.Failures))
		for _, f := range e.Failures {
			parts = append(parts, fmt.Sprintf("%s: %s", f.Model, f.Kind))
		}
		if len(parts) == 0 {
			return fmt.Sprintf("all models exhausted: %v", e.Err)
		}
		return "all models exhausted (" + strings.Join(parts, "; ") + ")"
	}

	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Model != "" {
		fmt.Fprintf(&b, " [%s]", e.Model)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ModelError) Unwrap() error { return e.Err }

// IsKind reports whether err is a *ModelError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var me *ModelError
	return errors.As(err, &me) && me.Kind == kind
}

var (
	errEmptyResponse = errors.New("model returned no usable text")
	errNoCandidates  = errors.New("no candidate models configured")
)

// classifyStatus maps an HTTP status code from any backend to a ModelError.
func classifyStatus(status int, retryAfter time.Duration, err error) *ModelError {
	me := &ModelError{StatusCode: status, Err: err}
	switch {
	case status == http.StatusUnauthorized:
		me.Kind = KindAuth
	case status == http.StatusPaymentRequired,
		status == http.StatusForbidden,
		status == http.StatusNotFound:
		me.Kind = KindAccessDenied
	case status == http.StatusTooManyRequests:
		me.Kind = KindRateLimited
		me.RetryAfter = retryAfter
	default:
		me.Kind = KindTransient
	}
	return me
}

// asModelError normalizes any provider error into a *ModelError tagged with
// the model reference that produced it.
func asModelError(err error, ref ModelRef) *ModelError {
	var me *ModelError
	if errors.As(err, &me) {
		if me.Model == "" {
			me.Model = ref.String()
		}
		return me
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ModelError{Kind: KindTransient, Model: ref.String(), Err: fmt.Errorf("attempt timed out: %w", err)}
	}
	return &ModelError{Kind: KindTransient, Model: ref.String(), Err: err}
}
