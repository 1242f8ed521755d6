package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/lifebuddy/lifebuddy/internal/store"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func refs(t *testing.T, ss ...string) []ModelRef {
	t.Helper()
	out := make([]ModelRef, len(ss))
	for i, s := range ss {
		r, err := ParseModelRef(s)
		if err != nil {
			t.Fatalf("ParseModelRef(%q): %v", s, err)
		}
		out[i] = r
	}
	return out
}

func TestInvoker_FirstModelWins(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "hello"})
	inv := NewInvoker([]Provider{mock}, WithInvokerLogger(quietLogger()))

	resp, err := inv.Invoke(context.Background(), UserPrompt("", "hi", 10, 0), refs(t, "mock:a", "mock:b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "hello" {
		t.Fatalf("expected hello, got %q", resp.Content)
	}
	if resp.Model != "a" || resp.Backend != "mock" {
		t.Fatalf("expected mock:a to serve, got %s:%s", resp.Backend, resp.Model)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestInvoker_CascadesThroughFailureKinds(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ModelError{Kind: KindRateLimited, StatusCode: 429}},
		MockResponse{Err: &ModelError{Kind: KindAuth, StatusCode: 401}},
		MockResponse{Err: &ModelError{Kind: KindAccessDenied, StatusCode: 402}},
		MockResponse{Err: errors.New("connection reset")},
		MockResponse{Content: "finally"},
	)
	inv := NewInvoker([]Provider{mock}, WithInvokerLogger(quietLogger()))

	resp, err := inv.Invoke(context.Background(), Request{}, refs(t, "mock:a", "mock:b", "mock:c", "mock:d", "mock:e"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "finally" {
		t.Fatalf("expected last model's text, got %q", resp.Content)
	}

	want := []string{"a", "b", "c", "d", "e"}
	got := mock.CalledModels()
	if len(got) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d: expected model %q, got %q", i, want[i], got[i])
		}
	}
}

func TestInvoker_AllModelsExhausted(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ModelError{Kind: KindRateLimited, StatusCode: 429, RetryAfter: 3 * time.Second}},
		MockResponse{Err: &ModelError{Kind: KindTransient, StatusCode: 503}},
	)
	inv := NewInvoker([]Provider{mock}, WithInvokerLogger(quietLogger()))

	_, err := inv.Invoke(context.Background(), Request{}, refs(t, "mock:a", "mock:b"))
	if err == nil {
		t.Fatal("expected error")
	}

	var me *ModelError
	if !errors.As(err, &me) {
		t.Fatalf("expected *ModelError, got %T", err)
	}
	if me.Kind != KindAllModelsExhausted {
		t.Fatalf("expected all-models-exhausted, got %s", me.Kind)
	}
	if len(me.Failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(me.Failures))
	}
	if me.Failures[0].Model != "mock:a" || me.Failures[0].Kind != KindRateLimited {
		t.Fatalf("unexpected first failure: %+v", me.Failures[0])
	}
	if me.Failures[0].RetryAfter != 3*time.Second {
		t.Fatalf("expected retry-after to be kept, got %v", me.Failures[0].RetryAfter)
	}
	if me.Failures[1].Kind != KindTransient {
		t.Fatalf("unexpected second failure: %+v", me.Failures[1])
	}
}

func TestInvoker_UnknownBackendIsAuthFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "ok"})
	inv := NewInvoker([]Provider{mock}, WithInvokerLogger(quietLogger()))

	resp, err := inv.Invoke(context.Background(), Request{}, refs(t, "openai:gpt-4o", "mock:a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "ok" {
		t.Fatalf("expected fallback to mock, got %q", resp.Content)
	}

	_, err = NewInvoker(nil, WithInvokerLogger(quietLogger())).
		Invoke(context.Background(), Request{}, refs(t, "openai:gpt-4o"))
	var me *ModelError
	if !errors.As(err, &me) || len(me.Failures) != 1 || me.Failures[0].Kind != KindAuth {
		t.Fatalf("expected a single auth failure, got %v", err)
	}
}

func TestInvoker_EmptyContentAdvances(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: "   \n"},
		MockResponse{Content: "real text"},
	)
	inv := NewInvoker([]Provider{mock}, WithInvokerLogger(quietLogger()))

	resp, err := inv.Invoke(context.Background(), Request{}, refs(t, "mock:a", "mock:b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "real text" || resp.Model != "b" {
		t.Fatalf("expected mock:b to serve, got %+v", resp)
	}
}

func TestInvoker_AttemptTimeoutAdvances(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: "too late", Delay: 2 * time.Second},
		MockResponse{Content: "on time"},
	)
	inv := NewInvoker([]Provider{mock},
		WithInvokerLogger(quietLogger()),
		WithAttemptTimeout(20*time.Millisecond),
	)

	start := time.Now()
	resp, err := inv.Invoke(context.Background(), Request{}, refs(t, "mock:slow", "mock:fast"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "on time" {
		t.Fatalf("expected second model, got %q", resp.Content)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("attempt timeout not enforced, took %v", elapsed)
	}
}

func TestInvoker_CallerCancellationStopsCascade(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: "x", Delay: time.Second},
		MockResponse{Content: "y"},
	)
	inv := NewInvoker([]Provider{mock}, WithInvokerLogger(quietLogger()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := inv.Invoke(ctx, Request{}, refs(t, "mock:a", "mock:b"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected caller deadline, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected cascade to stop after 1 call, got %d", mock.CallCount())
	}
}

func TestInvoker_DefaultsWhenNoPreferences(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "ok"})
	inv := NewInvoker([]Provider{mock},
		WithInvokerLogger(quietLogger()),
		WithDefaultModels(refs(t, "mock:default")...),
	)

	if _, err := inv.Invoke(context.Background(), Request{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mock.CalledModels(); got[0] != "default" {
		t.Fatalf("expected default model, got %v", got)
	}

	_, err := NewInvoker([]Provider{mock}, WithInvokerLogger(quietLogger())).Invoke(context.Background(), Request{}, nil)
	if !IsKind(err, KindAllModelsExhausted) {
		t.Fatalf("expected exhausted error with no candidates, got %v", err)
	}
}

type recordingAppender struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
}

func (r *recordingAppender) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return nil
}

func TestLoggingProvider_RecordsEveryAttempt(t *testing.T) {
	rec := &recordingAppender{}
	mock := NewMockProvider(
		MockResponse{Err: &ModelError{Kind: KindRateLimited, StatusCode: 429}},
		MockResponse{Content: "ok", Usage: Usage{InputTokens: 3, OutputTokens: 4}},
	)
	inv := NewInvoker([]Provider{WithLogging(mock, rec, quietLogger())}, WithInvokerLogger(quietLogger()))

	ctx := WithPurpose(context.Background(), "schedule")
	if _, err := inv.Invoke(ctx, UserPrompt("sys", "plan", 10, 0), refs(t, "mock:a", "mock:b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(rec.events))
	}
	first, second := rec.events[0], rec.events[1]
	if first.Success || first.ErrorKind != "rate_limited" || first.Model != "a" {
		t.Fatalf("unexpected first event: %+v", first)
	}
	if !second.Success || second.OutputTokens != 4 || second.Purpose != "schedule" {
		t.Fatalf("unexpected second event: %+v", second)
	}
	if second.Backend != "mock" {
		t.Fatalf("expected backend mock, got %q", second.Backend)
	}
}
