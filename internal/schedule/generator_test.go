package schedule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/lifebuddy/lifebuddy/internal/llm"
)

func newTestGenerator(t *testing.T, cfg Config, responses ...llm.MockResponse) (*Generator, *llm.MockProvider) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mock := llm.NewMockProvider(responses...)
	inv := llm.NewInvoker([]llm.Provider{mock},
		llm.WithDefaultModels(llm.ModelRef{Backend: "mock", Model: "test"}),
		llm.WithInvokerLogger(logger),
	)
	return New(inv, cfg, logger), mock
}

func plan(n int) string {
	var b strings.Builder
	for d := 1; d <= n; d++ {
		fmt.Fprintf(&b, "Day %d:\nTitle: Step %d\nKey Points:\n- point\n\n", d, d)
	}
	return b.String()
}

func threeDayInput() GenerateInput {
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	return GenerateInput{
		Title:        "Learn X",
		Requirements: "30 minutes a day",
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 2),
		UserContext:  UserContext{Timezone: "Europe/Berlin"},
	}
}

func TestGenerate_ThreeDayPlan(t *testing.T) {
	gen, mock := newTestGenerator(t, DefaultConfig(), llm.MockResponse{Content: plan(3)})

	res, err := gen.Generate(context.Background(), threeDayInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Days) != 3 || res.DayCount != 3 {
		t.Fatalf("expected 3 days, got %d (count %d)", len(res.Days), res.DayCount)
	}
	for i, d := range res.Days {
		if d.Status != StatusPending {
			t.Errorf("day %d status = %s", d.Day, d.Status)
		}
		if d.Subtask == "" {
			t.Errorf("day %d has empty subtask", d.Day)
		}
		if d.PrerequisiteMet != (i == 0) {
			t.Errorf("day %d prerequisiteMet = %v", d.Day, d.PrerequisiteMet)
		}
	}
	if res.Source != SourceInitial || res.Attempts != 1 {
		t.Fatalf("expected initial source after 1 attempt, got %s/%d", res.Source, res.Attempts)
	}
	if res.Model != "mock:test" {
		t.Fatalf("unexpected model %q", res.Model)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 model call, got %d", mock.CallCount())
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"3-day plan", "Learn X", "30 minutes a day", "Europe/Berlin", "Title: Set up your practice space"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("detailed prompt missing %q", want)
		}
	}
}

func TestGenerate_ShortPlanTriggersStrictRetry(t *testing.T) {
	gen, mock := newTestGenerator(t, DefaultConfig(),
		llm.MockResponse{Content: plan(2)},
		llm.MockResponse{Content: plan(3)},
	)

	res, err := gen.Generate(context.Background(), threeDayInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != SourceRetry || res.Attempts != 2 {
		t.Fatalf("expected retry source after 2 attempts, got %s/%d", res.Source, res.Attempts)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 model calls, got %d", mock.CallCount())
	}

	retry := mock.Calls[1]
	if !strings.Contains(retry.Messages[0].Content, "Output exactly 3 days") {
		t.Errorf("retry prompt is not the strict variant:\n%s", retry.Messages[0].Content)
	}
	if strings.Contains(retry.Messages[0].Content, "Set up your practice space") {
		t.Error("strict prompt must not embed the example day")
	}
	if retry.MaxTokens != DefaultConfig().StrictMaxTokens {
		t.Errorf("retry max tokens = %d", retry.MaxTokens)
	}
}

func TestGenerate_NeverMoreThanTwoAttempts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxAttempts = 5
	gen, mock := newTestGenerator(t, cfg,
		llm.MockResponse{Content: "I cannot help with that."},
		llm.MockResponse{Content: "Still no days here."},
		llm.MockResponse{Content: plan(3)},
	)

	_, err := gen.Generate(context.Background(), threeDayInput())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("expected invalid schedule, got %v", err)
	}
	var ge *GenerationError
	if !errors.As(err, &ge) || ge.Attempts != 2 {
		t.Fatalf("expected GenerationError after 2 attempts, got %v", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != NoDaysFound {
		t.Fatalf("expected wrapped NoDaysFound, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected exactly 2 model calls, got %d", mock.CallCount())
	}
	if ge.UserMessage() == "" {
		t.Fatal("expected a user message")
	}
}

func TestGenerate_SingleAttemptPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxAttempts = 1
	gen, mock := newTestGenerator(t, cfg,
		llm.MockResponse{Content: plan(2)},
		llm.MockResponse{Content: plan(3)},
	)

	_, err := gen.Generate(context.Background(), threeDayInput())
	if !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("expected invalid schedule, got %v", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != DayCountMismatch {
		t.Fatalf("expected DayCountMismatch, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 model call, got %d", mock.CallCount())
	}
}

func TestGenerate_ModelsExhaustedFailsImmediately(t *testing.T) {
	gen, mock := newTestGenerator(t, DefaultConfig(),
		llm.MockResponse{Err: &llm.ModelError{Kind: llm.KindTransient, StatusCode: 503}},
		llm.MockResponse{Content: plan(3)},
	)

	_, err := gen.Generate(context.Background(), threeDayInput())
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected model unavailable, got %v", err)
	}
	if !llm.IsKind(err, llm.KindAllModelsExhausted) {
		t.Fatalf("expected wrapped exhaustion error, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected no retry after exhaustion, got %d calls", mock.CallCount())
	}
}

func TestGenerate_InvalidRange(t *testing.T) {
	gen, mock := newTestGenerator(t, DefaultConfig())
	in := threeDayInput()
	in.EndDate = in.StartDate.AddDate(0, 0, -2)

	_, err := gen.Generate(context.Background(), in)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatal("model must not be called for an invalid range")
	}
}

func TestGenerate_PerRequestModels(t *testing.T) {
	gen, mock := newTestGenerator(t, DefaultConfig(), llm.MockResponse{Content: plan(3)})
	in := threeDayInput()
	in.Models = []llm.ModelRef{{Backend: "mock", Model: "override"}}

	res, err := gen.Generate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mock.CalledModels(); len(got) != 1 || got[0] != "override" {
		t.Fatalf("expected override model, got %v", got)
	}
	if res.Model != "mock:override" {
		t.Fatalf("unexpected model %q", res.Model)
	}
}

func TestGenerate_LengthFollowsRange(t *testing.T) {
	for _, span := range []int{0, 4, 13, 30, 45} {
		t.Run(fmt.Sprintf("span %d", span), func(t *testing.T) {
			in := threeDayInput()
			in.EndDate = in.StartDate.AddDate(0, 0, span)
			want, _ := DayCount(in.StartDate, in.EndDate)

			gen, _ := newTestGenerator(t, DefaultConfig(), llm.MockResponse{Content: plan(want)})
			res, err := gen.Generate(context.Background(), in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res.Days) != want {
				t.Fatalf("got %d days, want %d", len(res.Days), want)
			}
			seen := map[int]bool{}
			for _, d := range res.Days {
				if seen[d.Day] || d.Day < 1 || d.Day > want {
					t.Fatalf("bad day number %d", d.Day)
				}
				seen[d.Day] = true
				if !d.Date.Equal(DateForDay(in.StartDate, d.Day)) {
					t.Fatalf("day %d has date %s", d.Day, d.Date)
				}
			}
		})
	}
}

func TestGenerate_CallerCancellation(t *testing.T) {
	gen, _ := newTestGenerator(t, DefaultConfig(), llm.MockResponse{Content: plan(3), Delay: time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gen.Generate(ctx, threeDayInput())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
