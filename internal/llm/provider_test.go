package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: "Day 1: A", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: "Day 1: B"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Content != "Day 1: A" {
		t.Fatalf("expected %q, got %q", "Day 1: A", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Content != "Day 1: B" {
		t.Fatalf("expected %q, got %q", "Day 1: B", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsTransient(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	if !IsKind(err, KindTransient) {
		t.Fatalf("expected transient ModelError, got: %T (%v)", err, err)
	}
}

func TestMockProvider_Fallback(t *testing.T) {
	mock := NewMockProvider().WithFallback(DemoPlan)
	resp, err := mock.Generate(context.Background(), UserPrompt("", "Create a 3-day plan", 100, 0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(resp.Content, "Day "); got != 3 {
		t.Fatalf("expected 3 day labels, got %d in:\n%s", got, resp.Content)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "ok"})

	req := Request{
		System:   "sys",
		Model:    "m1",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
	if got := mock.CalledModels(); len(got) != 1 || got[0] != "m1" {
		t.Fatalf("expected [m1], got %v", got)
	}
}

func TestMockProvider_DelayHonorsContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "late", Delay: time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := mock.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestParseModelRef(t *testing.T) {
	tests := []struct {
		in      string
		backend string
		model   string
	}{
		{"openai:gpt-4o-mini", "openai", "gpt-4o-mini"},
		{"openrouter:deepseek/deepseek-r1:free", "openrouter", "deepseek/deepseek-r1:free"},
		{"deepseek/deepseek-r1:free", "openrouter", "deepseek/deepseek-r1:free"},
		{"  anthropic:claude-haiku ", "anthropic", "claude-haiku"},
		{"mock:any", "mock", "any"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ref, err := ParseModelRef(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ref.Backend != tt.backend || ref.Model != tt.model {
				t.Fatalf("got %s/%s, want %s/%s", ref.Backend, ref.Model, tt.backend, tt.model)
			}
		})
	}
}

func TestParseModelRef_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "openai:"} {
		if _, err := ParseModelRef(in); err == nil {
			t.Errorf("ParseModelRef(%q): expected error", in)
		}
	}
}

func TestParseModelRefs_SkipsBlanks(t *testing.T) {
	refs, err := ParseModelRefs("openai:gpt-4o, ,gemini:gemini-flash,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[1].String() != "gemini:gemini-flash" {
		t.Fatalf("unexpected second ref %q", refs[1])
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{401, KindAuth},
		{402, KindAccessDenied},
		{403, KindAccessDenied},
		{404, KindAccessDenied},
		{429, KindRateLimited},
		{500, KindTransient},
		{503, KindTransient},
		{0, KindTransient},
	}
	for _, tt := range tests {
		me := classifyStatus(tt.status, 0, errors.New("x"))
		if me.Kind != tt.want {
			t.Errorf("classifyStatus(%d) = %s, want %s", tt.status, me.Kind, tt.want)
		}
	}
}

func TestModelError_ExhaustedMessageListsFailures(t *testing.T) {
	err := &ModelError{
		Kind: KindAllModelsExhausted,
		Failures: []*ModelError{
			{Kind: KindAuth, Model: "openrouter:a"},
			{Kind: KindRateLimited, Model: "openrouter:b"},
		},
	}
	msg := err.Error()
	for _, want := range []string{"openrouter:a: auth", "openrouter:b: rate_limited"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("7"); got != 7*time.Second {
		t.Fatalf("expected 7s, got %v", got)
	}
	if got := parseRetryAfter(""); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := parseRetryAfter("soon"); got != 0 {
		t.Fatalf("expected 0 for garbage, got %v", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error without any API key")
	}

	cfg.OpenRouter.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg = DefaultConfig()
	cfg.Mock = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock config should validate: %v", err)
	}
}

func TestLookupCost(t *testing.T) {
	if c := LookupCost("deepseek/deepseek-r1:free"); c == nil || c.Cost(1000, 1000) != 0 {
		t.Fatalf("expected zero cost for free model, got %+v", c)
	}
	if c := LookupCost("openai/gpt-4o-mini"); c == nil || c.InputPerMTok != 0.15 {
		t.Fatalf("expected vendor-prefixed lookup to resolve, got %+v", c)
	}
	if c := LookupCost("unknown-model"); c != nil {
		t.Fatalf("expected nil for unknown model, got %+v", c)
	}
}
