package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	client := openai.NewClientWithConfig(config)

	return &OpenAIProvider{
		client: client,
		model:  "gpt-4o-mini",
	}
}

func writeChatCompletion(w http.ResponseWriter, message map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{"index": 0, "message": message, "finish_reason": "stop"},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	})
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	var gotModel string
	handler := func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		gotModel, _ = body["model"].(string)
		writeChatCompletion(w, map[string]any{
			"role":    "assistant",
			"content": "Day 1: Warm up\nTitle: Basics",
		})
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a planning coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Plan my week."}},
		Model:     "gpt-4o",
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotModel != "gpt-4o" {
		t.Fatalf("expected request model gpt-4o, got %q", gotModel)
	}
	if resp.Content != "Day 1: Warm up\nTitle: Basics" {
		t.Fatalf("unexpected content %q", resp.Content)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Fatalf("unexpected usage %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
}

func TestOpenAIProvider_ReasoningContentFallback(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		writeChatCompletion(w, map[string]any{
			"role":              "assistant",
			"content":           "",
			"reasoning_content": "Day 1: Think first",
		})
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "Day 1: Think first" {
		t.Fatalf("expected reasoning fallback, got %q", resp.Content)
	}
}

func TestOpenAIProvider_ErrorClassification(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusUnauthorized, KindAuth},
		{http.StatusPaymentRequired, KindAccessDenied},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusInternalServerError, KindTransient},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			handler := func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{
						"type":    "error",
						"message": "nope",
					},
				})
			}

			p := newTestOpenAIProvider(t, handler)
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				MaxTokens: 100,
			})
			if !IsKind(err, tt.want) {
				t.Fatalf("expected %s, got: %T (%v)", tt.want, err, err)
			}
		})
	}
}

func TestOpenAIProvider_Name(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o-mini"}
	if p.Name() != "openai" {
		t.Fatalf("expected 'openai', got %q", p.Name())
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Fatal("expected error without API key")
	}
}
