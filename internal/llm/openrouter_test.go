package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestOpenRouterProvider(t *testing.T, handler http.HandlerFunc) *OpenRouterProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:   "or-key",
		Model:    "deepseek/deepseek-r1:free",
		BaseURL:  server.URL + "/api/v1/",
		SiteURL:  "https://lifebuddy.test",
		SiteName: "Lifebuddy Test",
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func TestOpenRouterProvider_SendsHeadersAndBody(t *testing.T) {
	var (
		gotPath, gotAuth, gotReferer, gotTitle string
		gotBody                                map[string]any
	)
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotReferer = r.Header.Get("HTTP-Referer")
		gotTitle = r.Header.Get("X-Title")
		json.NewDecoder(r.Body).Decode(&gotBody)
		writeChatCompletion(w, map[string]any{"role": "assistant", "content": "Day 1: Go"})
	}

	p := newTestOpenRouterProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:      "sys",
		Messages:    []Message{{Role: RoleUser, Content: "plan"}},
		Model:       "meta-llama/llama-3.3-70b-instruct:free",
		MaxTokens:   512,
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "Day 1: Go" || resp.Backend != "openrouter" {
		t.Fatalf("unexpected response %+v", resp)
	}

	if gotPath != "/api/v1/chat/completions" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer or-key" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
	if gotReferer != "https://lifebuddy.test" || gotTitle != "Lifebuddy Test" {
		t.Errorf("missing identification headers: referer=%q title=%q", gotReferer, gotTitle)
	}
	if gotBody["model"] != "meta-llama/llama-3.3-70b-instruct:free" {
		t.Errorf("unexpected model %v", gotBody["model"])
	}
	if gotBody["max_tokens"] != float64(512) {
		t.Errorf("unexpected max_tokens %v", gotBody["max_tokens"])
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 2 {
		t.Errorf("expected system + user messages, got %d", len(msgs))
	}
}

func TestOpenRouterProvider_ContentPreference(t *testing.T) {
	tests := []struct {
		name    string
		message map[string]any
		want    string
	}{
		{"content wins", map[string]any{"content": "A", "reasoning": "B"}, "A"},
		{"reasoning when content empty", map[string]any{"content": "", "reasoning": "B"}, "B"},
		{"reasoning when content blank", map[string]any{"content": "  \n", "reasoning": "B"}, "B"},
		{"reasoning_content last", map[string]any{"content": nil, "reasoning_content": "C"}, "C"},
		{"nothing usable", map[string]any{"content": ""}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestOpenRouterProvider(t, func(w http.ResponseWriter, r *http.Request) {
				writeChatCompletion(w, tt.message)
			})
			resp, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Content != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, resp.Content)
			}
		})
	}
}

func TestOpenRouterProvider_StatusClassification(t *testing.T) {
	tests := []struct {
		status     int
		retryAfter string
		want       ErrorKind
	}{
		{http.StatusUnauthorized, "", KindAuth},
		{http.StatusPaymentRequired, "", KindAccessDenied},
		{http.StatusForbidden, "", KindAccessDenied},
		{http.StatusNotFound, "", KindAccessDenied},
		{http.StatusTooManyRequests, "5", KindRateLimited},
		{http.StatusBadGateway, "", KindTransient},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			p := newTestOpenRouterProvider(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": "upstream said no", "code": tt.status},
				})
			})
			_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
			if !IsKind(err, tt.want) {
				t.Fatalf("expected %s, got %v", tt.want, err)
			}
			me := err.(*ModelError)
			if me.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, me.StatusCode)
			}
			if tt.want == KindRateLimited && me.RetryAfter != 5*time.Second {
				t.Fatalf("expected retry-after 5s, got %v", me.RetryAfter)
			}
		})
	}
}

func TestOpenRouterProvider_ErrorInsideOKBody(t *testing.T) {
	p := newTestOpenRouterProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "provider returned error", "code": 429},
		})
	})
	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	if !IsKind(err, KindRateLimited) {
		t.Fatalf("expected rate limit from embedded error, got %v", err)
	}
}

func TestOpenRouterProvider_MalformedBody(t *testing.T) {
	p := newTestOpenRouterProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway</html>"))
	})
	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	if !IsKind(err, KindTransient) {
		t.Fatalf("expected transient, got %v", err)
	}
}

func TestNewOpenRouterProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
