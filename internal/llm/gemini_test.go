package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExtractGeminiContent_ThoughtFallback(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role: "model",
				Parts: []*genai.Part{
					{Text: "Day 1: reasoning only", Thought: true},
				},
			},
		}},
	}
	if got := extractGeminiContent(result); got != "Day 1: reasoning only" {
		t.Fatalf("expected thought text, got %q", got)
	}
}

func TestMapGeminiError(t *testing.T) {
	err := mapGeminiError(&genai.APIError{Code: 429, Message: "quota"})
	if !IsKind(err, KindRateLimited) {
		t.Fatalf("expected rate limit, got %v", err)
	}
	err = mapGeminiError(&genai.APIError{Code: 403, Message: "denied"})
	if !IsKind(err, KindAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}
