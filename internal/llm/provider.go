package llm

import "context"

// Provider is one LLM backend (OpenRouter, OpenAI, Anthropic, Gemini).
// A Provider can serve any model its backend exposes; the model is chosen
// per request through Request.Model.
type Provider interface {
	// Generate sends a chat-style prompt and returns the model's text.
	// Failures are reported as *ModelError so the Invoker can classify them.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name returns the backend name used in model references, e.g. "openrouter".
	Name() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. Schedule generation sends a
	// single user message.
	Messages []Message

	// Model is the backend-specific model ID. The Invoker fills it from the
	// candidate being tried; providers fall back to their configured default
	// when it is empty.
	Model string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the LLM's output.
type Response struct {
	// Content is the generated text. Reasoning-style models that leave the
	// conventional content field empty have their reasoning text here instead.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// Backend is the provider name that served the request.
	Backend string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string, maxTokens int, temperature float64) Request {
	return Request{
		System:      system,
		Messages:    []Message{{Role: RoleUser, Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}
