package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// NewInvokerFromConfig creates an Invoker with every backend that has
// credentials, each wrapped with event logging. Backends referenced by the
// preference list but lacking credentials are left unregistered; the Invoker
// reports them as auth failures and moves on.
func NewInvokerFromConfig(ctx context.Context, cfg Config, events EventAppender, logger *slog.Logger) (*Invoker, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var backends []Provider
	if cfg.Mock {
		backends = append(backends, NewMockProvider().WithFallback(DemoPlan))
		refs := []ModelRef{{Backend: "mock", Model: "demo"}}
		return newLoggedInvoker(backends, refs, cfg, events, logger), nil
	}

	if cfg.OpenRouter.APIKey != "" {
		p, err := NewOpenRouterProvider(cfg.OpenRouter)
		if err != nil {
			return nil, fmt.Errorf("initializing openrouter backend: %w", err)
		}
		backends = append(backends, p)
	}
	if cfg.OpenAI.APIKey != "" {
		p, err := NewOpenAIProvider(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("initializing openai backend: %w", err)
		}
		backends = append(backends, p)
	}
	if cfg.Anthropic.APIKey != "" {
		p, err := NewAnthropicProvider(cfg.Anthropic)
		if err != nil {
			return nil, fmt.Errorf("initializing anthropic backend: %w", err)
		}
		backends = append(backends, p)
	}
	if cfg.Gemini.APIKey != "" {
		p, err := NewGeminiProvider(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini backend: %w", err)
		}
		backends = append(backends, p)
	}

	refs, err := ParseModelRefs(cfg.Models)
	if err != nil {
		return nil, err
	}
	return newLoggedInvoker(backends, refs, cfg, events, logger), nil
}

func newLoggedInvoker(backends []Provider, refs []ModelRef, cfg Config, events EventAppender, logger *slog.Logger) *Invoker {
	wrapped := make([]Provider, 0, len(backends))
	for _, b := range backends {
		if events != nil {
			b = WithLogging(b, events, logger)
		}
		wrapped = append(wrapped, b)
	}
	return NewInvoker(wrapped,
		WithDefaultModels(refs...),
		WithAttemptTimeout(cfg.AttemptTimeout),
		WithInvokerLogger(logger),
	)
}
