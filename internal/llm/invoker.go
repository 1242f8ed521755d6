package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// DefaultBackend is assumed for model references without a "backend:" prefix.
const DefaultBackend = "openrouter"

// ModelRef names one candidate model as "backend:model".
type ModelRef struct {
	Backend string
	Model   string
}

// ParseModelRef splits "backend:model" on the first colon. Model IDs may
// themselves contain colons (e.g. "openrouter:deepseek/deepseek-r1:free").
// A reference without a known backend prefix is treated as an OpenRouter model.
func ParseModelRef(s string) (ModelRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModelRef{}, fmt.Errorf("empty model reference")
	}
	backend, model, ok := strings.Cut(s, ":")
	if !ok || !knownBackends[backend] {
		return ModelRef{Backend: DefaultBackend, Model: s}, nil
	}
	if model == "" {
		return ModelRef{}, fmt.Errorf("model reference %q has no model", s)
	}
	return ModelRef{Backend: backend, Model: model}, nil
}

// ParseModelRefs parses a comma-separated preference list, skipping blanks.
func ParseModelRefs(s string) ([]ModelRef, error) {
	var refs []ModelRef
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		ref, err := ParseModelRef(part)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (r ModelRef) String() string {
	return r.Backend + ":" + r.Model
}

var knownBackends = map[string]bool{
	"openrouter": true,
	"openai":     true,
	"anthropic":  true,
	"gemini":     true,
	"mock":       true,
}

// Invoker sends a prompt to an ordered list of candidate models and returns
// the first usable response. Every per-model failure advances to the next
// candidate; only when all have failed does Invoke return an error.
type Invoker struct {
	backends       map[string]Provider
	defaults       []ModelRef
	attemptTimeout time.Duration
	logger         *slog.Logger
}

// InvokerOption configures an Invoker.
type InvokerOption func(*Invoker)

// WithAttemptTimeout bounds each model attempt. Zero disables the bound.
func WithAttemptTimeout(d time.Duration) InvokerOption {
	return func(inv *Invoker) { inv.attemptTimeout = d }
}

// WithDefaultModels sets the preference list used when a call passes none.
func WithDefaultModels(refs ...ModelRef) InvokerOption {
	return func(inv *Invoker) { inv.defaults = refs }
}

// WithInvokerLogger sets the logger. Defaults to slog.Default().
func WithInvokerLogger(l *slog.Logger) InvokerOption {
	return func(inv *Invoker) { inv.logger = l }
}

// NewInvoker builds an Invoker over the given backends, keyed by Name().
func NewInvoker(backends []Provider, opts ...InvokerOption) *Invoker {
	inv := &Invoker{
		backends:       make(map[string]Provider, len(backends)),
		attemptTimeout: DefaultAttemptTimeout,
		logger:         slog.Default(),
	}
	for _, b := range backends {
		inv.backends[b.Name()] = b
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Register adds or replaces a backend.
func (inv *Invoker) Register(p Provider) {
	inv.backends[p.Name()] = p
}

// Defaults returns the default preference list.
func (inv *Invoker) Defaults() []ModelRef {
	return append([]ModelRef(nil), inv.defaults...)
}

// Invoke tries each model in prefs (or the defaults when prefs is empty) in
// order. req.Model is overwritten with each candidate's model ID.
func (inv *Invoker) Invoke(ctx context.Context, req Request, prefs []ModelRef) (*Response, error) {
	candidates := prefs
	if len(candidates) == 0 {
		candidates = inv.defaults
	}
	if len(candidates) == 0 {
		return nil, &ModelError{Kind: KindAllModelsExhausted, Err: errNoCandidates}
	}

	var failures []*ModelError
	for _, ref := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := inv.try(ctx, req, ref)
		if err == nil {
			inv.logger.InfoContext(ctx, "llm request served",
				"model", ref.String(),
				"purpose", PurposeFrom(ctx),
				"attempts", len(failures)+1,
				"output_tokens", resp.Usage.OutputTokens)
			return resp, nil
		}

		// The caller gave up; the per-attempt timeout did not fire.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		me := asModelError(err, ref)
		failures = append(failures, me)
		inv.logFailure(ctx, me)
	}

	return nil, &ModelError{
		Kind:     KindAllModelsExhausted,
		Failures: failures,
		Err:      failures[len(failures)-1],
	}
}

func (inv *Invoker) try(ctx context.Context, req Request, ref ModelRef) (*Response, error) {
	backend, ok := inv.backends[ref.Backend]
	if !ok {
		return nil, &ModelError{
			Kind:  KindAuth,
			Model: ref.String(),
			Err:   fmt.Errorf("backend %q is not configured", ref.Backend),
		}
	}

	attemptCtx := ctx
	if inv.attemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, inv.attemptTimeout)
		defer cancel()
	}

	req.Model = ref.Model
	resp, err := backend.Generate(attemptCtx, req)
	if err != nil {
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, &ModelError{
				Kind:  KindTransient,
				Model: ref.String(),
				Err:   fmt.Errorf("attempt timed out after %s: %w", inv.attemptTimeout, err),
			}
		}
		return nil, err
	}
	if strings.TrimSpace(resp.Content) == "" {
		return nil, &ModelError{Kind: KindTransient, Model: ref.String(), Err: errEmptyResponse}
	}
	if resp.Backend == "" {
		resp.Backend = ref.Backend
	}
	if resp.Model == "" {
		resp.Model = ref.Model
	}
	return resp, nil
}

func (inv *Invoker) logFailure(ctx context.Context, me *ModelError) {
	attrs := []any{"model", me.Model, "kind", me.Kind.String(), "error", me.Err}
	if me.StatusCode != 0 {
		attrs = append(attrs, "status", me.StatusCode)
	}
	if me.RetryAfter > 0 {
		attrs = append(attrs, "retry_after", me.RetryAfter)
	}
	if me.Kind == KindAuth {
		inv.logger.ErrorContext(ctx, "llm credential rejected, trying next model", attrs...)
		return
	}
	inv.logger.WarnContext(ctx, "llm model failed, trying next model", attrs...)
}
