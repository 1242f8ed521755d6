package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lifebuddy/lifebuddy/internal/store"
)

// EventAppender records LLM request events. store.EventRepo satisfies it.
type EventAppender interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner  Provider
	events EventAppender
	logger *slog.Logger
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, events EventAppender, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, events: events, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Backend:     l.inner.Name(),
		Model:       req.Model,
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = resp.Content
	}

	if err != nil {
		data.ErrorMessage = err.Error()
		var me *ModelError
		if errors.As(err, &me) {
			data.ErrorKind = me.Kind.String()
		}
	}

	// The attempt may have timed out; record it anyway.
	recordCtx := context.WithoutCancel(ctx)
	if logErr := l.events.AppendLLMRequest(recordCtx, data); logErr != nil {
		l.logger.WarnContext(ctx, "failed to log LLM request event", "error", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) Name() string {
	return l.inner.Name()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}
