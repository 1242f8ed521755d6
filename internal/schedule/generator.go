package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lifebuddy/lifebuddy/internal/llm"
)

// Invoker sends a prompt down a model cascade. *llm.Invoker satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, req llm.Request, prefs []llm.ModelRef) (*llm.Response, error)
}

// GenerateInput is everything a plan is generated from.
type GenerateInput struct {
	Title        string
	Description  string
	Requirements string
	StartDate    time.Time
	EndDate      time.Time
	UserContext  UserContext

	// Models overrides Config.Models for this request.
	Models []llm.ModelRef

	// Config replaces the generator's policy for this request.
	Config *Config
}

// Result is a validated plan plus how it was produced.
type Result struct {
	Days     []DayPlan
	DayCount int

	// Source is SourceInitial or SourceRetry.
	Source string

	// Model is the "backend:model" that produced the accepted text.
	Model    string
	Attempts int
}

// Generator turns a goal into a validated plan.
type Generator struct {
	invoker Invoker
	config  Config
	logger  *slog.Logger
}

// New creates a Generator. A nil logger means slog.Default().
func New(invoker Invoker, cfg Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{invoker: invoker, config: cfg, logger: logger}
}

// Generate produces a plan of DayCount(StartDate, EndDate) days. It makes at
// most two passes: a detailed prompt, then a strict one if the first output
// did not parse. A failed model cascade ends generation immediately.
func (g *Generator) Generate(ctx context.Context, in GenerateInput) (*Result, error) {
	dayCount, err := DayCount(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	cfg := g.config
	if in.Config != nil {
		cfg = *in.Config
	}
	models := cfg.Models
	if len(in.Models) > 0 {
		models = in.Models
	}

	attempts := cfg.attempts()
	var lastParse *ParseError

	for attempt := 1; attempt <= attempts; attempt++ {
		variant, source := promptDetailed, SourceInitial
		maxTokens, temperature, minWords := cfg.MaxTokens, cfg.Temperature, cfg.MinWordsPerDay
		if attempt > 1 {
			variant, source = promptStrict, SourceRetry
			maxTokens, temperature, minWords = cfg.StrictMaxTokens, cfg.StrictTemperature, cfg.StrictMinWordsPerDay
		}

		prompt := buildPrompt(variant, promptInput{
			Title:        in.Title,
			Description:  in.Description,
			Requirements: in.Requirements,
			StartDate:    in.StartDate,
			DayCount:     dayCount,
			UserContext:  in.UserContext,
			MinWords:     minWords,
		})

		resp, err := g.invoker.Invoke(ctx, llm.UserPrompt(systemPrompt, prompt, maxTokens, temperature), models)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("generate schedule: %w", ctxErr)
			}
			if !llm.IsKind(err, llm.KindAllModelsExhausted) {
				// Invokers only fail with exhaustion; anything else is a bug
				// upstream but is still a model failure from here.
				g.logger.WarnContext(ctx, "unexpected invoker error", "error", err)
			}
			return nil, &GenerationError{Kind: ModelUnavailable, Attempts: attempt, Err: err}
		}

		days, perr := Parse(resp.Content, dayCount, in.StartDate)
		if perr == nil {
			perr = ValidatePlan(days, in.StartDate, cfg.Validators)
		}
		if perr != nil {
			lastParse = perr
			g.logger.WarnContext(ctx, "schedule output rejected",
				"attempt", attempt,
				"kind", perr.Kind.String(),
				"model", modelName(resp),
				"error", perr.Error())
			continue
		}

		days[0].PrerequisiteMet = true
		g.logger.InfoContext(ctx, "schedule generated",
			"days", dayCount,
			"attempt", attempt,
			"model", modelName(resp))

		return &Result{
			Days:     days,
			DayCount: dayCount,
			Source:   source,
			Model:    modelName(resp),
			Attempts: attempt,
		}, nil
	}

	return nil, &GenerationError{Kind: InvalidSchedule, Attempts: attempts, Err: lastParse}
}

func modelName(resp *llm.Response) string {
	if resp.Backend == "" {
		return resp.Model
	}
	return resp.Backend + ":" + resp.Model
}
