package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lifebuddy/lifebuddy/internal/config"
	"github.com/lifebuddy/lifebuddy/internal/llm"
	"github.com/lifebuddy/lifebuddy/internal/notify"
	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/store"
	"github.com/spf13/cobra"
)

// runtime is the dependency graph shared by commands.
type runtime struct {
	cfg      *config.Config
	logger   *slog.Logger
	dbPath   string
	store    *store.Store
	notifier progress.Notifier
	engine   *progress.Engine
}

// runtimeOptions tunes openRuntime per command.
type runtimeOptions struct {
	// requireLLM fails startup when no model backend can be built.
	requireLLM bool

	// logTo overrides stderr as the log destination.
	logTo io.Writer
}

// openRuntime loads configuration, opens the store and wires the engine.
// Callers must Close the result.
func openRuntime(cmd *cobra.Command, opts runtimeOptions) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger()
	if opts.logTo != nil {
		logger = cfg.LoggerTo(opts.logTo)
	}
	slog.SetDefault(logger)

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	gen, err := buildGenerator(cmd.Context(), cfg, st, logger)
	if err != nil {
		if opts.requireLLM {
			st.Close()
			return nil, fmt.Errorf("llm not configured: %w", err)
		}
		logger.Debug("plan generation unavailable", "error", err)
		gen = unavailableGenerator{err: err}
	}

	notifier := notify.Fanout{
		notify.NewStoreTrigger(st.NotificationRepo()),
		notify.NewLogTrigger(logger),
	}

	return &runtime{
		cfg:      cfg,
		logger:   logger,
		dbPath:   dbPath,
		store:    st,
		notifier: notifier,
		engine: progress.NewEngine(st.TaskRepo(), gen,
			progress.WithNotifier(notifier),
			progress.WithLogger(logger),
		),
	}, nil
}

func (r *runtime) Close() error {
	return r.store.Close()
}

func buildGenerator(ctx context.Context, cfg *config.Config, st *store.Store, logger *slog.Logger) (progress.Generator, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	inv, err := llm.NewInvokerFromConfig(ctx, cfg.LLM, st.EventRepo(), logger)
	if err != nil {
		return nil, err
	}
	return schedule.New(inv, cfg.Schedule, logger), nil
}

// unavailableGenerator stands in when no backend is configured, so read-only
// commands still work and generation fails with a clear error.
type unavailableGenerator struct {
	err error
}

func (u unavailableGenerator) Generate(context.Context, schedule.GenerateInput) (*schedule.Result, error) {
	return nil, &schedule.GenerationError{Kind: schedule.ModelUnavailable, Err: u.err}
}
