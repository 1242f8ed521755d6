// Package api exposes task creation and progression over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
)

// TaskService is the progression surface the handlers drive.
// *progress.Engine satisfies it.
type TaskService interface {
	CreateTask(ctx context.Context, in progress.CreateInput) (*progress.Task, error)
	Get(ctx context.Context, taskID string) (*progress.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*progress.Task, error)
	MarkDay(ctx context.Context, taskID string, dayDate time.Time, status schedule.Status) (*progress.Task, error)
	Regenerate(ctx context.Context, taskID string) (*progress.Task, error)
}

// Server routes /api/v1 requests to a TaskService.
type Server struct {
	mx             *chi.Mux
	tasks          TaskService
	logger         *slog.Logger
	requestTimeout time.Duration
}

// Options configures a Server.
type Options struct {
	Tasks  TaskService
	Logger *slog.Logger

	// RequestTimeout bounds each request. Zero means no bound.
	RequestTimeout time.Duration
}

// New creates a Server with its routes mounted.
func New(opts Options) *Server {
	initValidator()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		mx:             chi.NewMux(),
		tasks:          opts.Tasks,
		logger:         logger,
		requestTimeout: opts.RequestTimeout,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.LoggerMiddleware)

	s.mx.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.UserMiddleware)
		r.Use(s.TimeoutMiddleware)

		r.Post("/tasks", s.CreateTask)
		r.Get("/tasks", s.ListTasks)
		r.Route("/tasks/{id}", func(r chi.Router) {
			r.Get("/", s.GetTask)
			r.Post("/days", s.MarkDay)
			r.Post("/regenerate", s.Regenerate)
		})
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
