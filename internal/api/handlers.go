package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/lifebuddy/lifebuddy/internal/llm"
	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/store"
)

// UserContextRequest is opaque profile data interpolated into prompts.
type UserContextRequest struct {
	Timezone               string `json:"timezone" validate:"omitempty,timezone"`
	SubscriptionTier       string `json:"subscriptionTier" validate:"omitempty,max=50"`
	NotificationPreference string `json:"notificationPreference" validate:"omitempty,oneof=email push sms in_app none"`
}

type CreateTaskRequest struct {
	Title        string             `json:"title" validate:"required,max=200"`
	Description  string             `json:"description" validate:"max=2000"`
	Requirements string             `json:"requirements" validate:"max=2000"`
	StartDate    string             `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string             `json:"endDate" validate:"required,datetime=2006-01-02"`
	UserContext  UserContextRequest `json:"userContext"`
	Consent      bool               `json:"consent"`
	Models       []string           `json:"models" validate:"omitempty,max=8,dive,modelref"`
}

type MarkDayRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Status string `json:"status" validate:"required,oneof=completed skipped"`
}

type MarkDayResponse struct {
	Task    *progress.Task `json:"task"`
	Warning *Warning       `json:"warning,omitempty"`
}

type ListTasksResponse struct {
	UserID string           `json:"userId"`
	Tasks  []*progress.Task `json:"tasks"`
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())

	var req CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)

	var models []llm.ModelRef
	for _, m := range req.Models {
		ref, _ := llm.ParseModelRef(m)
		models = append(models, ref)
	}

	task, err := s.tasks.CreateTask(r.Context(), progress.CreateInput{
		UserID:       userIDFrom(r.Context()),
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		StartDate:    start,
		EndDate:      end,
		UserContext: schedule.UserContext{
			Timezone:               req.UserContext.Timezone,
			SubscriptionTier:       req.UserContext.SubscriptionTier,
			NotificationPreference: req.UserContext.NotificationPreference,
		},
		Consent: req.Consent,
		Models:  models,
	})
	if err != nil {
		s.writeServiceError(w, logger, "create task", err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID := userIDFrom(r.Context())

	tasks, err := s.tasks.ListByUser(r.Context(), userID)
	if err != nil {
		s.writeServiceError(w, logger, "list tasks", err)
		return
	}
	if tasks == nil {
		tasks = []*progress.Task{}
	}
	writeJSON(w, http.StatusOK, ListTasksResponse{UserID: userID, Tasks: tasks})
}

func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())

	task, ok := s.ownedTask(w, r, logger)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) MarkDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())

	var req MarkDayRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if _, ok := s.ownedTask(w, r, logger); !ok {
		return
	}
	date, _ := time.Parse(time.DateOnly, req.Date)

	task, err := s.tasks.MarkDay(r.Context(), chi.URLParam(r, "id"), date, schedule.Status(req.Status))
	if err != nil {
		var pe *progress.ProgressionError
		if task != nil && errors.As(err, &pe) && pe.Kind == progress.KindRegenerationFailed {
			logger.Warn("skip recorded without a new plan", slog.String("error", err.Error()))
			writeJSON(w, http.StatusOK, MarkDayResponse{
				Task:    task,
				Warning: &Warning{Code: progress.KindRegenerationFailed.String(), Message: pe.UserMessage()},
			})
			return
		}
		s.writeServiceError(w, logger, "mark day", err)
		return
	}

	writeJSON(w, http.StatusOK, MarkDayResponse{Task: task})
}

func (s *Server) Regenerate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())

	if _, ok := s.ownedTask(w, r, logger); !ok {
		return
	}
	task, err := s.tasks.Regenerate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, logger, "regenerate", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// ownedTask loads the {id} task and hides tasks owned by someone else.
func (s *Server) ownedTask(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*progress.Task, bool) {
	task, err := s.tasks.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, logger, "get task", err)
		return nil, false
	}
	if task.UserID != userIDFrom(r.Context()) {
		writeError(w, http.StatusNotFound, "task_not_found", "task not found")
		return nil, false
	}
	return task, true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", describeValidation(err))
		return false
	}
	return true
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// writeServiceError maps engine and generator errors to HTTP replies.
func (s *Server) writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var (
		pe *progress.ProgressionError
		ge *schedule.GenerationError
	)
	switch {
	case errors.Is(err, progress.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "task_not_found", "task not found")
	case errors.As(err, &pe) && pe.Kind == progress.KindNotFound:
		writeError(w, http.StatusNotFound, pe.Kind.String(), pe.UserMessage())
	case errors.As(err, &pe) && pe.Kind == progress.KindAlreadyMarked:
		writeError(w, http.StatusConflict, pe.Kind.String(), pe.UserMessage())
	case errors.Is(err, store.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", "the task changed while saving; reload and try again")
	case errors.As(err, &pe) && pe.Kind == progress.KindRegenerationFailed:
		logger.Error(op+" failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, pe.Kind.String(), pe.UserMessage())
	case errors.As(err, &ge) && ge.Kind == schedule.InvalidSchedule:
		logger.Error(op+" failed", slog.String("error", err.Error()))
		writeError(w, http.StatusUnprocessableEntity, ge.Kind.String(), ge.UserMessage())
	case errors.As(err, &ge) && ge.Kind == schedule.ModelUnavailable:
		logger.Error(op+" failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, ge.Kind.String(), ge.UserMessage())
	case errors.Is(err, progress.ErrConsentRequired),
		errors.Is(err, progress.ErrInvalidInput),
		errors.Is(err, progress.ErrInvalidStatus),
		errors.Is(err, schedule.ErrInvalidRange):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		logger.Error(op+" failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
