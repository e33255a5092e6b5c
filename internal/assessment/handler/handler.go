package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	assessmentmetrics "permitly/internal/assessment/metrics"
	"permitly/internal/assessment/models"
	"permitly/internal/platform/middleware"
	"permitly/pkg/platform/httputil"
)

// Service defines the assessment operations the handler exposes.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Assess(ctx context.Context, profile models.BusinessProfile) (*models.AssessmentResult, error)
	ReloadRules(ctx context.Context) (int, error)
}

type Handler struct {
	service Service
	metrics *assessmentmetrics.Metrics
	logger  *slog.Logger
}

// New creates an assessment handler. metrics may be nil in tests.
func New(service Service, m *assessmentmetrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{service: service, metrics: m, logger: logger}
}

// Register mounts the public assessment endpoint.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/assess", h.HandleAssess)
}

// RegisterAdmin mounts admin endpoints; callers wrap them with the admin
// token middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/admin/rules/reload", h.HandleReloadRules)
}

// HandleAssess evaluates a business profile against the rule corpus.
// Validation failures reject the request before any matching; after that the
// request cannot fail.
func (h *Handler) HandleAssess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.AssessRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		if h.metrics != nil {
			h.metrics.ValidationFailures.Inc()
		}
		return
	}

	result, err := h.service.Assess(ctx, req.Profile())
	if err != nil {
		h.logger.ErrorContext(ctx, "assessment failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// ReloadResponse reports the rule count after a successful corpus reload.
type ReloadResponse struct {
	Rules int `json:"rules"`
}

// HandleReloadRules atomically replaces the rule corpus from its source.
// On failure the previous corpus stays in effect and the error is reported.
func (h *Handler) HandleReloadRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	count, err := h.service.ReloadRules(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "rule reload failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ReloadResponse{Rules: count})
}
