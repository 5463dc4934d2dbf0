package handler

import (
	"log/slog"
	"net/http"

	"github.com/hszk-dev/bank/internal/api/middleware"
	"github.com/hszk-dev/bank/internal/usecase"
)

// StatusHandler serves the bank status report.
type StatusHandler struct {
	svc    usecase.StatusService
	logger *slog.Logger
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(svc usecase.StatusService, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{svc: svc, logger: logger}
}

// Get handles GET /status
func (h *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.GetStatus(r.Context())
	if err != nil {
		h.logger.Error("failed to get status",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("error", err.Error()),
		)
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	JSON(w, http.StatusOK, report)
}
