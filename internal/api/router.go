// Package api wires HTTP routes and middleware for the bank service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hszk-dev/bank/internal/api/handler"
	"github.com/hszk-dev/bank/internal/api/middleware"
)

// NewRouter builds the service router.
func NewRouter(logger *slog.Logger, status *handler.StatusHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/health", handler.Health)
	r.Get("/status", status.Get)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
