package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ads-board/internal/core/port"
)

// adPath matches a single ad. Non-numeric ids never reach the handlers.
const adPath = "/ads/{id:[0-9]+}"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use case to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc     port.AdUseCase
	logger  *slog.Logger
	metrics *metrics
	router  chi.Router
}

// handlerFunc is an HTTP handler that reports failure as an error. The
// error is turned into a status code and JSON envelope by Handler.handle.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// NewHandler creates a handler with all routes configured. Request metrics
// are registered on reg and served from /metrics.
func NewHandler(svc port.AdUseCase, logger *slog.Logger, reg *prometheus.Registry) *Handler {
	h := &Handler{svc: svc, logger: logger, metrics: newMetrics(reg)}
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(h.logRequests)
	r.Use(h.metrics.instrument)
	r.Use(h.recoverPanics)

	r.Post("/ads", h.handle(h.createAd))
	r.Get(adPath, h.handle(h.getAd))
	r.Patch(adPath, h.handle(h.updateAd))
	r.Delete(adPath, h.handle(h.deleteAd))

	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
