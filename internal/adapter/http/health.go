package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const healthTimeout = 2 * time.Second

// handleHealth reports 200 when storage answers a ping and 503 otherwise.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.svc.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Status: "error", Message: "storage unavailable"})
		return
	}
	h.writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
