package httpadapter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ads-board/internal/core/domain"
)

// errInvalidJSON marks a request body that is not a JSON object.
var errInvalidJSON = errors.New("invalid JSON body")

// FieldError describes one rejected field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ValidationError is returned when a request body does not match its
// schema. It carries one entry per offending field.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// errorResponse is the envelope for every non-2xx answer.
type errorResponse struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
}

// statusFor maps an error returned by a handler to a status code and the
// message exposed to the client. Unknown errors become 500 with a generic
// message so storage details never leak.
func statusFor(err error) (int, any) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Errors
	case errors.Is(err, errInvalidJSON):
		return http.StatusBadRequest, errInvalidJSON.Error()
	case errors.Is(err, domain.ErrAdNotFound):
		return http.StatusNotFound, domain.ErrAdNotFound.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// writeError logs err and writes the error envelope.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	} else {
		h.logger.Debug("request rejected",
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.Int("status", status),
			slog.Any("error", err))
	}
	h.writeJSON(w, status, errorResponse{Status: "error", Message: message})
}
