package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the error envelope returned by the ads API for 4xx/5xx.
// Message is either a string or a list of field errors.
type APIError struct {
	Status  int
	Message json.RawMessage
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	var text string
	if err := json.Unmarshal(e.Message, &text); err == nil && text != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, text)
	}
	if len(e.Message) > 0 {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: %d %s", e.Status, http.StatusText(e.Status))
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func decodeError(resp response) error {
	var envelope struct {
		Status  string          `json:"status"`
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(resp.Body, &envelope); err != nil || envelope.Status != "error" {
		return &APIError{Status: resp.Status}
	}
	return &APIError{Status: resp.Status, Message: envelope.Message}
}
