package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the backend. Message is whatever the
// server put in its {"message": ...} body, possibly empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("lead API returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ServerMessage extracts the server-provided message from an error chain, or
// "" when the failure carried none (transport errors, blank bodies).
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func decodeError(statusCode int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	// A non-JSON error body is still a failure; keep going with an empty
	// message so the caller falls back down its message chain.
	_ = json.Unmarshal(body, &payload)
	return &APIError{StatusCode: statusCode, Message: payload.Message}
}
