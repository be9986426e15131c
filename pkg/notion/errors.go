package notion

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when a call is attempted without a
	// token. No network I/O happens in that case.
	ErrNotConfigured = errors.New("notion: client not configured")

	// ErrUnauthorized marks a rejected token (HTTP 401).
	ErrUnauthorized = errors.New("notion: unauthorized")

	// ErrUnreachable marks transport-level failures, kept distinct from
	// invalid credentials so callers can tell the two apart.
	ErrUnreachable = errors.New("notion: service unreachable")
)

// APIError is a non-401 error response from the Notion API.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("notion: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("notion: request failed (status %d)", e.Status)
}
