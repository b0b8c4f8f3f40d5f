package state

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrForbidden marks a collaborator response rejected for missing
// permissions. Match with errors.Is.
var ErrForbidden = errors.New("forbidden")

// RequestError is a failed collaborator request, surfaced unchanged; this
// layer never retries.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("state: request failed: %d %s: %s", e.Status, http.StatusText(e.Status), e.Body)
	}
	return fmt.Sprintf("state: request failed: %d %s", e.Status, http.StatusText(e.Status))
}

// Unwrap exposes ErrForbidden for 403 responses.
func (e *RequestError) Unwrap() error {
	if e.Status == http.StatusForbidden {
		return ErrForbidden
	}
	return nil
}

// ValidationError is a local, synchronous input error raised before any
// request is issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "state: invalid input: " + e.Reason }

// StateError reports an operation attempted in the wrong lifecycle state,
// e.g. stopping a poll that was never attached to a message. Raised before
// any request is issued.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string { return "state: " + e.Reason }
