package course

import (
	"errors"
	"fmt"
)

// StatusError reports a non-2xx response from the course-listing service.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// TransportError reports a request that never produced a response:
// connection refused, DNS failure, timeout, or a body that could not be read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a response body that is not a JSON array of courses.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid course list: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FailureMessage returns the human-readable text shown for a failed load.
// Every failure kind collapses to a single message string.
func FailureMessage(err error) string {
	if err == nil {
		return "unknown error"
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	return err.Error()
}
