package pathfinder

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownNode    = errors.New("unknown node")
)

// RequestError reports a malformed request with enough detail to identify
// the offending field. It matches ErrInvalidRequest under errors.Is.
type RequestError struct {
	Field string // request field that failed (e.g. "mandatory_metrics")
	Cause error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid request: %s: %v", e.Field, e.Cause)
	}
	return fmt.Sprintf("invalid request: %v", e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error or its cause.
func (e *RequestError) Is(target error) bool {
	return target == ErrInvalidRequest || errors.Is(e.Cause, target)
}

func invalidf(field, format string, args ...any) error {
	return &RequestError{Field: field, Cause: fmt.Errorf(format, args...)}
}
