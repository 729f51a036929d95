package errors

import (
	"errors"
	"fmt"
)

// DirectoryError represents any failure from the customer directory layer.
// No operation-specific error types are distinguished; callers that need
// finer-grained handling branch on Kind or inspect Cause.
type DirectoryError struct {
	Kind    string
	Message string
	Cause   error
}

func (e *DirectoryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DirectoryError) Unwrap() error {
	return e.Cause
}

// Directory error kinds, classified from the underlying provider failure
const (
	KindNotFound    = "not_found"
	KindValidation  = "validation"
	KindRateLimited = "rate_limited"
	KindTransport   = "transport"
)

// NewDirectoryError creates a new directory error wrapping the underlying
// provider failure
func NewDirectoryError(kind, message string, cause error) *DirectoryError {
	return &DirectoryError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// IsNotFound reports whether err is a directory error for a missing record
func IsNotFound(err error) bool {
	var dirErr *DirectoryError
	if errors.As(err, &dirErr) {
		return dirErr.Kind == KindNotFound
	}
	return false
}
