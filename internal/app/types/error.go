package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequestField = errors.New("invalid request field")
	ErrNotFound            = errors.New("not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrUnauthenticated     = errors.New("unauthenticated")

	// ErrValidation marks drafts rejected locally, before any request.
	ErrValidation = errors.New("validation failed")
	// ErrNetwork marks requests that never completed.
	ErrNetwork = errors.New("network error")
	// ErrApplication marks requests the backend answered with ok:false.
	ErrApplication = errors.New("application error")
)

func NewErrInvalidRequestField(err string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequestField, err)
}

func NewErrNotFound(obj string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, obj)
}

func NewErrPermissionDenied(operation string) error {
	return fmt.Errorf("%w: %s", ErrPermissionDenied, operation)
}

// ValidationError carries the single message shown for a rejected draft.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrNetwork, e.Err)
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// ApplicationError is an ok:false answer. Message is the server-supplied
// text and may be empty.
type ApplicationError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, ErrApplication, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s (status %d): %s", e.Op, ErrApplication, e.StatusCode, e.Message)
}

func (e *ApplicationError) Unwrap() error {
	return ErrApplication
}

// ServerMessage returns the text supplied by the backend, or fallback.
func ServerMessage(err error, fallback string) string {
	var appErr *ApplicationError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
