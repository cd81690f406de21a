package apperr

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError accumulates per-field messages so the caller sees every
// violated constraint at once, not just the first one hit.
type ValidationError map[string][]string

func NewValidation() ValidationError {
	return make(ValidationError)
}

// Add records a message for a field.
func (e ValidationError) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether a field has any recorded violations.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// ErrOrNil returns e as an error when it holds violations, nil otherwise.
// Lets validation code build up the map and return it in one statement.
func (e ValidationError) ErrOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AuthError means the request carries no usable session (HTTP 401).
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func Unauthorized(message string) *AuthError {
	return &AuthError{Message: message}
}

// PermissionError means the session is valid but the role or ownership
// check failed (HTTP 403).
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

func Forbidden(message string) *PermissionError {
	return &PermissionError{Message: message}
}

// NotFoundError means the referenced record does not exist (HTTP 404).
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// InvalidStateError means the record exists but its current state disallows
// the requested transition (HTTP 409).
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

func InvalidState(format string, args ...any) *InvalidStateError {
	return &InvalidStateError{Message: fmt.Sprintf(format, args...)}
}
