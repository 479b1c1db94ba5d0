package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Handlers map these onto HTTP
// status codes; repositories and usecases wrap them with context via %w.
var (
	// ErrForbidden means the authorization predicate failed: the acting
	// user is neither the trip's author nor a collaborator, or attempted
	// an author-only operation.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means a referenced trip, route or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means the operation would violate uniqueness, such as a
	// duplicate collaborator or an already registered email.
	ErrConflict = errors.New("conflict")
)

// ValidationError carries field-level detail for a rejected payload
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation creates a validation error for a specific field
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a validation failure and returns it
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
