package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common business logic failures.
var (
	ErrNotFound           = errors.New("requested resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	ErrValidation         = errors.New("validation failed")
)

// FieldError reports a missing or malformed field of an inbound request.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets callers match any FieldError with errors.Is(err, ErrValidation).
func (e *FieldError) Unwrap() error {
	return ErrValidation
}
