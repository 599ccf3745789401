package service

import (
	"errors"
	"fmt"
)

// Error kinds surfaced at the service boundary. Storage detail never leaks
// past here.
var (
	// ErrInvalidCredentials covers both "unknown user" and "wrong password"
	// so login failures never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidOTP covers wrong, expired and already-consumed codes alike.
	ErrInvalidOTP = errors.New("invalid or expired otp code")

	// ErrNotFound covers missing resources and resources owned by someone
	// else, so ownership cannot be probed through error kinds.
	ErrNotFound = errors.New("resource not found")

	// ErrDeliveryFailed means the email transport failed after the OTP record
	// was already persisted.
	ErrDeliveryFailed = errors.New("failed to send the verification email")
)

// ValidationError is a field-tagged, recoverable input error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
