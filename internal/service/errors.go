package service

import (
	"errors"
	"fmt"
)

var (
	ErrUserExists          = errors.New("User already exists with this email")
	ErrInvalidCredentials  = errors.New("Invalid email or password")
	ErrUserNotFound        = errors.New("User not found")
	ErrProfileNotFound     = errors.New("Social profile not found")
	ErrPostNotFound        = errors.New("Post not found")
	ErrContentNotFound     = errors.New("Content library item not found")
	ErrOAuthNotConfigured  = errors.New("Google login is not configured")
	ErrInvalidOAuthState   = errors.New("Invalid OAuth state")
	ErrUnsupportedFileType = errors.New("Unsupported file type")
)

// ValidationError is a request that is well-formed JSON but breaks a rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ExternalServiceError wraps a failure from a third-party API.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
