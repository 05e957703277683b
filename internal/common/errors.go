// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// Storage errors.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCorruptData        = errors.New("corrupt data")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError reports every rule a transaction input violated.
// Callers reject the input wholesale; it is never partially applied.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "invalid transaction: " + e.Violations[0]
	}
	return fmt.Sprintf("invalid transaction: %d problems: %s",
		len(e.Violations), strings.Join(e.Violations, "; "))
}

// NewValidationError creates a ValidationError from the collected violations.
// Returns nil when there are none, so it can be returned directly.
func NewValidationError(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
