package protocol

import (
	"errors"
	"fmt"
)

// Error types for frame parsing and waveform generation

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeConfiguration indicates an invalid protocol setup (unknown
	// probe selection, non-positive frequency)
	ErrTypeConfiguration ErrorType = iota
	// ErrTypeParse indicates a payload parsing error (payload too short,
	// non-hex characters, negative bit offset)
	ErrTypeParse
	// ErrTypeValidation indicates invalid user-supplied input outside the
	// payload itself (interactive mode selections, out-of-range values)
	ErrTypeValidation
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeConfiguration:
		return "Configuration Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error represents a failure raised by the frame model. All failures are
// raised synchronously at the point of detection; none are retried, since
// the transform is deterministic and only corrected input can recover.
type Error struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(message string) *Error {
	return &Error{
		Type:    ErrTypeConfiguration,
		Message: message,
	}
}

// NewParseError creates a payload parsing error
func NewParseError(message string, err error) *Error {
	return &Error{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *Error {
	return &Error{
		Type:    ErrTypeValidation,
		Message: message,
	}
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return hasType(err, ErrTypeConfiguration)
}

// IsParseError checks if an error is a payload parsing error
func IsParseError(err error) bool {
	return hasType(err, ErrTypeParse)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrTypeValidation)
}

func hasType(err error, et ErrorType) bool {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Type == et
	}
	return false
}
