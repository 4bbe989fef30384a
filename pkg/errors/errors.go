// Package errors provides typed errors for devai
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrGit indicates a git command error
	ErrGit
	// ErrUpstream indicates a completion provider error
	ErrUpstream
	// ErrTimeout indicates a summarization unit exceeded its deadline
	ErrTimeout
	// ErrEmptySegmentation indicates a non-empty diff produced no segments
	ErrEmptySegmentation
	// ErrValidation indicates an input validation error
	ErrValidation
)

// DevAIError is the base error type for all devai errors
type DevAIError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *DevAIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *DevAIError) Unwrap() error {
	return e.Cause
}

// New creates a new DevAIError
func New(errType ErrorType, message string, cause error) *DevAIError {
	return &DevAIError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *DevAIError) WithContext(key string, value interface{}) *DevAIError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var devErr *DevAIError
	if err == nil {
		return false
	}
	if errors.As(err, &devErr) {
		return devErr.Type == errType
	}
	return false
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrGit:
		return "GIT"
	case ErrUpstream:
		return "UPSTREAM"
	case ErrTimeout:
		return "TIMEOUT"
	case ErrEmptySegmentation:
		return "SEGMENTATION"
	case ErrValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *DevAIError {
	return New(ErrConfig, message, cause)
}

// GitError creates a git command error
func GitError(message string, cause error) *DevAIError {
	return New(ErrGit, message, cause)
}

// UpstreamError creates a completion provider error
func UpstreamError(message string, cause error) *DevAIError {
	return New(ErrUpstream, message, cause)
}

// TimeoutError creates a timeout error carrying the configured deadline
// so callers can surface it in diagnostics.
func TimeoutError(message string, timeout time.Duration) *DevAIError {
	e := New(ErrTimeout, message, nil)
	e.Context["timeout"] = timeout
	return e
}

// EmptySegmentationError creates an empty segmentation error
func EmptySegmentationError(message string) *DevAIError {
	return New(ErrEmptySegmentation, message, nil)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *DevAIError {
	return New(ErrValidation, message, cause)
}
