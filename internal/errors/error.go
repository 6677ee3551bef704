package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryInvariant Category = "invariant"
	CategoryCLI       Category = "cli"
)

// AttrsError is a structured error with a code, explanation and fix hint.
type AttrsError struct {
	// Code is a unique error identifier (e.g., "A001").
	Code string

	// Category is the error type (invariant, cli).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *AttrsError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *AttrsError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *AttrsError) WithSuggestion(s string) *AttrsError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *AttrsError) WithDetail(d string) *AttrsError {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with fmt.Sprintf formatting.
func (e *AttrsError) WithDetailf(format string, args ...any) *AttrsError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *AttrsError) Wrap(err error) *AttrsError {
	e.Wrapped = err
	return e
}

// New creates an AttrsError from a registered error code.
func New(code string) *AttrsError {
	template, ok := registry[code]
	if !ok {
		return &AttrsError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &AttrsError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// FromError wraps a standard error in an AttrsError.
func FromError(err error, code string) *AttrsError {
	if err == nil {
		return nil
	}
	var ae *AttrsError
	if errors.As(err, &ae) {
		return ae
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is (or wraps) an AttrsError with the given code.
func HasCode(err error, code string) bool {
	var ae *AttrsError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Code == code
}
