// Package errors provides structured error types for dotkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library surface
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - MALFORMED_*/INVALID_*: Input validation failures
//   - UNKNOWN_*/*_NOT_FOUND: Resource not found
//   - UNSUPPORTED_*: Capability or data-shape mismatches
//   - EXTERNAL_PROCESS: Layout-engine invocation failures
//   - INTERNAL_ERROR: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedFormat, "invalid format token: %q", token)
//	if errors.Is(err, errors.ErrCodeMalformedFormat) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeExternalProcess, origErr, "dot -Tpng failed")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeMalformedFormat Code = "MALFORMED_FORMAT"
	ErrCodeInvalidGraph    Code = "INVALID_GRAPH"

	// Resource not found errors
	ErrCodeUnknownProvider Code = "UNKNOWN_PROVIDER"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Capability mismatch errors
	ErrCodeUnsupportedFormat    Code = "UNSUPPORTED_FORMAT"
	ErrCodeUnsupportedData      Code = "UNSUPPORTED_DATA"
	ErrCodeUnsupportedOperation Code = "UNSUPPORTED_OPERATION"
	ErrCodeUnsupportedPlatform  Code = "UNSUPPORTED_PLATFORM"

	// External process errors
	ErrCodeExternalProcess Code = "EXTERNAL_PROCESS"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ProcessError carries the full context of a failed layout-engine invocation:
// the argument list that was executed, the captured error-stream text, and the
// process exit status. External-process failures are assumed deterministic for
// a given input, so they are never retried.
type ProcessError struct {
	Args     []string // Full argument list, including the engine binary
	Stderr   string   // Captured error-stream text (may be non-empty on exit 0)
	ExitCode int      // Process exit status
}

// Error implements the error interface.
func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%v exited %d: %s", e.Args, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%v exited %d", e.Args, e.ExitCode)
}

// Code returns the error code for this error type.
func (e *ProcessError) Code() Code {
	return ErrCodeExternalProcess
}
