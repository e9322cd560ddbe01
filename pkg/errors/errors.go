package errors

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Output errors
	ErrWrite ErrorCode = "WRITE"

	// Child process errors
	ErrSpawn     ErrorCode = "SPAWN"
	ErrChildExit ErrorCode = "CHILD_EXIT"
)

// Detail keys shared between packages
const (
	DetailExitCode = "exitCode"
	DetailCommand  = "command"
	DetailPath     = "path"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// EnvctlError represents a structured error with code and details
type EnvctlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EnvctlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EnvctlError) Unwrap() error {
	return e.Wrapped
}

// Is matches another EnvctlError with the same code
func (e *EnvctlError) Is(target error) bool {
	var targetErr *EnvctlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EnvctlError with the given code and message
func New(code ErrorCode, message string) *EnvctlError {
	return &EnvctlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EnvctlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EnvctlError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *EnvctlError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EnvctlError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *EnvctlError) WithDetail(key string, value interface{}) *EnvctlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var envErr *EnvctlError
	if errors.As(err, &envErr) {
		return envErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EnvctlError
func GetErrorCode(err error) ErrorCode {
	var envErr *EnvctlError
	if errors.As(err, &envErr) {
		return envErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an EnvctlError
func GetErrorDetails(err error) map[string]interface{} {
	var envErr *EnvctlError
	if errors.As(err, &envErr) {
		return envErr.Details
	}
	return nil
}

// ExitCode maps err to the process exit status.
//
// A child that exited non-zero hands its own status back to the caller.
// Argument errors exit with ExitUsage; everything else with ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetErrorCode(err) {
	case ErrInvalidInput:
		return ExitUsage
	case ErrChildExit:
		if code, ok := GetErrorDetails(err)[DetailExitCode].(int); ok && code > 0 {
			return code
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return exitErr.ExitCode()
		}
	}
	return ExitError
}
