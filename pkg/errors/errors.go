package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Collection errors
	ErrUnknownCollection ErrorCode = "UNKNOWN_COLLECTION"
	ErrSourceMissing     ErrorCode = "SOURCE_MISSING"

	// Link errors
	ErrSymlink    ErrorCode = "SYMLINK"
	ErrPathEscape ErrorCode = "PATH_ESCAPE"

	// External tool errors
	ErrRepoSync ErrorCode = "REPO_SYNC"
)

// AgentsError represents a structured error with code and details
type AgentsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AgentsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AgentsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AgentsError) Is(target error) bool {
	var targetErr *AgentsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AgentsError with the given code and message
func New(code ErrorCode, message string) *AgentsError {
	return &AgentsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AgentsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AgentsError {
	return &AgentsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AgentsError
func Wrap(err error, code ErrorCode, message string) *AgentsError {
	if err == nil {
		return nil
	}
	return &AgentsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AgentsError {
	if err == nil {
		return nil
	}
	return &AgentsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AgentsError) WithDetail(key string, value interface{}) *AgentsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether any AgentsError in err's tree carries code.
// Joined errors and AgentsErrors wrapped inside other AgentsErrors are all
// searched.
func IsErrorCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, &AgentsError{Code: code})
}

// GetErrorCode returns the code of the first AgentsError found in err's
// tree, or ErrUnknown if there is none. Use IsErrorCode to test for a code
// anywhere in a joined error.
func GetErrorCode(err error) ErrorCode {
	var agentsErr *AgentsError
	if errors.As(err, &agentsErr) {
		return agentsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AgentsError
func GetErrorDetails(err error) map[string]interface{} {
	var agentsErr *AgentsError
	if errors.As(err, &agentsErr) {
		return agentsErr.Details
	}
	return nil
}

// Join combines several errors into one, dropping nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
