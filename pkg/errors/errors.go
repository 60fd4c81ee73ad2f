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

	// Configuration errors
	ErrConfigDir   ErrorCode = "CONFIG_DIR"
	ErrConfigRead  ErrorCode = "CONFIG_READ"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Path errors
	ErrPathResolve      ErrorCode = "PATH_RESOLVE"
	ErrNoCommonAncestor ErrorCode = "NO_COMMON_ANCESTOR"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileMove      ErrorCode = "FILE_MOVE"
	ErrDestExists    ErrorCode = "DEST_EXISTS"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// PapermanError represents a structured error with code and details
type PapermanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PapermanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PapermanError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PapermanError) Is(target error) bool {
	var targetErr *PapermanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PapermanError with the given code and message
func New(code ErrorCode, message string) *PapermanError {
	return &PapermanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PapermanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PapermanError {
	return &PapermanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PapermanError
func Wrap(err error, code ErrorCode, message string) *PapermanError {
	if err == nil {
		return nil
	}
	return &PapermanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PapermanError {
	if err == nil {
		return nil
	}
	return &PapermanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PapermanError) WithDetail(key string, value interface{}) *PapermanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PapermanError) WithDetails(details map[string]interface{}) *PapermanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var perr *PapermanError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PapermanError
func GetErrorCode(err error) ErrorCode {
	var perr *PapermanError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PapermanError
func GetErrorDetails(err error) map[string]interface{} {
	var perr *PapermanError
	if errors.As(err, &perr) {
		return perr.Details
	}
	return nil
}
