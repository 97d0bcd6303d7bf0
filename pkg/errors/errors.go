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
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound   ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess     ErrorCode = "FILE_ACCESS"
	ErrNotADirectory  ErrorCode = "NOT_A_DIRECTORY"
	ErrInvalidSymlink ErrorCode = "INVALID_SYMLINK"

	// Library lookup errors
	ErrLibraryLookup ErrorCode = "LIBRARY_LOOKUP"
)

// DumpError represents a structured error with code and details
type DumpError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DumpError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DumpError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DumpError) Is(target error) bool {
	var targetErr *DumpError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DumpError with the given code and message
func New(code ErrorCode, message string) *DumpError {
	return &DumpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DumpError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DumpError {
	return &DumpError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DumpError
func Wrap(err error, code ErrorCode, message string) *DumpError {
	if err == nil {
		return nil
	}
	return &DumpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DumpError {
	if err == nil {
		return nil
	}
	return &DumpError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// NewInvalidSymlink reports a symlink that can neither be kept as a link
// nor replaced by its content. cause may be nil.
func NewInvalidSymlink(path string, cause error) *DumpError {
	return &DumpError{
		Code: ErrInvalidSymlink,
		Message: fmt.Sprintf("failed to copy %q: it's a symlink pointing outside the destination tree; "+
			"fix it to be valid once installed and try again", path),
		Details: map[string]interface{}{"path": path},
		Wrapped: cause,
	}
}

// WithDetail adds a detail to the error
func (e *DumpError) WithDetail(key string, value interface{}) *DumpError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DumpError) WithDetails(details map[string]interface{}) *DumpError {
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
	var dumpErr *DumpError
	if errors.As(err, &dumpErr) {
		return dumpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DumpError
func GetErrorCode(err error) ErrorCode {
	var dumpErr *DumpError
	if errors.As(err, &dumpErr) {
		return dumpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DumpError
func GetErrorDetails(err error) map[string]interface{} {
	var dumpErr *DumpError
	if errors.As(err, &dumpErr) {
		return dumpErr.Details
	}
	return nil
}

// InvalidSymlinkPath returns the offending path of an INVALID_SYMLINK error
func InvalidSymlinkPath(err error) (string, bool) {
	if !IsErrorCode(err, ErrInvalidSymlink) {
		return "", false
	}
	path, ok := GetErrorDetails(err)["path"].(string)
	return path, ok
}
