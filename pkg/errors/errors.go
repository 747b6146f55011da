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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Document mutation errors
	ErrTypeMismatch        ErrorCode = "TYPE_MISMATCH"
	ErrStructuralViolation ErrorCode = "STRUCTURAL_VIOLATION"
	ErrWrongCategory       ErrorCode = "WRONG_COLLECTION_CATEGORY"
	ErrUnsupportedRoot     ErrorCode = "UNSUPPORTED_ROOT_TYPE"
	ErrAlreadyAttached     ErrorCode = "ALREADY_ATTACHED"

	// Timestamp errors
	ErrInvalidTimestamp ErrorCode = "INVALID_TIMESTAMP"

	// Output errors
	ErrMalformedOutput ErrorCode = "MALFORMED_OUTPUT"

	// Manifest errors
	ErrManifestLoad    ErrorCode = "MANIFEST_LOAD"
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// DocError represents a structured error with code and details
type DocError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DocError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DocError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DocError) Is(target error) bool {
	var targetErr *DocError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DocError with the given code and message
func New(code ErrorCode, message string) *DocError {
	return &DocError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DocError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DocError {
	return &DocError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DocError
func Wrap(err error, code ErrorCode, message string) *DocError {
	if err == nil {
		return nil
	}
	return &DocError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DocError {
	if err == nil {
		return nil
	}
	return &DocError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DocError) WithDetail(key string, value interface{}) *DocError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DocError) WithDetails(details map[string]interface{}) *DocError {
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
	var docErr *DocError
	if errors.As(err, &docErr) {
		return docErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DocError
func GetErrorCode(err error) ErrorCode {
	var docErr *DocError
	if errors.As(err, &docErr) {
		return docErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DocError
func GetErrorDetails(err error) map[string]interface{} {
	var docErr *DocError
	if errors.As(err, &docErr) {
		return docErr.Details
	}
	return nil
}
