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

	// Configuration document errors. All of them are fatal to a build.
	ErrMalformedConfig   ErrorCode = "CONFIG_MALFORMED"
	ErrEmptyContentPaths ErrorCode = "EMPTY_CONTENT_PATHS"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// DetailField is the detail key naming the document field an error is about
const DetailField = "field"

// TwcfgError represents a structured error with code and details
type TwcfgError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TwcfgError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TwcfgError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TwcfgError) Is(target error) bool {
	var targetErr *TwcfgError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TwcfgError with the given code and message
func New(code ErrorCode, message string) *TwcfgError {
	return &TwcfgError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TwcfgError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TwcfgError {
	return &TwcfgError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TwcfgError
func Wrap(err error, code ErrorCode, message string) *TwcfgError {
	if err == nil {
		return nil
	}
	return &TwcfgError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TwcfgError {
	if err == nil {
		return nil
	}
	return &TwcfgError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TwcfgError) WithDetail(key string, value interface{}) *TwcfgError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithField records which document field the error is about
func (e *TwcfgError) WithField(field string) *TwcfgError {
	return e.WithDetail(DetailField, field)
}

// WithDetails adds multiple details to the error
func (e *TwcfgError) WithDetails(details map[string]interface{}) *TwcfgError {
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
	var twErr *TwcfgError
	if errors.As(err, &twErr) {
		return twErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TwcfgError
func GetErrorCode(err error) ErrorCode {
	var twErr *TwcfgError
	if errors.As(err, &twErr) {
		return twErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TwcfgError
func GetErrorDetails(err error) map[string]interface{} {
	var twErr *TwcfgError
	if errors.As(err, &twErr) {
		return twErr.Details
	}
	return nil
}

// Field returns the document field recorded on the outermost TwcfgError
// that carries one, or "" when none does.
func Field(err error) string {
	for err != nil {
		var twErr *TwcfgError
		if !errors.As(err, &twErr) {
			return ""
		}
		if f, ok := twErr.Details[DetailField].(string); ok && f != "" {
			return f
		}
		err = twErr.Wrapped
	}
	return ""
}
