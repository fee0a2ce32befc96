package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category independently of its message.
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrResourceUnavailable covers an unreadable stylesheet or an output
	// path that cannot be written. Details carry the offending "path".
	ErrResourceUnavailable ErrorCode = "RESOURCE_UNAVAILABLE"

	// ErrMalformedCustomization is reserved for page customizations the
	// renderer tolerates silently. Nothing in the render path returns it.
	ErrMalformedCustomization ErrorCode = "MALFORMED_CUSTOMIZATION"

	ErrDuplicatePage ErrorCode = "DUPLICATE_PAGE"

	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// SiteError is a structured error with a stable code.
type SiteError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *SiteError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SiteError) Unwrap() error {
	return e.Wrapped
}

// Is matches any *SiteError carrying the same code.
func (e *SiteError) Is(target error) bool {
	var targetErr *SiteError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

func New(code ErrorCode, message string) *SiteError {
	return &SiteError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

func Newf(code ErrorCode, format string, args ...interface{}) *SiteError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap returns nil when err is nil so call sites can wrap unconditionally.
func Wrap(err error, code ErrorCode, message string) *SiteError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SiteError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

func (e *SiteError) WithDetail(key string, value interface{}) *SiteError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether any error in err's chain has the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var siteErr *SiteError
	if errors.As(err, &siteErr) {
		return siteErr.Code == code
	}
	return false
}

// GetErrorCode returns the code of the first SiteError in err's chain, or
// ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var siteErr *SiteError
	if errors.As(err, &siteErr) {
		return siteErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the first SiteError in err's chain.
func GetErrorDetails(err error) map[string]interface{} {
	var siteErr *SiteError
	if errors.As(err, &siteErr) {
		return siteErr.Details
	}
	return nil
}
