package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode is the machine-readable code returned to clients in the
// "error" field of failure responses.
type ErrorCode string

const (
	ErrorCode_INTERNAL         ErrorCode = "INTERNAL"
	ErrorCode_INVALID_PAYLOAD  ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_INVALID_VIDEO_ID ErrorCode = "INVALID_VIDEO_ID"
	ErrorCode_ANALYSIS_FAILED  ErrorCode = "ANALYSIS_FAILED"
	ErrorCode_COUNTER_FAILED   ErrorCode = "COUNTER_FAILED"
	ErrorCode_NOT_FOUND        ErrorCode = "NOT_FOUND"
)

// String implements fmt.Stringer.
func (c ErrorCode) String() string {
	return string(c)
}

// AppError is the custom error type for the application. Raw holds the
// underlying cause and is logged, never sent to clients verbatim unless
// the constructor folds it into Message.
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// Analysis Errors

// ErrInvalidVideoID is returned when no 11-character video ID can be
// resolved from the request input.
func ErrInvalidVideoID() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_VIDEO_ID,
		Message:  "Could not extract a video ID from the provided URL or ID",
	}
}

// ErrAnalysisFailed wraps a content-analysis failure. The underlying
// cause is folded into the client-facing message so callers can tell a
// timeout from an upstream rejection.
func ErrAnalysisFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_ANALYSIS_FAILED,
		Message:  fmt.Sprintf("Analysis failed: %v", err),
	}
}

// Counter Errors
func ErrCounterFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_COUNTER_FAILED,
		Message:  "Counter operation failed",
	}
}
