package apperr

import (
	"errors"
	"fmt"
)

// Error codes
const (
	// Extraction errors
	CodeServiceError    = "SERVICE_ERROR"    // NLU/transcription collaborator failed
	CodeSchemaViolation = "SCHEMA_VIOLATION" // response did not conform to the structured shape
	CodeEmptyResult     = "EMPTY_RESULT"     // valid shape but nothing usable after filtering
	CodeMissingField    = "MISSING_FIELD"    // a mandatory field is absent
	CodeMissingPrice    = "MISSING_PRICE"    // sale item without a resolvable price

	// Internal errors
	CodeConfigError   = "CONFIG_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Err     error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// Constructor functions
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ServiceError marks a failed or unreachable external collaborator call.
func ServiceError(service string, err error) *AppError {
	return &AppError{
		Code:    CodeServiceError,
		Message: fmt.Sprintf("external service error: %s", service),
		Details: map[string]any{"service": service},
		Err:     err,
	}
}

// SchemaViolation marks a collaborator response that could not be parsed
// into the required structured shape.
func SchemaViolation(what string, err error) *AppError {
	return &AppError{
		Code:    CodeSchemaViolation,
		Message: fmt.Sprintf("response does not conform to %s schema", what),
		Err:     err,
	}
}

// EmptyResult marks a well-formed response with no usable items left
// after business-rule filtering.
func EmptyResult(what string) *AppError {
	return &AppError{
		Code:    CodeEmptyResult,
		Message: fmt.Sprintf("no usable %s data extracted", what),
	}
}

func MissingField(field string) *AppError {
	return &AppError{
		Code:    CodeMissingField,
		Message: fmt.Sprintf("missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// MissingPrice marks a sale item without a resolvable price. Price is
// mandatory for sales, unlike supply where it defaults to 0.
func MissingPrice(item string) *AppError {
	return &AppError{
		Code:    CodeMissingPrice,
		Message: fmt.Sprintf("no resolvable price for sale item: %s", item),
		Details: map[string]any{"item": item},
	}
}

func ConfigError(message string) *AppError {
	return &AppError{
		Code:    CodeConfigError,
		Message: message,
	}
}

func Internal(message string) *AppError {
	if message == "" {
		message = "internal error"
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
	}
}

// Helper functions
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternalError, "internal error")
}

// CodeOf returns the error code, or CodeInternalError for untyped errors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternalError
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
