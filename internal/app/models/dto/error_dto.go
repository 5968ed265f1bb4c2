package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Resource errors
	ErrorCodeResourceNotFound  ErrorCode = "RES_001"
	ErrorCodeNoAcademicRecords ErrorCode = "ACAD_001"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer     ErrorCode = "SRV_001"
	ErrorCodeDatabaseError      ErrorCode = "SRV_002"
	ErrorCodeServiceUnavailable ErrorCode = "SRV_004"
	ErrorCodeRateLimited        ErrorCode = "SRV_005"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityInfo     ErrorSeverity = "INFO"
	ErrorSeverityWarning  ErrorSeverity = "WARNING"
	ErrorSeverityError    ErrorSeverity = "ERROR"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"RES_001"`
	Message  string        `json:"message" example:"Data akademik untuk NIM 2201001 tidak ditemukan"`
	Field    string        `json:"field,omitempty" example:"nim"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithSeverity sets the severity level of the error
func (e *ErrorDetail) WithSeverity(severity ErrorSeverity) *ErrorDetail {
	e.Severity = severity
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// HandleValidationError turns a binding error into an ErrorDetail, naming the
// first failing field when the error comes from the validator.
func HandleValidationError(err error) *ErrorDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request parameters").
			WithField(fieldName(fe)).
			WithDetails(formatValidationError(fe))
	}
	return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request parameters").
		WithDetails(err.Error())
}

// fieldName prefers the lowercase query key over the Go field name.
func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "NIM":
		return "nim"
	default:
		return fe.Field()
	}
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "nim":
		return field + " must be a non-blank identifier of letters, digits, dots or dashes"
	default:
		return fmt.Sprintf("%s validation failed: %s", field, fe.Tag())
	}
}
