package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Storage errors. The boundary layer picks the HTTP status from the kind,
// the driver message never leaves the server.
var (
	ErrConnection = errors.New("database connection error")
	ErrQuery      = errors.New("database query error")
)

// Academic record errors
var (
	ErrStudentNotFound   = fmt.Errorf("student not found: %w", ErrResourceNotFound)
	ErrNoAcademicRecords = fmt.Errorf("no academic records: %w", ErrResourceNotFound)
)

// NewAcademicNotFoundError returns the not-found error shown to clients for a NIM.
// kind must be ErrStudentNotFound or ErrNoAcademicRecords.
func NewAcademicNotFoundError(kind error, nim string) error {
	return &CustomError{
		Err:     kind,
		Message: fmt.Sprintf("Data akademik untuk NIM %s tidak ditemukan", nim),
		Details: map[string]interface{}{"nim": nim},
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Message returns the client-facing message of err when it carries one.
func Message(err error) (string, bool) {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message, true
	}
	return "", false
}

// DetailsOf returns the context details carried by err, or nil.
func DetailsOf(err error) map[string]interface{} {
	var ce *CustomError
	if errors.As(err, &ce) && len(ce.Details) > 0 {
		return ce.Details
	}
	return nil
}
