package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Resource-specific not found errors. Messages are surfaced to callers verbatim.
var (
	ErrStudentNotFound     = NewResourceNotFoundError("Student not found")
	ErrOfficialNotFound    = NewResourceNotFoundError("Official not found")
	ErrEmployerNotFound    = NewResourceNotFoundError("Employer not found")
	ErrVacancyNotFound     = NewResourceNotFoundError("Vacancy not found")
	ErrSchoolNotFound      = NewResourceNotFoundError("School not found")
	ErrApplicationNotFound = NewResourceNotFoundError("Application not found")
	ErrCommissionNotFound  = NewResourceNotFoundError("Commission not found")
	ErrNoStudentsForSchool = NewResourceNotFoundError("No students found for this school")
)

// ErrInvalidApplicationStatus is returned for status values outside the application set
var ErrInvalidApplicationStatus = NewBadRequestError("Invalid status")

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewFieldError creates a validation error reporting a single offending field
func NewFieldError(field, message string) error {
	return NewValidationError(map[string]string{field: message})
}

// NewValidationError creates a validation error carrying a field -> message map
func NewValidationError(fields map[string]string) error {
	details := make(map[string]interface{}, len(fields))
	for field, msg := range fields {
		details[field] = msg
	}
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: "Validation failed",
		Details: details,
	}
}

// Is returns whether err matches target or any of errList
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
