package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Infrastructure errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Instructor errors
var (
	ErrInstructorNotFound = &CustomError{
		Err:     ErrResourceNotFound,
		Message: "instructor not found",
		Code:    "INSTRUCTOR_NOT_FOUND",
	}
	ErrInstructorIDRequired = &CustomError{
		Err:     ErrValidationFailed,
		Message: "instructor ID is required",
		Code:    "INSTRUCTOR_ID_REQUIRED",
	}
)

// Course errors
var (
	ErrCourseNotFound = &CustomError{
		Err:     ErrResourceNotFound,
		Message: "course not found",
		Code:    "COURSE_NOT_FOUND",
	}
	// Same level, type, support and time slot as an existing course
	ErrCourseAlreadyExists = NewCustomError(ErrConflict, "course already exists").WithCode("COURSE_ALREADY_EXISTS")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewStorageUnavailableError wraps an infrastructure fault so callers can match ErrStorageUnavailable
func NewStorageUnavailableError(cause error) error {
	return &CustomError{
		Err:     ErrStorageUnavailable,
		Message: "storage unavailable: " + cause.Error(),
		Details: map[string]interface{}{"cause": cause.Error()},
	}
}

// IsNotFound reports whether err is any flavour of not-found
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
