package errors

import (
	"net/http"

	"challengehub/internal/errors"
)

// Kind classifies an application error independently of its HTTP mapping.
type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindConflict   Kind = "ConflictError"
	KindAuth       Kind = "AuthError"
	KindNotFound   Kind = "NotFoundError"
	KindStore      Kind = "StoreError"
	KindInternal   Kind = "InternalError"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Taxonomy bucket
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Registration
	ErrMissingFields = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"please fill in all required fields",
	)

	ErrUsernameTaken = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"this username is already in use",
	)

	ErrEmailTaken = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"this email address is already in use",
	)

	// Login. One message for unknown email and wrong password alike.
	ErrInvalidCredentials = NewBaseError(
		KindAuth,
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"incorrect email or password",
	)

	// Challenges
	ErrInvalidUserID = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_USER_ID",
		"invalid user id",
	)

	ErrChallengeNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"CHALLENGE_NOT_FOUND",
		"challenge not found or already deleted",
	)

	// General
	ErrInvalidInput = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_INPUT",
		"invalid request body",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"an internal error occurred, please try again later",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindStore
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf reports the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
