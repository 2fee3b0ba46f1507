// Package errors defines the business errors use cases return. Each carries
// the HTTP status and stable code the API reports for it.
package errors

import (
	"net/http"

	"crave/internal/errors"
)

// AppError is an error the API can render without leaking internals.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	// Message is safe to show to end users.
	Message() string
	// Details is optional context, such as the offending field.
	Details() string
}

// BaseError is a predefined AppError. Copies made by WithDetails keep the
// code, so errors.Is still matches the predefined value.
type BaseError struct {
	status  int
	code    string
	message string
	details string
}

func define(status int, code, message string) *BaseError {
	return &BaseError{status: status, code: code, message: message}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.status }
func (e *BaseError) ErrorCode() string { return e.code }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage adds context for logs; the API still renders e.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.code == e.code
}

// DatabaseExecuteError hides a driver failure behind a generic 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps err; details names the failed operation.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database operation failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
