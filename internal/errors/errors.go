package errors

import (
	"errors"
	"fmt"
)

// NewValidationError reports input that breaks a domain rule. Callers
// usually refine the code with WithCode.
func NewValidationError(message string, cause error) *AppError {
	return newAppError(ErrorTypeValidation, CodeValidationFailed, cause, "%s", message)
}

func NewNotFoundError(resource string, identifier string) *AppError {
	return newAppError(ErrorTypeNotFound, CodeNotFound, nil, "%s not found: %s", resource, identifier).
		WithContext("resource", resource).
		WithContext("identifier", identifier)
}

// NewTaskNotFoundError is NewNotFoundError for a task id.
func NewTaskNotFoundError(id int64) *AppError {
	return NewNotFoundError("task", fmt.Sprint(id)).WithContext("id", id)
}

// NewDatabaseError wraps a storage failure during operation.
func NewDatabaseError(operation string, cause error) *AppError {
	return newAppError(ErrorTypeDatabase, CodeDatabase, cause, "database operation failed: %s", operation).
		WithContext("operation", operation)
}

// NewInvalidInputError reports a malformed command argument.
func NewInvalidInputError(field string, value any, reason string) *AppError {
	return newAppError(ErrorTypeInvalidInput, CodeInvalidInput, nil, "invalid input for %s: %s", field, reason).
		WithContext("field", field).
		WithContext("value", value).
		WithContext("reason", reason)
}

func NewTimeoutError(operation string, cause error) *AppError {
	return newAppError(ErrorTypeTimeout, CodeTimeout, cause, "operation timed out: %s", operation).
		WithContext("operation", operation)
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Type == errorType
}

func IsValidation(err error) bool {
	return IsErrorType(err, ErrorTypeValidation)
}

func IsNotFound(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// HasCode reports whether err is an AppError carrying code
func HasCode(err error, code string) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// GetUserMessage returns text fit for a terminal. Storage and timeout
// details are replaced with a generic retry hint.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}

	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
		return appErr.Message
	case ErrorTypeDatabase:
		return "A storage error occurred. Please try again."
	case ErrorTypeTimeout:
		return "The operation timed out. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError is false for mistakes the user can fix by retyping.
func ShouldLogError(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return true
	}
	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
		return false
	}
	return true
}
