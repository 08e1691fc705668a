package cli

import (
	"fmt"
	"log/slog"

	"todo/internal/errors"
	"todo/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	verbose bool
}

// NewErrorHandler creates a new error handler. Verbose handlers append the
// error code to messages.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{verbose: verbose}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.ShouldLogError(err) {
		attrs := []any{"operation", operation, "error", err}
		if appErr, ok := errors.AsAppError(err); ok {
			attrs = append(attrs, slog.Group("detail", appErr.LogAttrs()...))
		}
		slog.Error("command failed", attrs...)
	}

	if appErr, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s%s", operation, errors.GetUserMessage(appErr), eh.suffix(appErr))
	}

	if validationErr, ok := validation.AsValidationError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if appErr, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s%s", errors.GetUserMessage(appErr), eh.suffix(appErr))
	}

	if validationErr, ok := validation.AsValidationError(err); ok {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	return err
}

func (eh *ErrorHandler) suffix(appErr *errors.AppError) string {
	if !eh.verbose {
		return ""
	}
	return fmt.Sprintf(" [%s]", appErr.Code)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	return errors.IsValidation(err) || validation.IsValidationError(err)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsNotFound(err)
}

// IsDatabaseError checks if an error is a database error
func (eh *ErrorHandler) IsDatabaseError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDatabase)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
