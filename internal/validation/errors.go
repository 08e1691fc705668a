package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationErrorType classifies why a field was rejected
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
)

// FieldError is a single rejected field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError collects every FieldError found while checking one input.
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError returns an empty collection ready for Add* calls.
func NewValidationError() *ValidationError {
	return &ValidationError{Errors: []FieldError{}}
}

func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "validation error"
	case 1:
		return ve.Errors[0].Error()
	}

	parts := make([]string, len(ve.Errors))
	for i := range ve.Errors {
		parts[i] = ve.Errors[i].Error()
	}
	return "multiple validation errors: " + strings.Join(parts, "; ")
}

// AsValidationError extracts a ValidationError from err's chain
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// IsValidationError checks if err is or wraps a ValidationError
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// HasFieldError reports whether field failed with errorType
func (ve *ValidationError) HasFieldError(field string, errorType ValidationErrorType) bool {
	for _, fe := range ve.Errors {
		if fe.Field == field && fe.Type == errorType {
			return true
		}
	}
	return false
}

func (ve *ValidationError) add(field string, errorType ValidationErrorType, value interface{}, format string, args ...interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    errorType,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	})
}

// AddRequiredError records a missing or blank field
func (ve *ValidationError) AddRequiredError(field string) {
	ve.add(field, ErrorTypeRequired, nil, "%s is required", field)
}

// AddTooLongError records a field longer than max characters
func (ve *ValidationError) AddTooLongError(field string, value interface{}, max int) {
	ve.add(field, ErrorTypeInvalidLength, value, "%s must be at most %d characters long", field, max)
}

// AddInvalidValueError records a field whose value is out of range
func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	ve.add(field, ErrorTypeInvalidValue, value, "%s has invalid value: %s", field, reason)
}

// GetUserFriendlyMessage renders the messages for display, one per line
// when there is more than one.
func (ve *ValidationError) GetUserFriendlyMessage() string {
	switch len(ve.Errors) {
	case 0:
		return "Input validation failed"
	case 1:
		return ve.Errors[0].Message
	}

	var b strings.Builder
	b.WriteString("Multiple validation errors occurred:")
	for _, fe := range ve.Errors {
		b.WriteString("\n- ")
		b.WriteString(fe.Message)
	}
	return b.String()
}
