package errors

import "fmt"

// ErrorType groups errors by how a user interface should react to them.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeDatabase     ErrorType = "database"
	ErrorTypeInvalidInput ErrorType = "invalid_input"
	ErrorTypeTimeout      ErrorType = "timeout"
)

func (et ErrorType) String() string {
	if et == "" {
		return "unknown"
	}
	return string(et)
}

// Codes carried in AppError.Code. Several codes share one ErrorType.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeEmptyTitle       = "EMPTY_TITLE"
	CodeTitleTooLong     = "TITLE_TOO_LONG"
	CodeIDsExhausted     = "IDS_EXHAUSTED"
	CodeNotFound         = "NOT_FOUND"
	CodeDatabase         = "DATABASE_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeTimeout          = "TIMEOUT"
)

// AppError is the error every layer above storage returns. Message is safe
// to show to a user; Cause and Context are for logs.
type AppError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Context map[string]any
}

func newAppError(errorType ErrorType, code string, cause error, format string, args ...any) *AppError {
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Context: map[string]any{},
	}
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code, so callers can
// write errors.Is(err, &AppError{Type: ..., Code: ...}).
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && other.Type == e.Type && other.Code == e.Code
}

// WithCode replaces the code and returns e for chaining.
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithContext records a key/value pair for logging and returns e.
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = map[string]any{}
	}
	e.Context[key] = value
	return e
}

// LogAttrs returns the type, code and context as slog key/value pairs.
func (e *AppError) LogAttrs() []any {
	attrs := []any{"error_type", e.Type.String(), "error_code", e.Code}
	for k, v := range e.Context {
		attrs = append(attrs, k, v)
	}
	return attrs
}
