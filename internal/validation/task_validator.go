package validation

import (
	"todo/internal/config"
	"todo/internal/domain"
)

// Field names reported in FieldErrors
const (
	FieldTitle     = "title"
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honouring cfg's limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTitle validates a task title for creation or rename
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError(FieldTitle)
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmed) {
		validationError.AddTooLongError(FieldTitle, trimmed, tv.validator.TitleMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidTitle returns a trimmed title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}

// ValidateTaskID checks that id can be assigned to a task
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if tv.validator.IsValidTaskID(id) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidValueError(FieldID, id, idReason(id))
	return validationError
}

func idReason(id int64) string {
	if id > MaxTaskID {
		return "no task ids left"
	}
	return "must be a positive integer"
}

// ValidateTask validates a stored domain.Task. Length limits are not
// applied here so that a lowered limit never invalidates existing data.
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidTaskID(task.ID) {
		validationError.AddInvalidValueError(FieldID, task.ID, idReason(task.ID))
	}
	if !tv.validator.IsNonEmptyString(task.Title) {
		validationError.AddRequiredError(FieldTitle)
	}
	if task.CreatedAt.IsZero() {
		validationError.AddRequiredError(FieldCreatedAt)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskList validates every task and checks that ids are unique
func (tv *TaskValidator) ValidateTaskList(tasks []domain.Task) error {
	validationError := NewValidationError()
	seen := make(map[int64]bool, len(tasks))

	for _, task := range tasks {
		if err := tv.ValidateTask(task); err != nil {
			if ve, ok := AsValidationError(err); ok {
				validationError.Errors = append(validationError.Errors, ve.Errors...)
			}
			continue
		}
		if seen[task.ID] {
			validationError.AddInvalidValueError(FieldID, task.ID, "duplicate id")
		}
		seen[task.ID] = true
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// IsEmptyTitle reports whether err is a ValidationError for a blank title
func IsEmptyTitle(err error) bool {
	ve, ok := AsValidationError(err)
	return ok && ve.HasFieldError(FieldTitle, ErrorTypeRequired)
}

// IsTitleTooLong reports whether err is a ValidationError for an over-long title
func IsTitleTooLong(err error) bool {
	ve, ok := AsValidationError(err)
	return ok && ve.HasFieldError(FieldTitle, ErrorTypeInvalidLength)
}
