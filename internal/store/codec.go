package store

import (
	"encoding/json"
	"fmt"

	"todo/internal/domain"
	"todo/internal/validation"
)

var (
	mapper          = domain.NewTaskMapper()
	recordValidator = validation.NewTaskValidator()
)

// EncodeTasks serializes tasks as a JSON array of records.
func EncodeTasks(tasks []domain.Task) (string, error) {
	data, err := json.Marshal(mapper.ToRecordSlice(tasks))
	if err != nil {
		return "", fmt.Errorf("failed to encode tasks: %w", err)
	}
	return string(data), nil
}

// DecodeTasks parses a value produced by EncodeTasks. Titles are trimmed;
// the collection is rejected as a whole if any record is unusable.
func DecodeTasks(data string) ([]domain.Task, error) {
	var records []domain.TaskRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	tasks, err := mapper.FromRecordSlice(records)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	for i := range tasks {
		tasks[i].Title = validation.TrimTitle(tasks[i].Title)
	}

	if err := recordValidator.ValidateTaskList(tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	return tasks, nil
}
