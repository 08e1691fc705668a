package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for serialized timestamps.
const TimestampLayout = time.RFC3339Nano

// TaskRecord is the serialized shape of a Task.
type TaskRecord struct {
	ID        int64  `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// TaskMapper handles conversion between domain Tasks and TaskRecords.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to a TaskRecord.
func (m *TaskMapper) ToRecord(task Task) TaskRecord {
	return TaskRecord{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.UTC().Format(TimestampLayout),
	}
}

// FromRecord converts a TaskRecord to a domain Task.
// Timestamps are normalized to UTC.
func (m *TaskMapper) FromRecord(record TaskRecord) (Task, error) {
	createdAt, err := time.Parse(TimestampLayout, record.CreatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("task %d: invalid createdAt %q: %w", record.ID, record.CreatedAt, err)
	}
	return Task{
		ID:        record.ID,
		Title:     record.Title,
		Completed: record.Completed,
		CreatedAt: createdAt.UTC(),
	}, nil
}

// ToRecordSlice converts a slice of domain Tasks to TaskRecords.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []TaskRecord {
	records := make([]TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecordSlice converts a slice of TaskRecords to domain Tasks.
func (m *TaskMapper) FromRecordSlice(records []TaskRecord) ([]Task, error) {
	tasks := make([]Task, len(records))
	for i, record := range records {
		task, err := m.FromRecord(record)
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}
	return tasks, nil
}
