package domain

import "time"

// Task represents one to-do item.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID        int64
	Title     string
	Completed bool
	CreatedAt time.Time
}

// NewTask creates an incomplete Task with the given id, title and creation time.
func NewTask(id int64, title string, createdAt time.Time) Task {
	return Task{
		ID:        id,
		Title:     title,
		CreatedAt: createdAt,
	}
}

// Status returns a short completion label.
func (t Task) Status() string {
	if t.Completed {
		return "done"
	}
	return "open"
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
