// Package store holds the task collection and every operation that reads or
// mutates it. All state is persisted through a storage.KeyValueStore.
package store

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"time"

	"todo/internal/domain"
	apperrors "todo/internal/errors"
	"todo/internal/storage"
	"todo/internal/validation"
)

// TaskStore owns an ordered task collection and its id sequence.
// It is not safe for concurrent use; callers serialize access.
type TaskStore struct {
	kv        storage.KeyValueStore
	key       string
	now       func() time.Time
	logger    *slog.Logger
	validator *validation.TaskValidator

	tasks  []domain.Task
	nextID int64
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithClock sets the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) {
		s.now = now
	}
}

// WithLogger sets the logger used for load warnings and write failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *TaskStore) {
		s.logger = logger
	}
}

// WithValidator replaces the default title validator.
func WithValidator(v *validation.TaskValidator) Option {
	return func(s *TaskStore) {
		s.validator = v
	}
}

// WithKey overrides the storage key the collection is kept under.
func WithKey(key string) Option {
	return func(s *TaskStore) {
		s.key = key
	}
}

// New creates an empty TaskStore backed by kv. Call Load to read
// previously persisted tasks.
func New(kv storage.KeyValueStore, opts ...Option) *TaskStore {
	s := &TaskStore{
		kv:        kv,
		key:       storage.TasksKey,
		now:       time.Now,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator: validation.NewTaskValidator(),
		tasks:     []domain.Task{},
		nextID:    1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the persisted one.
// Absent or unreadable data leaves an empty collection; only a failure of
// the key-value store itself is returned.
func (s *TaskStore) Load(ctx context.Context) error {
	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return apperrors.NewDatabaseError("load tasks", err)
	}

	tasks := []domain.Task{}
	if ok {
		decoded, err := DecodeTasks(data)
		if err != nil {
			s.logger.Warn("discarding unreadable task data", "key", s.key, "error", err)
		} else {
			tasks = decoded
		}
	}

	s.tasks = tasks
	s.nextID = nextIDFor(tasks)
	s.logger.Debug("tasks loaded", "count", len(tasks), "next_id", s.nextID)
	return nil
}

// Add appends a new incomplete task with a trimmed title.
func (s *TaskStore) Add(ctx context.Context, title string) (domain.Task, error) {
	clean, err := s.cleanTitle(title)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.validator.ValidateTaskID(s.nextID); err != nil {
		return domain.Task{}, apperrors.NewValidationError("no task ids left", err).WithCode(apperrors.CodeIDsExhausted)
	}

	task := domain.NewTask(s.nextID, clean, s.timestamp())
	tasks := append(slices.Clone(s.tasks), task)

	if err := s.commit(ctx, "add task", tasks, s.nextID+1); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Rename replaces the title of the task with the given id.
func (s *TaskStore) Rename(ctx context.Context, id int64, title string) (domain.Task, error) {
	idx, err := s.indexOf(id)
	if err != nil {
		return domain.Task{}, err
	}

	clean, err := s.cleanTitle(title)
	if err != nil {
		return domain.Task{}, err
	}

	tasks := slices.Clone(s.tasks)
	tasks[idx].Title = clean

	if err := s.commit(ctx, "rename task", tasks, s.nextID); err != nil {
		return domain.Task{}, err
	}
	return tasks[idx], nil
}

// Toggle flips the completion flag of the task with the given id.
func (s *TaskStore) Toggle(ctx context.Context, id int64) (domain.Task, error) {
	idx, err := s.indexOf(id)
	if err != nil {
		return domain.Task{}, err
	}

	tasks := slices.Clone(s.tasks)
	tasks[idx].Completed = !tasks[idx].Completed

	if err := s.commit(ctx, "toggle task", tasks, s.nextID); err != nil {
		return domain.Task{}, err
	}
	return tasks[idx], nil
}

// Remove deletes the task with the given id. Ids are never reassigned.
func (s *TaskStore) Remove(ctx context.Context, id int64) error {
	idx, err := s.indexOf(id)
	if err != nil {
		return err
	}

	tasks := slices.Delete(slices.Clone(s.tasks), idx, idx+1)
	return s.commit(ctx, "remove task", tasks, s.nextID)
}

// List returns a copy of the collection in insertion order.
func (s *TaskStore) List() []domain.Task {
	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Get returns a copy of the task with the given id.
func (s *TaskStore) Get(id int64) (domain.Task, error) {
	idx, err := s.indexOf(id)
	if err != nil {
		return domain.Task{}, err
	}
	return s.tasks[idx], nil
}

// Stats summarizes the current collection.
func (s *TaskStore) Stats() domain.Stats {
	return domain.ComputeStats(s.tasks)
}

// NextID returns the id the next added task will receive.
func (s *TaskStore) NextID() int64 {
	return s.nextID
}

func (s *TaskStore) indexOf(id int64) (int, error) {
	idx := slices.IndexFunc(s.tasks, func(t domain.Task) bool { return t.ID == id })
	if idx < 0 {
		return -1, apperrors.NewTaskNotFoundError(id)
	}
	return idx, nil
}

func (s *TaskStore) cleanTitle(title string) (string, error) {
	clean, err := s.validator.GetValidTitle(title)
	if err == nil {
		return clean, nil
	}

	code := apperrors.CodeValidationFailed
	message := "invalid title"
	switch {
	case validation.IsEmptyTitle(err):
		code = apperrors.CodeEmptyTitle
		message = "title must not be empty"
	case validation.IsTitleTooLong(err):
		code = apperrors.CodeTitleTooLong
		if ve, ok := validation.AsValidationError(err); ok {
			message = ve.GetUserFriendlyMessage()
		}
	}
	return "", apperrors.NewValidationError(message, err).WithCode(code)
}

// commit persists tasks and, only once the write succeeded, adopts them.
func (s *TaskStore) commit(ctx context.Context, operation string, tasks []domain.Task, nextID int64) error {
	data, err := EncodeTasks(tasks)
	if err != nil {
		return apperrors.NewDatabaseError(operation, err)
	}

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		s.logger.Error("failed to persist tasks", "operation", operation, "error", err)
		return apperrors.NewDatabaseError(operation, err)
	}

	s.tasks = tasks
	s.nextID = nextID
	return nil
}

func (s *TaskStore) timestamp() time.Time {
	// Round(0) drops the monotonic reading so stored and reloaded times compare equal.
	return s.now().UTC().Round(0)
}

func nextIDFor(tasks []domain.Task) int64 {
	var maxID int64
	for _, task := range tasks {
		maxID = max(maxID, task.ID)
	}
	return maxID + 1
}
