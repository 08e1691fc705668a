// Package api is the entry point user interfaces drive. Each call is one
// user intent; calls never interleave.
package api

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"todo/internal/config"
	"todo/internal/domain"
	"todo/internal/logging"
	"todo/internal/storage"
	"todo/internal/store"
	"todo/internal/theme"
	"todo/internal/validation"
)

// API defines the operations available to the CLI and terminal UI.
type API interface {
	// Task intents
	AddTask(ctx context.Context, title string) (*Snapshot, error)
	RenameTask(ctx context.Context, id int64, title string) (*Snapshot, error)
	ToggleTask(ctx context.Context, id int64) (*Snapshot, error)
	RemoveTask(ctx context.Context, id int64) (*Snapshot, error)

	// Queries
	GetTask(id int64) (*domain.Task, error)
	Snapshot() *Snapshot
	Theme() domain.Theme

	// Theme intents
	ToggleTheme(ctx context.Context) (*Snapshot, error)
	SetTheme(ctx context.Context, t domain.Theme) (*Snapshot, error)
}

// Snapshot is the state a UI renders after an intent.
type Snapshot struct {
	Changed *domain.Task  `json:"changed,omitempty" yaml:"changed,omitempty"`
	Tasks   []domain.Task `json:"tasks" yaml:"tasks"`
	Stats   domain.Stats  `json:"stats" yaml:"stats"`
	Theme   domain.Theme  `json:"theme" yaml:"theme"`
}

// Service implements API over a TaskStore and a theme Store.
type Service struct {
	mu     sync.Mutex
	tasks  *store.TaskStore
	themes *theme.Store
	logger *slog.Logger
}

var _ API = (*Service)(nil)

// New builds a Service on kv and loads persisted tasks and theme.
func New(ctx context.Context, kv storage.KeyValueStore, cfg *config.Config, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	tasks := store.New(kv,
		store.WithLogger(logging.NewModuleLogger(logger, "store")),
		store.WithValidator(validation.NewTaskValidatorWithConfig(cfg)),
	)
	themes := theme.New(kv, logging.NewModuleLogger(logger, "theme"))

	if err := tasks.Load(ctx); err != nil {
		return nil, err
	}
	if err := themes.Load(ctx); err != nil {
		return nil, err
	}

	return NewWithStores(tasks, themes, logger), nil
}

// NewWithStores wraps already loaded stores.
func NewWithStores(tasks *store.TaskStore, themes *theme.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		tasks:  tasks,
		themes: themes,
		logger: logging.NewModuleLogger(logger, "api"),
	}
}

func (s *Service) AddTask(ctx context.Context, title string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.tasks.Add(ctx, title)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("task added", "id", task.ID)
	return s.snapshot(&task), nil
}

func (s *Service) RenameTask(ctx context.Context, id int64, title string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.tasks.Rename(ctx, id, title)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("task renamed", "id", task.ID)
	return s.snapshot(&task), nil
}

func (s *Service) ToggleTask(ctx context.Context, id int64) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.tasks.Toggle(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("task toggled", "id", task.ID, "completed", task.Completed)
	return s.snapshot(&task), nil
}

// RemoveTask deletes a task. The returned Snapshot carries the removed task
// as Changed.
func (s *Service) RemoveTask(ctx context.Context, id int64) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.tasks.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Remove(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Debug("task removed", "id", id)
	return s.snapshot(&task), nil
}

func (s *Service) GetTask(id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.tasks.Get(id)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *Service) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(nil)
}

func (s *Service) Theme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.themes.Current()
}

func (s *Service) ToggleTheme(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.themes.Toggle(ctx); err != nil {
		return nil, err
	}
	return s.snapshot(nil), nil
}

func (s *Service) SetTheme(ctx context.Context, t domain.Theme) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.themes.Set(ctx, t); err != nil {
		return nil, err
	}
	return s.snapshot(nil), nil
}

func (s *Service) snapshot(changed *domain.Task) *Snapshot {
	return &Snapshot{
		Changed: changed,
		Tasks:   s.tasks.List(),
		Stats:   s.tasks.Stats(),
		Theme:   s.themes.Current(),
	}
}
