// Package theme persists the light/dark display preference.
package theme

import (
	"context"
	"io"
	"log/slog"

	"todo/internal/domain"
	apperrors "todo/internal/errors"
	"todo/internal/storage"
	"todo/internal/validation"
)

// Store holds the current theme and writes it back on every change.
type Store struct {
	kv      storage.KeyValueStore
	logger  *slog.Logger
	current domain.Theme
}

// New creates a Store that starts on the default theme.
func New(kv storage.KeyValueStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		kv:      kv,
		logger:  logger,
		current: domain.DefaultTheme,
	}
}

// Load reads the persisted theme. Absent or unknown values fall back to
// the default theme.
func (s *Store) Load(ctx context.Context) error {
	value, ok, err := s.kv.Get(ctx, storage.ThemeKey)
	if err != nil {
		return apperrors.NewDatabaseError("load theme", err)
	}

	s.current = domain.DefaultTheme
	if !ok {
		return nil
	}

	theme, known := domain.ParseTheme(value)
	if !known {
		s.logger.Warn("ignoring unknown theme", "value", value)
		return nil
	}
	s.current = theme
	return nil
}

// Current returns the active theme.
func (s *Store) Current() domain.Theme {
	return s.current
}

// Toggle switches between dark and light.
func (s *Store) Toggle(ctx context.Context) (domain.Theme, error) {
	next := s.current.Toggle()
	if err := s.Set(ctx, next); err != nil {
		return s.current, err
	}
	return next, nil
}

// Set persists theme and makes it current.
func (s *Store) Set(ctx context.Context, theme domain.Theme) error {
	if _, known := domain.ParseTheme(string(theme)); !known {
		ve := validation.NewValidationError()
		ve.AddInvalidValueError("theme", string(theme), "must be dark or light")
		return apperrors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}

	if err := s.kv.Set(ctx, storage.ThemeKey, theme.String()); err != nil {
		s.logger.Error("failed to persist theme", "theme", theme, "error", err)
		return apperrors.NewDatabaseError("save theme", err)
	}
	s.current = theme
	return nil
}
