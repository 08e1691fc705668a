// Package storage defines the key-value persistence contract used by the
// task and theme stores.
package storage

import (
	"context"
)

// Keys used in the key-value store.
const (
	TasksKey = "todos"
	ThemeKey = "theme"
)

// KeyValueStore is a synchronous string key-value store.
// Get reports ok=false for an absent key; err is reserved for storage failures.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
