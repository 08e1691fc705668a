package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, TasksKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, TasksKey, "[]"))
	require.NoError(t, store.Set(ctx, TasksKey, `[{"id":1}]`))

	value, ok, err := store.Get(ctx, TasksKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, value)
	assert.Equal(t, 2, store.Writes())
}
