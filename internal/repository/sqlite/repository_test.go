package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"todo/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*Repository, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "todo.db")
	repo, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo, dbPath
}

func TestGet_MissingKey(t *testing.T) {
	repo, _ := setupTestDB(t)

	value, ok, err := repo.Get(context.Background(), "todos")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSetAndGet(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "todos", `[{"id":1}]`))

	value, ok, err := repo.Get(ctx, "todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, value)
}

func TestSet_Overwrites(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	repo.now = func() time.Time { return first }
	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	repo.now = func() time.Time { return second }
	require.NoError(t, repo.Set(ctx, "theme", "light"))

	entry, ok, err := repo.GetEntry(ctx, "theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", entry.Value)
	assert.True(t, entry.UpdatedAt.Equal(second))

	var rows int
	require.NoError(t, repo.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSet_PreservesArbitraryText(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	value := "línea uno\n\"quoted\" <b>bold</b> 🗑️ '; DROP TABLE kv; --"
	require.NoError(t, repo.Set(ctx, "todos", value))

	got, ok, err := repo.Get(ctx, "todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, value, got)
}

func TestReopen_PersistsValues(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "todo.db")
	ctx := context.Background()

	repo, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, "theme", "light"))
	require.NoError(t, repo.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestInMemoryDatabase_SharedAcrossCalls(t *testing.T) {
	repo, err := New(":memory:")
	require.NoError(t, err)
	defer repo.Close()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "v"))
	value, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestCanceledContext(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Set(ctx, "k", "v")
	require.Error(t, err)
	_, ok := errors.AsAppError(err)
	assert.True(t, ok)
}
