package api

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/config"
	"todo/internal/domain"
	apperrors "todo/internal/errors"
	"todo/internal/storage"
)

func setupTestAPI(t *testing.T) (*Service, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	svc, err := New(context.Background(), kv, config.NewConfig(), nil)
	require.NoError(t, err)
	return svc, kv
}

func TestService_AddReturnsSnapshot(t *testing.T) {
	svc, _ := setupTestAPI(t)

	snap, err := svc.AddTask(context.Background(), "Buy milk")
	require.NoError(t, err)
	require.NotNil(t, snap.Changed)
	assert.Equal(t, int64(1), snap.Changed.ID)
	assert.Equal(t, "Buy milk", snap.Changed.Title)
	assert.Len(t, snap.Tasks, 1)
	assert.Equal(t, domain.Stats{Total: 1, Remaining: 1}, snap.Stats)
	assert.Equal(t, domain.ThemeDark, snap.Theme)
}

func TestService_Workflow(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestAPI(t)

	_, err := svc.AddTask(ctx, "Buy milk")
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, "Walk dog")
	require.NoError(t, err)

	snap, err := svc.ToggleTask(ctx, 1)
	require.NoError(t, err)
	assert.True(t, snap.Changed.Completed)

	snap, err = svc.RenameTask(ctx, 1, " Buy oat milk ")
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", snap.Changed.Title)

	snap, err = svc.RemoveTask(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Walk dog", snap.Changed.Title)
	assert.Equal(t, domain.Stats{Total: 1, Completed: 1}, snap.Stats)

	task, err := svc.GetTask(1)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", task.Title)
}

func TestService_ErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestAPI(t)

	_, err := svc.AddTask(ctx, "   ")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeEmptyTitle))

	_, err = svc.ToggleTask(ctx, 5)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.RemoveTask(ctx, 5)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.GetTask(5)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestService_TitleLimitFromConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TitleMaxLength = 3
	svc, err := New(context.Background(), storage.NewMemoryStore(), cfg, nil)
	require.NoError(t, err)

	_, err = svc.AddTask(context.Background(), "four")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeTitleTooLong))
}

func TestService_ThemeIntents(t *testing.T) {
	ctx := context.Background()
	svc, kv := setupTestAPI(t)
	assert.Equal(t, domain.ThemeDark, svc.Theme())

	snap, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, snap.Theme)

	snap, err = svc.SetTheme(ctx, domain.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, snap.Theme)

	_, err = svc.SetTheme(ctx, domain.Theme("neon"))
	assert.True(t, apperrors.IsValidation(err))

	reloaded, err := New(ctx, kv, config.NewConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, reloaded.Theme())
}

func TestService_StateSurvivesReload(t *testing.T) {
	ctx := context.Background()
	svc, kv := setupTestAPI(t)
	_, err := svc.AddTask(ctx, "persisted")
	require.NoError(t, err)
	_, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)

	reloaded, err := New(ctx, kv, config.NewConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, svc.Snapshot(), reloaded.Snapshot())
}

func TestService_ConcurrentAddsAreSerialized(t *testing.T) {
	ctx := context.Background()
	svc, kv := setupTestAPI(t)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddTask(ctx, "parallel")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	snap := svc.Snapshot()
	require.Len(t, snap.Tasks, workers)
	for i, task := range snap.Tasks {
		assert.Equal(t, int64(i+1), task.ID)
	}

	reloaded, err := New(ctx, kv, config.NewConfig(), nil)
	require.NoError(t, err)
	assert.Len(t, reloaded.Snapshot().Tasks, workers)
}
