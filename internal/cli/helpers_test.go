package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"todo/internal/api"
	"todo/internal/config"
	"todo/internal/domain"
	apperrors "todo/internal/errors"
	"todo/internal/storage"
	"todo/internal/store"
	"todo/internal/theme"
	"todo/internal/validation"
)

var testCreatedAt = time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)

// freezeTime pins timeNow two hours after testCreatedAt.
func freezeTime(t *testing.T) {
	t.Helper()
	original := timeNow
	timeNow = func() time.Time { return testCreatedAt.Add(2 * time.Hour) }
	t.Cleanup(func() { timeNow = original })
}

func newTestService(t *testing.T, kv storage.KeyValueStore, cfg *config.Config) *api.Service {
	t.Helper()
	ctx := context.Background()

	tasks := store.New(kv,
		store.WithClock(func() time.Time { return testCreatedAt }),
		store.WithValidator(validation.NewTaskValidatorWithConfig(cfg)),
	)
	require.NoError(t, tasks.Load(ctx))
	themes := theme.New(kv, nil)
	require.NoError(t, themes.Load(ctx))

	return api.NewWithStores(tasks, themes, nil)
}

func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	freezeTime(t)

	var out bytes.Buffer
	cfg := config.NewConfig()
	app := NewApp(newTestService(t, storage.NewMemoryStore(), cfg), cfg, &out)
	return app, &out
}

func seedTasks(t *testing.T, app *App, titles ...string) {
	t.Helper()
	for _, title := range titles {
		_, err := app.api.AddTask(context.Background(), title)
		require.NoError(t, err)
	}
}

var errStorageDown = errors.New("storage down")

// brokenAPI fails every intent with a database error.
type brokenAPI struct {
	api.API
}

func (brokenAPI) fail(op string) error {
	return apperrors.NewDatabaseError(op, errStorageDown)
}

func (b brokenAPI) AddTask(context.Context, string) (*api.Snapshot, error) {
	return nil, b.fail("add task")
}

func (b brokenAPI) RenameTask(context.Context, int64, string) (*api.Snapshot, error) {
	return nil, b.fail("rename task")
}

func (b brokenAPI) ToggleTask(context.Context, int64) (*api.Snapshot, error) {
	return nil, b.fail("toggle task")
}

func (b brokenAPI) RemoveTask(context.Context, int64) (*api.Snapshot, error) {
	return nil, b.fail("remove task")
}

func (b brokenAPI) ToggleTheme(context.Context) (*api.Snapshot, error) {
	return nil, b.fail("save theme")
}

func (b brokenAPI) SetTheme(context.Context, domain.Theme) (*api.Snapshot, error) {
	return nil, b.fail("save theme")
}
