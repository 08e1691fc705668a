package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"todo/internal/api"
	"todo/internal/config"
	"todo/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App carries what command handlers share during one invocation.
type App struct {
	api       api.API
	config    *config.Config
	out       io.Writer
	formatter *TaskFormatter
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{
		api:       apiInstance,
		config:    cfg,
		out:       out,
		formatter: NewTaskFormatter(cfg),
	}
}

// Opener builds the API for one invocation. The returned func releases the
// underlying storage.
type Opener func(ctx context.Context, cfg *config.Config) (api.API, func() error, error)

// NewSQLiteOpener returns an Opener backed by the configured SQLite database.
func NewSQLiteOpener(logger *slog.Logger) Opener {
	return func(ctx context.Context, cfg *config.Config) (api.API, func() error, error) {
		repo, err := config.CreateRepository(cfg)
		if err != nil {
			return nil, nil, err
		}

		svc, err := api.New(ctx, repo, cfg, logger)
		if err != nil {
			repo.Close()
			return nil, nil, err
		}

		return svc, repo.Close, nil
	}
}

// printChange writes the changed task followed by the stats line.
func (a *App) printChange(verb string, snap *api.Snapshot) {
	if snap.Changed != nil {
		fmt.Fprintf(a.out, "%s: %s\n", verb, a.formatter.FormatTask(*snap.Changed))
	}
	fmt.Fprintln(a.out, a.formatter.FormatStats(snap.Stats))
}

// parseTaskID parses a positional task id argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", arg, "must be a whole number")
	}
	return id, nil
}
