package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/cli"
	"todo/internal/config"
	"todo/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Configuration: defaults, then TODO_* environment, then flags (applied by the root command)
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	logger := logging.New(cfg.Logging)
	slog.SetDefault(logger)
	logging.Debugf("database: %s (env %s)\n", cfg.GetDatabasePath(), cfg.Application.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cfg, cli.NewSQLiteOpener(logger))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
