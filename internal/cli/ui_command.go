package cli

import (
	"context"

	"todo/internal/api"
	"todo/internal/tui"
)

// UIRunner starts an interactive session over an API.
type UIRunner func(ctx context.Context, a api.API) error

// UICommand handles the ui command
type UICommand struct {
	app          *App
	run          UIRunner
	errorHandler *ErrorHandler
}

// NewUICommand creates a new ui command handler. A nil runner starts the
// terminal UI with the configured title limit.
func NewUICommand(app *App, run UIRunner) *UICommand {
	if run == nil {
		limit := app.config.Validation.TitleMaxLength
		run = func(ctx context.Context, a api.API) error {
			return tui.Run(ctx, a, tui.WithTitleLimit(limit))
		}
	}
	return &UICommand{
		app:          app,
		run:          run,
		errorHandler: NewErrorHandler(app.config.Application.Verbose),
	}
}

// Execute blocks until the interactive session ends
func (c *UICommand) Execute(ctx context.Context, args []string) error {
	if err := c.run(ctx, c.app.api); err != nil {
		return c.errorHandler.Handle("run interactive mode", err)
	}
	return nil
}
