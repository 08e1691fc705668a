package cli

import (
	"context"

	"todo/internal/errors"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{
		app:          app,
		errorHandler: NewErrorHandler(app.config.Application.Verbose),
	}
}

// Execute flips the completion state of one task
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "toggle", "usage: todo toggle <id>")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	snap, err := c.app.api.ToggleTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	verb := "Reopened"
	if snap.Changed != nil && snap.Changed.Completed {
		verb = "Completed"
	}
	c.app.printChange(verb, snap)
	return nil
}
