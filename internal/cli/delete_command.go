package cli

import (
	"context"

	"todo/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(app.config.Application.Verbose),
	}
}

// Execute removes one task. There is no confirmation prompt.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: todo delete <id>")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	snap, err := c.app.api.RemoveTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	c.app.printChange("Deleted", snap)
	return nil
}
