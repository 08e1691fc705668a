package cli

import (
	"context"
	"strings"

	"todo/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(app.config.Application.Verbose),
	}
}

// Execute runs the edit command: the first argument is the id, the rest the new title.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "edit", "usage: todo edit <id> \"new title\"")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	snap, err := c.app.api.RenameTask(ctx, id, strings.Join(args[1:], " "))
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	c.app.printChange("Updated", snap)
	return nil
}
