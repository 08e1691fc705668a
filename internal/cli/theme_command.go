package cli

import (
	"context"
	"fmt"

	"todo/internal/api"
	"todo/internal/domain"
	"todo/internal/errors"
)

// ThemeCommand handles the theme command
type ThemeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewThemeCommand creates a new theme command handler
func NewThemeCommand(app *App) *ThemeCommand {
	return &ThemeCommand{
		app:          app,
		errorHandler: NewErrorHandler(app.config.Application.Verbose),
	}
}

// Execute shows the theme, or changes it when given dark, light or toggle
func (c *ThemeCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(c.app.out, "Theme: %s\n", c.app.api.Theme())
		return nil
	}

	var (
		snap *api.Snapshot
		err  error
	)
	switch args[0] {
	case "toggle":
		snap, err = c.app.api.ToggleTheme(ctx)
	default:
		theme, known := domain.ParseTheme(args[0])
		if !known {
			return c.errorHandler.HandleSimple(errors.NewInvalidInputError("theme", args[0], "expected dark, light or toggle"))
		}
		snap, err = c.app.api.SetTheme(ctx, theme)
	}
	if err != nil {
		return c.errorHandler.Handle("change theme", err)
	}

	fmt.Fprintf(c.app.out, "Theme: %s\n", snap.Theme)
	return nil
}
