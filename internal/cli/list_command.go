package cli

import (
	"context"
	"fmt"

	"todo/internal/domain"
	"todo/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute prints tasks in insertion order. An optional "open" or "done"
// argument filters by completion.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	filter := "all"
	if len(args) > 0 {
		filter = args[0]
	}

	var keep func(domain.Task) bool
	switch filter {
	case "all":
		keep = func(domain.Task) bool { return true }
	case "open", "done":
		keep = func(t domain.Task) bool { return t.Status() == filter }
	default:
		return errors.NewInvalidInputError("filter", filter, "expected all, open or done")
	}

	snap := c.app.api.Snapshot()
	if len(snap.Tasks) == 0 {
		fmt.Fprintln(c.app.out, "No tasks yet. Add one with: todo add \"your task\"")
		return nil
	}

	shown := 0
	for _, task := range snap.Tasks {
		if !keep(task) {
			continue
		}
		fmt.Fprintln(c.app.out, c.app.formatter.FormatTask(task))
		shown++
	}
	if shown == 0 {
		fmt.Fprintf(c.app.out, "No %s tasks\n", filter)
	}

	fmt.Fprintln(c.app.out)
	fmt.Fprintln(c.app.out, c.app.formatter.FormatStats(snap.Stats))
	return nil
}
