package cli

import (
	"context"
	"fmt"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app *App
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

// Execute prints the summary line
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	fmt.Fprintln(c.app.out, c.app.formatter.FormatStats(c.app.api.Snapshot().Stats))
	return nil
}
