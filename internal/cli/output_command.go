package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"todo/internal/api"
	"todo/internal/domain"
	"todo/internal/errors"
)

// exportDocument is the shape written by the json and yaml formats.
type exportDocument struct {
	Tasks []domain.TaskRecord `json:"tasks" yaml:"tasks"`
	Stats domain.Stats        `json:"stats" yaml:"stats"`
	Theme domain.Theme        `json:"theme" yaml:"theme"`
}

// OutputCommand handles the output command
type OutputCommand struct {
	app    *App
	mapper *domain.TaskMapper
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app, mapper: domain.NewTaskMapper()}
}

// Execute runs the output command
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	format := c.app.config.Commands.OutputDefaultFormat
	if len(args) > 0 {
		if !strings.HasPrefix(args[0], "format=") {
			return errors.NewInvalidInputError("format", args[0], "usage: todo output format=json|csv|yaml")
		}
		format = strings.TrimPrefix(args[0], "format=")
	}

	snap := c.app.api.Snapshot()
	switch format {
	case "json":
		return c.outputJSON(snap)
	case "csv":
		return c.outputCSV(snap)
	case "yaml":
		return c.outputYAML(snap)
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}

func (c *OutputCommand) document(snap *api.Snapshot) exportDocument {
	return exportDocument{
		Tasks: c.mapper.ToRecordSlice(snap.Tasks),
		Stats: snap.Stats,
		Theme: snap.Theme,
	}
}

func (c *OutputCommand) outputJSON(snap *api.Snapshot) error {
	encoder := json.NewEncoder(c.app.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(c.document(snap)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

func (c *OutputCommand) outputYAML(snap *api.Snapshot) error {
	encoder := yaml.NewEncoder(c.app.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(c.document(snap)); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return encoder.Close()
}

// outputCSV writes one row per task
func (c *OutputCommand) outputCSV(snap *api.Snapshot) error {
	writer := csv.NewWriter(c.app.out)

	header := []string{"ID", "Title", "Completed", "Created At"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range c.mapper.ToRecordSlice(snap.Tasks) {
		row := []string{
			strconv.FormatInt(record.ID, 10),
			record.Title,
			strconv.FormatBool(record.Completed),
			record.CreatedAt,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
