package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"todo/internal/config"
	"todo/internal/domain"
	"todo/internal/tui"
)

// TaskFormatter renders tasks and stats as single terminal lines.
type TaskFormatter struct {
	config *config.Config
}

// NewTaskFormatter creates a formatter honouring the display settings in cfg.
func NewTaskFormatter(cfg *config.Config) *TaskFormatter {
	return &TaskFormatter{config: cfg}
}

// FormatTask renders a task as "[x] 3. Title (added 2 hours ago)".
func (f *TaskFormatter) FormatTask(task domain.Task) string {
	mark := " "
	if task.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %d. %s (added %s)", mark, task.ID, tui.Sanitize(task.Title), f.FormatCreated(task.CreatedAt))
}

// FormatCreated renders a creation time, relative when configured.
func (f *TaskFormatter) FormatCreated(t time.Time) string {
	if f.config.Display.RelativeTime {
		return humanize.RelTime(t, timeNow(), "ago", "from now")
	}
	return t.Local().Format(f.config.Time.DisplayFormat)
}

// FormatStats renders the summary line.
func (f *TaskFormatter) FormatStats(stats domain.Stats) string {
	return fmt.Sprintf("%d total, %d completed, %d remaining", stats.Total, stats.Completed, stats.Remaining)
}
