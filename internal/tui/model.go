// Package tui is the interactive terminal front end. It only talks to the
// task list through api.API.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/api"
	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/validation"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

const helpText = "a add • e/enter edit • space/x toggle • d delete • t theme • q quit"

// Model is the bubbletea model for the task list screen.
type Model struct {
	ctx       context.Context
	api       api.API
	snapshot  *api.Snapshot
	styles    styles
	cursor    int
	mode      mode
	editingID int64
	input     textinput.Model
	status    string
	statusErr bool
}

// Option configures a Model.
type Option func(*Model)

// WithTitleLimit caps how many characters the title input accepts. It should
// match the limit the API validates against.
func WithTitleLimit(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.input.CharLimit = n
		}
	}
}

// Run starts the interactive session and blocks until the user quits.
func Run(ctx context.Context, a api.API, opts ...Option) error {
	program := tea.NewProgram(NewModel(ctx, a, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// NewModel creates a Model showing the current state of a.
func NewModel(ctx context.Context, a api.API, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = validation.DefaultTitleMaxLength
	ti.Width = 50

	snap := a.Snapshot()
	m := Model{
		ctx:      ctx,
		api:      a,
		snapshot: snap,
		styles:   newStyles(snap.Theme),
		mode:     modeList,
		input:    ti,
		status:   "Press 'a' to add a task.",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeList {
			return m.updateListMode(msg.String())
		}
		return m.updateInputMode(msg)
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 10)
	}
	return m, nil
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	tasks := m.snapshot.Tasks

	switch key {
	case "q":
		return m, tea.Quit
	case "j", "down":
		m.cursor = clampCursor(m.cursor+1, len(tasks))
	case "k", "up":
		m.cursor = clampCursor(m.cursor-1, len(tasks))
	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		m.setStatus("New task: type a title and press Enter, Esc to cancel")
		return m, m.input.Focus()
	case "e", "enter":
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		current, err := m.api.GetTask(task.ID)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.mode = modeEdit
		m.editingID = current.ID
		m.input.SetValue(current.Title)
		m.input.CursorEnd()
		m.setStatus(fmt.Sprintf("Editing task %d: press Enter to save, Esc to cancel", current.ID))
		return m, m.input.Focus()
	case " ", "x":
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		snap, err := m.api.ToggleTask(m.ctx, task.ID)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.apply(snap)
		if snap.Changed.Completed {
			m.setStatus("Task completed")
		} else {
			m.setStatus("Task reopened")
		}
	case "d":
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		snap, err := m.api.RemoveTask(m.ctx, task.ID)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.apply(snap)
		m.setStatus("Task deleted")
	case "t":
		snap, err := m.api.ToggleTheme(m.ctx)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.apply(snap)
		m.setStatus(fmt.Sprintf("Switched to %s theme", snap.Theme))
	}
	return m, nil
}

func (m Model) updateInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leaveInput()
		m.setStatus("Cancelled")
		return m, nil
	case "enter":
		title := m.input.Value()
		if validation.TrimTitle(title) == "" {
			m.statusErr = true
			m.status = "Task title cannot be empty"
			return m, nil
		}

		var (
			snap   *api.Snapshot
			err    error
			adding = m.mode == modeAdd
		)
		if adding {
			snap, err = m.api.AddTask(m.ctx, title)
		} else {
			snap, err = m.api.RenameTask(m.ctx, m.editingID, title)
		}
		if err != nil {
			m.setError(err)
			// Retyping cannot fix these, so drop back to the list.
			if errors.IsNotFound(err) || errors.HasCode(err, errors.CodeIDsExhausted) {
				m.leaveInput()
			}
			return m, nil
		}

		m.leaveInput()
		m.apply(snap)
		if adding {
			m.cursor = clampCursor(len(snap.Tasks)-1, len(snap.Tasks))
			m.setStatus("Task added")
		} else {
			m.setStatus("Task updated")
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(fmt.Sprintf("Tasks (%s)", m.snapshot.Theme)))
	b.WriteString("\n")

	if len(m.snapshot.Tasks) == 0 {
		b.WriteString(m.styles.help.Render("No tasks yet."))
		b.WriteString("\n")
	}
	for i, task := range m.snapshot.Tasks {
		b.WriteString(m.renderTask(i, task))
		b.WriteString("\n")
	}

	stats := m.snapshot.Stats
	b.WriteString(m.styles.stats.Render(fmt.Sprintf("%d total • %d completed • %d remaining", stats.Total, stats.Completed, stats.Remaining)))
	b.WriteString("\n\n")

	if m.mode != modeList {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.statusErr {
		b.WriteString(m.styles.err.Render(m.status))
	} else {
		b.WriteString(m.styles.status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTask(i int, task domain.Task) string {
	prefix := "  "
	if i == m.cursor {
		prefix = "> "
	}
	mark := "[ ]"
	if task.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s%s %s", prefix, mark, Sanitize(task.Title))

	switch {
	case i == m.cursor:
		return m.styles.selected.Render(line)
	case task.Completed:
		return m.styles.done.Render(line)
	default:
		return m.styles.item.Render(line)
	}
}

// apply adopts a new snapshot and keeps the cursor in range.
func (m *Model) apply(snap *api.Snapshot) {
	if snap.Theme != m.snapshot.Theme {
		m.styles = newStyles(snap.Theme)
	}
	m.snapshot = snap
	m.cursor = clampCursor(m.cursor, len(snap.Tasks))
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.editingID = 0
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = errors.GetUserMessage(err)
	m.statusErr = true
}

func (m Model) selected() (domain.Task, bool) {
	if len(m.snapshot.Tasks) == 0 {
		return domain.Task{}, false
	}
	return m.snapshot.Tasks[clampCursor(m.cursor, len(m.snapshot.Tasks))], true
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
