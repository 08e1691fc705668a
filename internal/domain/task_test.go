package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	task := NewTask(1, "Buy milk", created)

	assert.Equal(t, Task{ID: 1, Title: "Buy milk", Completed: false, CreatedAt: created}, task)
}

func TestTask_StatusAndString(t *testing.T) {
	task := Task{ID: 1, Title: "Walk dog"}
	assert.Equal(t, "open", task.Status())
	assert.Equal(t, "Walk dog", task.String())

	task.Completed = true
	assert.Equal(t, "done", task.Status())
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		tasks    []Task
		expected Stats
	}{
		{
			name:     "empty",
			tasks:    nil,
			expected: Stats{},
		},
		{
			name: "three tasks one completed",
			tasks: []Task{
				{ID: 1, Title: "a", Completed: true},
				{ID: 2, Title: "b"},
				{ID: 3, Title: "c"},
			},
			expected: Stats{Total: 3, Completed: 1, Remaining: 2},
		},
		{
			name: "all completed",
			tasks: []Task{
				{ID: 1, Title: "a", Completed: true},
			},
			expected: Stats{Total: 1, Completed: 1, Remaining: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeStats(tt.tasks))
		})
	}
}

func TestTheme(t *testing.T) {
	theme, ok := ParseTheme("light")
	assert.True(t, ok)
	assert.Equal(t, ThemeLight, theme)

	theme, ok = ParseTheme("solarized")
	assert.False(t, ok)
	assert.Equal(t, ThemeDark, theme)

	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, "dark", DefaultTheme.String())
}
