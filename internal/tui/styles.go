package tui

import (
	"github.com/charmbracelet/lipgloss"

	"todo/internal/domain"
)

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	success lipgloss.Color
	danger  lipgloss.Color
}

var palettes = map[domain.Theme]palette{
	domain.ThemeDark: {
		text:    lipgloss.Color("#E5E7EB"),
		muted:   lipgloss.Color("#6B7280"),
		accent:  lipgloss.Color("#818CF8"),
		success: lipgloss.Color("#34D399"),
		danger:  lipgloss.Color("#F87171"),
	},
	domain.ThemeLight: {
		text:    lipgloss.Color("#111827"),
		muted:   lipgloss.Color("#9CA3AF"),
		accent:  lipgloss.Color("#4F46E5"),
		success: lipgloss.Color("#047857"),
		danger:  lipgloss.Color("#B91C1C"),
	},
}

type styles struct {
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style
	stats    lipgloss.Style
	status   lipgloss.Style
	err      lipgloss.Style
	help     lipgloss.Style
}

func newStyles(theme domain.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[domain.DefaultTheme]
	}

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent).MarginBottom(1),
		item:     lipgloss.NewStyle().Foreground(p.text),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		done:     lipgloss.NewStyle().Strikethrough(true).Foreground(p.muted),
		stats:    lipgloss.NewStyle().Foreground(p.muted).MarginTop(1),
		status:   lipgloss.NewStyle().Foreground(p.success),
		err:      lipgloss.NewStyle().Foreground(p.danger),
		help:     lipgloss.NewStyle().Foreground(p.muted),
	}
}
