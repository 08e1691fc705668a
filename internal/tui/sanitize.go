package tui

import (
	"strings"
	"unicode"
)

// Sanitize makes a title safe to print on a terminal. Line breaks and tabs
// become spaces and other control characters such as ESC are dropped.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}
