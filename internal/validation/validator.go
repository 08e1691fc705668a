package validation

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"todo/internal/config"
)

// DefaultTitleMaxLength is used when no configuration is supplied
const DefaultTitleMaxLength = 500

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// MaxTaskID is the largest id a task may hold. math.MaxInt64 is excluded so
// that every valid id has a successor.
const MaxTaskID = math.MaxInt64 - 1

// TrimTitle removes surrounding white space, including the byte order mark
// U+FEFF that unicode.IsSpace does not cover.
func TrimTitle(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return TrimTitle(s) != ""
}

// IsValidStringLength checks if the trimmed rune count is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(TrimTitle(s))
	return length >= min && length <= max
}

// IsValidTitleLength checks a title against the configured maximum
func (v *Validator) IsValidTitleLength(title string) bool {
	return v.IsValidStringLength(title, 1, v.TitleMaxLength())
}

// IsValidTaskID checks if a task ID is within 1..MaxTaskID
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0 && id <= MaxTaskID
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return TrimTitle(s)
}

// TitleMaxLength returns configured maximum title length or default
func (v *Validator) TitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return DefaultTitleMaxLength
}
