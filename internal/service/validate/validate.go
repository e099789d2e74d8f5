// Package validate implements rule-table payload validation.
// Each entity declares one table of field rules with a required-on-create
// flag; create mode checks every rule, update mode only the fields actually
// present. All violations are collected before a single failure is raised.
package validate

import (
	"fmt"
	"strings"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// Mode selects which side of a rule applies.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

// Rule validates one field of a payload.
type Rule struct {
	// Field is the API field name reported in error mappings.
	Field string
	// RequiredOnCreate marks fields that must be present in create mode.
	// Absence is never a violation in update mode.
	RequiredOnCreate bool
	// RequiredMessage is reported when a required field is absent.
	RequiredMessage string
	// Present reports whether the field participates in validation.
	Present func() bool
	// Check validates a present field. An empty string means valid.
	Check func() string
}

// Run evaluates every rule and aggregates all violations into a single
// ValidationError. Returns nil when the payload is valid.
func Run(mode Mode, rules []Rule) error {
	var errs []domain.FieldError

	for _, r := range rules {
		if !r.Present() {
			if mode == ModeCreate && r.RequiredOnCreate {
				errs = append(errs, domain.FieldError{Field: r.Field, Message: r.RequiredMessage})
			}
			continue
		}
		if msg := r.Check(); msg != "" {
			errs = append(errs, domain.FieldError{Field: r.Field, Message: msg})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MaxTextLen is the ceiling for every free-text field.
const MaxTextLen = 255

// RequiredText checks a required string field: non-blank after trimming and
// within the length ceiling.
func RequiredText(value, label string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return label + " is required"
	}
	if len(trimmed) > MaxTextLen {
		return fmt.Sprintf("%s must be less than %d characters", label, MaxTextLen)
	}
	return ""
}

// OptionalText checks only the length ceiling.
func OptionalText(value, label string) string {
	if len(strings.TrimSpace(value)) > MaxTextLen {
		return fmt.Sprintf("%s must be less than %d characters", label, MaxTextLen)
	}
	return ""
}

// Min checks an integer lower bound.
func Min(value, min int, message string) string {
	if value < min {
		return message
	}
	return ""
}

// Range checks an inclusive integer range with distinct bound messages.
func Range(value, min, max int, belowMessage, aboveMessage string) string {
	if value < min {
		return belowMessage
	}
	if value > max {
		return aboveMessage
	}
	return ""
}

// Enum checks membership in a closed variant set.
func Enum(valid bool, label, values string) string {
	if !valid {
		return fmt.Sprintf("%s must be one of: %s", label, values)
	}
	return ""
}
