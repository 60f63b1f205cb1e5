package application

import (
	"fmt"
	"strings"

	"memoflow/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateDraft checks that a draft carries a title, content or labels
func ValidateDraft(d domain.NoteDraft) error {
	if d.IsEmpty() {
		return &ValidationError{
			Field:   "note",
			Message: "title, content or labels is required",
		}
	}
	return nil
}

// ValidateColor checks that a color belongs to the palette
func ValidateColor(color string) error {
	if !domain.IsPaletteColor(color) {
		return &ValidationError{
			Field:   "color",
			Message: fmt.Sprintf("%s is not a palette color", color),
		}
	}
	return nil
}

// formatFieldName converts field names to readable words for error messages
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"id":     "note ID",
		"noteID": "note ID",
		"label":  "label",
		"path":   "file path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
