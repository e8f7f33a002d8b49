package errors

import (
	"math"
	"regexp"
	"unicode"
)

// maxIDLength bounds group and pane identifiers.
const maxIDLength = 128

// idRegex matches identifiers usable as group, pane and divider ids. They end
// up in URLs, TOML keys and terminal labels, so the alphabet stays small.
var idRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)

// ValidateID validates a group or pane identifier.
//
// Validation rules:
//   - No empty ids
//   - Maximum length of 128 characters
//   - No control characters or whitespace
//   - Must start with a letter or digit; may contain . _ : -
func ValidateID(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "%s id cannot be empty", kind)
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "%s id too long (max %d characters)", kind, maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "%s id contains invalid characters", kind)
		}
	}

	if !idRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid %s id: %q", kind, id)
	}

	return nil
}

// ValidatePercentage checks that v is a finite number in [0, 100].
// name identifies the field in the error message.
func ValidatePercentage(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConstraints, "%s must be a finite number", name)
	}
	if v < 0 || v > 100 {
		return New(ErrCodeInvalidConstraints, "%s must be between 0 and 100, got %g", name, v)
	}
	return nil
}

// ValidateFinite checks that v is neither NaN nor infinite.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	return nil
}
