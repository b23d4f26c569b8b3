package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups for records that do not exist.
var ErrNotFound = errors.New("record not found")

// ErrSlugConflict is returned when a write keeps losing the slug
// uniqueness race after repeated retries.
var ErrSlugConflict = errors.New("could not assign a unique slug")

// ValidationError reports malformed input tied to a specific field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for the given field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
