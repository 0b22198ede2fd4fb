package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no recommendation matches a lookup that
// requires one.
var ErrNotFound = errors.New("recommendation not found")

// DataValidationError reports malformed, incomplete or mistyped input, or an
// update on a recommendation that was never created.
type DataValidationError struct {
	// Field is the JSON key at fault, empty when the whole payload is wrong.
	Field   string
	Message string
}

func (e *DataValidationError) Error() string {
	return e.Message
}

func newValidationError(field, format string, args ...interface{}) *DataValidationError {
	return &DataValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is or wraps a *DataValidationError.
func IsValidationError(err error) bool {
	var verr *DataValidationError
	return errors.As(err, &verr)
}
