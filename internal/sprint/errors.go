package sprint

import (
	"errors"
	"fmt"
)

// ErrNoActiveSprint is returned by operations that require an active sprint
// when none exists.
var ErrNoActiveSprint = errors.New("no active sprint")

// ValidationError reports a rejected input. The store state is unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
