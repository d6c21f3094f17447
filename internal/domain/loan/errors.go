package loan

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("loan profile not found")

// ValidationError names the field that made a write unacceptable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
