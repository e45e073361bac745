package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound         = errors.New("world not found")
	ErrUnauthenticated  = errors.New("sign in required")
	ErrForbidden        = errors.New("moderator access required")
	ErrAlreadyModerated = errors.New("world already moderated")
	ErrNotCollaborative = errors.New("world is not open for collaboration")
)

// ValidationError reports a rejected form step or payload.
// Field is the first offending field; Fields lists every offending field.
type ValidationError struct {
	Step   int
	Field  string
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	if e.Step > 0 {
		fmt.Fprintf(&b, " at step %d", e.Step)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": %s", e.Field)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, " (%s)", e.Reason)
	}
	return b.String()
}

func NewValidationError(step int, field, reason string) *ValidationError {
	return &ValidationError{Step: step, Field: field, Fields: []string{field}, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
