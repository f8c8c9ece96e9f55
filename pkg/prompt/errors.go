package prompt

import (
	"errors"
	"fmt"
)

// ErrImmutable is returned when a mutation targets a built-in prompt.
var ErrImmutable = errors.New("prompt: built-in prompts are immutable")

// ValidationError reports a missing required field on create or update.
// The collection is left unchanged.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("prompt: required field %q is empty", e.Field)
}

// NotFoundError reports an operation that targeted an identity not present
// in the custom collection.
type NotFoundError struct {
	ID ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("prompt: no custom prompt with id %s", e.ID)
}
