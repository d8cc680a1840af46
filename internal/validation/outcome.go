// Package validation checks item payloads against the create and update
// schemas before they reach the handlers.
package validation

import "items-api/internal/transport/dto"

// Outcome is the result of validating a payload: either Valid[T] or
// Invalid[T]. Callers type-switch on it.
type Outcome[T any] interface {
	outcome()
}

// Valid carries the sanitized payload. Unknown fields are already gone.
type Valid[T any] struct {
	Value T
}

// Invalid carries every violated rule, in schema field order.
type Invalid[T any] struct {
	Errors []dto.FieldError
}

func (Valid[T]) outcome()   {}
func (Invalid[T]) outcome() {}

func invalid[T any](errs ...dto.FieldError) Outcome[T] {
	return Invalid[T]{Errors: errs}
}
