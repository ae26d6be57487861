package model

import (
	"errors"
	"fmt"
)

// ErrLineItemNotFound is returned by line-item mutations when no item
// matches the given id.
var ErrLineItemNotFound = errors.New("line item not found")

// ValidationError represents a rejected field mutation. The document
// state is unchanged when one is returned.
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// UnknownFieldError represents a mutation addressed to a field name
// the target entity does not have.
type UnknownFieldError struct {
	Entity string
	Field  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown %s field %q", e.Entity, e.Field)
}

// NewUnknownFieldError creates a new unknown field error
func NewUnknownFieldError(entity, field string) *UnknownFieldError {
	return &UnknownFieldError{Entity: entity, Field: field}
}
