// Package validation holds the request schemas: pure, I/O-free field rules
// that report the first violation in declaration order.
package validation

import "fmt"

// FieldError identifies the first failing field of a payload.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func required(field, value string) *FieldError {
	if value == "" {
		return &FieldError{Field: field, Message: fmt.Sprintf("%q is required", field)}
	}
	return nil
}
