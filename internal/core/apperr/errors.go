// Package apperr holds the error taxonomy shared by the business rules and
// the adapters: NotFound for absent references and ValidationError for
// rejected input.
package apperr

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned when a referenced group, user, post or follow edge
// does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned on login for an unknown user or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError lists the rejected input fields and a message per field.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records msg for field, keeping the first message if one is present.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Fields returns the field messages of a validation error, or nil.
func Fields(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
