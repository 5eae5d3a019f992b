// Package common defines sentinel errors shared by the postboard layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrCorruptedData = errors.New("corrupted persisted data")

	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Validation errors, surfaced to the user as alerts.
	ErrValidation         = errors.New("validation error")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Authorization errors.
	ErrUnauthorized = errors.New("unauthorized")
)
