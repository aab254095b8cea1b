// Package common defines shared constants and sentinel errors used across
// the journal's storage, service and presentation layers. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal       = errors.New("internal error")
	ErrorAuthentication = errors.New("authentication failed")

	// Validation errors (bad mood, unknown stressor, empty email).
	ErrorValidation = errors.New("validation error")
)
