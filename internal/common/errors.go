// Package common contains shared constants and sentinel errors used across
// the Pokedex client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")

	// Storage backend failed to open or respond.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Auth errors. Wrong password and unknown email both map here so the
	// caller cannot tell which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
