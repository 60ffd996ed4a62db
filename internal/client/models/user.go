// Package models defines client-side data models for the Pokedex CLI.
package models

// UserRecord is a locally stored account. ID is an immutable surrogate
// identifier; Email is a mutable field with a uniqueness guarantee on its
// normalized (lower-cased) form at the storage layer.
type UserRecord struct {
	// ID is a globally unique identifier, assigned at registration.
	ID string

	// Username is the display name.
	Username string

	// Email keeps the casing the user typed; lookups normalize it.
	Email string

	// Phone is a free-form contact number.
	Phone string

	// PasswordHash is the stored digest, produced by a hashx.Hasher.
	PasswordHash string
}
