// Package users persists UserRecord rows. Implementations are backed by a
// local SQLite database or by Postgres; both enforce uniqueness of the
// normalized email with a unique index, so a concurrent duplicate insert is
// rejected by the storage engine rather than by the caller's pre-check.
package users

import (
	"context"

	"github.com/dmitrijs2005/pokedex/internal/client/models"
)

// Update describes a partial update; nil fields are left untouched.
// PasswordHash must already be digested by the caller.
type Update struct {
	Email        *string
	Phone        *string
	PasswordHash *string
}

// Repository describes the storage operations for user records.
type Repository interface {
	// Create inserts a new record. Returns common.ErrEmailTaken when a record
	// with the same normalized email already exists.
	Create(ctx context.Context, u *models.UserRecord) error

	// GetByEmail returns the record whose normalized email matches the
	// normalized argument, or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.UserRecord, error)

	// Update applies the non-nil fields of upd to the record with the given
	// id. Returns common.ErrNotFound when no such record exists and
	// common.ErrEmailTaken when the new email collides with another record.
	Update(ctx context.Context, id string, upd Update) error

	// DeleteByEmail removes the record permanently.
	// Returns common.ErrNotFound when no row matched.
	DeleteByEmail(ctx context.Context, email string) error
}
