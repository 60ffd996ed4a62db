// Package services contains the application services of the Pokedex client:
// the credential store (hash-and-verify over the users repository) and the
// session manager built on top of it.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pokedex/internal/client/models"
	"github.com/dmitrijs2005/pokedex/internal/client/repositories/users"
	"github.com/dmitrijs2005/pokedex/internal/common"
	"github.com/dmitrijs2005/pokedex/internal/hashx"
	"github.com/dmitrijs2005/pokedex/internal/logging"
	"github.com/google/uuid"
)

// ProfileUpdate is a partial account update; nil fields are left untouched.
// NewPassword is plaintext and gets digested before storage.
type ProfileUpdate struct {
	Email       *string
	Phone       *string
	NewPassword *string
}

// Credentials verifies and maintains user records. The digest scheme is
// injected so a stronger hash can replace the legacy one without touching
// the repository contract.
type Credentials struct {
	users  users.Repository
	hasher hashx.Hasher
	log    logging.Logger
}

func NewCredentials(repo users.Repository, hasher hashx.Hasher, log logging.Logger) *Credentials {
	return &Credentials{users: repo, hasher: hasher, log: log}
}

// NormalizeEmail returns the lower-cased, trimmed form used as lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. The read-before-write check yields the
// friendly common.ErrEmailTaken; the unique index underneath closes the race
// between two concurrent registrations, so the insert itself can surface the
// same error.
func (c *Credentials) Register(ctx context.Context, email, username, phone, password string) error {
	norm := NormalizeEmail(email)
	if norm == "" {
		return errors.New("email is required")
	}
	if password == "" {
		return errors.New("password is required")
	}

	_, err := c.users.GetByEmail(ctx, norm)
	if err == nil {
		return common.ErrEmailTaken
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("registration pre-check failed: %w", err)
	}

	digest, err := c.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.UserRecord{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.TrimSpace(email),
		Phone:        phone,
		PasswordHash: digest,
	}
	if err := c.users.Create(ctx, u); err != nil {
		return err
	}

	c.log.Info(ctx, "user registered", "id", u.ID)
	return nil
}

// Verify checks email/password and returns the stored record. Unknown email
// and wrong password are indistinguishable to the caller; the difference is
// only logged at debug level.
func (c *Credentials) Verify(ctx context.Context, email, password string) (*models.UserRecord, error) {
	u, err := c.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.log.Debug(ctx, "verify failed", "reason", "unknown email")
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify lookup failed: %w", err)
	}

	if !c.hasher.Verify(password, u.PasswordHash) {
		c.log.Debug(ctx, "verify failed", "reason", "password mismatch")
		return nil, common.ErrInvalidCredentials
	}
	return u, nil
}

// Lookup fetches a record by email without a password check. Used by session
// restore only.
func (c *Credentials) Lookup(ctx context.Context, email string) (*models.UserRecord, error) {
	return c.users.GetByEmail(ctx, NormalizeEmail(email))
}

// Update applies a partial profile update to the record with the given id.
func (c *Credentials) Update(ctx context.Context, id string, upd ProfileUpdate) error {
	repoUpd := users.Update{Email: upd.Email, Phone: upd.Phone}
	if upd.NewPassword != nil {
		digest, err := c.hasher.Hash(*upd.NewPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		repoUpd.PasswordHash = &digest
	}
	return c.users.Update(ctx, id, repoUpd)
}

// Delete removes the account permanently.
func (c *Credentials) Delete(ctx context.Context, email string) error {
	return c.users.DeleteByEmail(ctx, NormalizeEmail(email))
}
