package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/pokedex/internal/client/models"
	"github.com/dmitrijs2005/pokedex/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL,
  password_hash TEXT NOT NULL
);
CREATE UNIQUE INDEX users_email_norm ON users (lower(email));`)
	require.NoError(t, err)
	return db
}

func sampleUser() *models.UserRecord {
	return &models.UserRecord{
		ID:           "u-1",
		Username:     "ash",
		Email:        "Ash@example.com",
		Phone:        "555-0100",
		PasswordHash: "abc123",
	}
}

func TestCreateAndGetByEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, sampleUser()))

	got, err := r.GetByEmail(ctx, "ash@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "Ash@example.com", got.Email) // canonical casing preserved
	assert.Equal(t, "abc123", got.PasswordHash)
}

func TestGetByEmail_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByEmail(context.Background(), "absent@example.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreate_DuplicateNormalizedEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, sampleUser()))

	dup := sampleUser()
	dup.ID = "u-2"
	dup.Email = "ASH@Example.COM" // different casing, same normalized key
	err := r.Create(ctx, dup)
	require.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestUpdate_PartialFields(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, sampleUser()))

	phone := "555-0199"
	require.NoError(t, r.Update(ctx, "u-1", Update{Phone: &phone}))

	got, err := r.GetByEmail(ctx, "ash@example.com")
	require.NoError(t, err)
	assert.Equal(t, "555-0199", got.Phone)
	assert.Equal(t, "ash", got.Username)     // untouched
	assert.Equal(t, "abc123", got.PasswordHash) // untouched
}

func TestUpdate_EmailChangeKeepsID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, sampleUser()))

	email := "misty@example.com"
	require.NoError(t, r.Update(ctx, "u-1", Update{Email: &email}))

	_, err := r.GetByEmail(ctx, "ash@example.com")
	require.ErrorIs(t, err, common.ErrNotFound)

	got, err := r.GetByEmail(ctx, "MISTY@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
}

func TestUpdate_EmailCollision(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, sampleUser()))

	other := sampleUser()
	other.ID = "u-2"
	other.Email = "misty@example.com"
	require.NoError(t, r.Create(ctx, other))

	email := "Ash@Example.com"
	err := r.Update(ctx, "u-2", Update{Email: &email})
	require.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestUpdate_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	phone := "555-0000"
	err := r.Update(context.Background(), "ghost", Update{Phone: &phone})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_NoFieldsIsNoop(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	require.NoError(t, r.Update(context.Background(), "ghost", Update{}))
}

func TestDeleteByEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, sampleUser()))

	require.NoError(t, r.DeleteByEmail(ctx, "ASH@example.com"))

	_, err := r.GetByEmail(ctx, "ash@example.com")
	require.ErrorIs(t, err, common.ErrNotFound)

	err = r.DeleteByEmail(ctx, "ash@example.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}
