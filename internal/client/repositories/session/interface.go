// Package session persists the "last logged-in identity" blob: a small set of
// key-value pairs that survives process restarts. All keys are written and
// cleared together so a reader never observes a half-populated session.
package session

import "context"

// Keys of the persisted session blob. All three are present while logged in
// and all three are absent while logged out.
const (
	KeyUsername = "currentUsername"
	KeyEmail    = "currentEmail"
	KeyPhone    = "currentPhone"
)

// Repository stores the session blob.
type Repository interface {
	// SetAll upserts all pairs in one transaction.
	SetAll(ctx context.Context, values map[string]string) error

	// Get returns the value for key, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Clear removes every stored pair. Clearing an empty blob is a no-op.
	Clear(ctx context.Context) error
}
