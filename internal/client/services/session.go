package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/pokedex/internal/client/models"
	"github.com/dmitrijs2005/pokedex/internal/client/repositories/session"
	"github.com/dmitrijs2005/pokedex/internal/common"
	"github.com/dmitrijs2005/pokedex/internal/logging"
)

// State is the session lifecycle state.
type State int

const (
	StateLoggedOut State = iota
	StateAuthenticating
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateLoggedIn:
		return "logged in"
	default:
		return "logged out"
	}
}

// Session holds the process-wide "current user" slot. Successful login
// persists a minimal identity blob so a later process start can restore the
// session without re-entering the password (trust-on-restore within the same
// installation).
//
// The UI is expected to issue at most one Login/Register at a time; the
// mutex only guarantees that observers never see a torn state, the published
// result is last-wins.
type Session struct {
	creds *Credentials
	blob  session.Repository
	log   logging.Logger

	mu       sync.Mutex
	state    State
	current  *models.UserRecord
	onChange func(State, *models.UserRecord)
}

func NewSession(creds *Credentials, blob session.Repository, log logging.Logger) *Session {
	return &Session{creds: creds, blob: blob, log: log, state: StateLoggedOut}
}

// SetOnChange registers a subscriber notified after every published state
// transition. Called from the same goroutine that triggered the transition.
func (s *Session) SetOnChange(fn func(State, *models.UserRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *Session) setState(state State, u *models.UserRecord) {
	s.mu.Lock()
	s.state = state
	s.current = u
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(state, u)
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the logged-in record, or nil.
func (s *Session) Current() *models.UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Register delegates to the credential store. Success does not log the user
// in; the caller still has to call Login.
func (s *Session) Register(ctx context.Context, email, username, phone, password string) error {
	return s.creds.Register(ctx, email, username, phone, password)
}

// Login verifies the credentials, persists the identity blob and publishes
// the LoggedIn state. On any failure the state returns to LoggedOut and the
// blob is left untouched.
func (s *Session) Login(ctx context.Context, email, password string) (*models.UserRecord, error) {
	s.setState(StateAuthenticating, nil)

	u, err := s.creds.Verify(ctx, email, password)
	if err != nil {
		s.setState(StateLoggedOut, nil)
		return nil, err
	}

	if err := s.persistBlob(ctx, u); err != nil {
		s.setState(StateLoggedOut, nil)
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.setState(StateLoggedIn, u)
	s.log.Info(ctx, "login successful", "id", u.ID)
	return u, nil
}

// All three keys are written together so restore never sees a partial blob.
func (s *Session) persistBlob(ctx context.Context, u *models.UserRecord) error {
	return s.blob.SetAll(ctx, map[string]string{
		session.KeyUsername: u.Username,
		session.KeyEmail:    u.Email,
		session.KeyPhone:    u.Phone,
	})
}

// RestoreFromPersisted resolves the persisted identity on process start.
// A stored email is trusted: the record is looked up without a password.
// When the record no longer exists the stale blob is cleared and the session
// stays LoggedOut.
func (s *Session) RestoreFromPersisted(ctx context.Context) error {
	email, err := s.blob.Get(ctx, session.KeyEmail)
	if err != nil {
		return fmt.Errorf("failed to read session blob: %w", err)
	}
	if email == "" {
		return nil
	}

	u, err := s.creds.Lookup(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Warn(ctx, "persisted session points at a missing account, clearing", "email", NormalizeEmail(email))
			return s.blob.Clear(ctx)
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	s.setState(StateLoggedIn, u)
	s.log.Info(ctx, "session restored", "id", u.ID)
	return nil
}

// Logout clears the slot and the persisted blob. Logging out while already
// logged out is a no-op.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.blob.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session blob: %w", err)
	}
	s.setState(StateLoggedOut, nil)
	return nil
}

// UpdateProfile applies a partial update to the logged-in account and
// re-persists the identity blob to match.
func (s *Session) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	u := s.Current()
	if u == nil {
		return common.ErrInvalidCredentials
	}

	if err := s.creds.Update(ctx, u.ID, upd); err != nil {
		return err
	}

	updated := *u
	if upd.Email != nil {
		updated.Email = *upd.Email
	}
	if upd.Phone != nil {
		updated.Phone = *upd.Phone
	}
	if err := s.persistBlob(ctx, &updated); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.setState(StateLoggedIn, &updated)
	return nil
}

// DeleteAccount removes the logged-in account and ends the session.
func (s *Session) DeleteAccount(ctx context.Context) error {
	u := s.Current()
	if u == nil {
		return common.ErrInvalidCredentials
	}

	if err := s.creds.Delete(ctx, u.Email); err != nil {
		return err
	}
	return s.Logout(ctx)
}
