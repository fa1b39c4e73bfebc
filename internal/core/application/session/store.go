// Package session implements the Session Store: the single owner of the client's
// token and of the identity the remote authority confirmed for it.
//
// Lifecycle:
//
//	Restore ──> (token from storage) ──> /auth/me ──> authenticated
//	Login   ──> /auth/login ──> /auth/me ──> authenticated, token persisted
//	Logout or Invalidate ──> anonymous, token purged
//
// The identity is never assumed locally: it is always the answer of /auth/me for
// the token it is stored with. Every change of the current session bumps a
// generation counter, so a round trip that started before a logout cannot write
// its result back afterwards.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// Store owns the token and identity. It is safe for concurrent use and
// implements ports.TokenSource for the central response interceptor.
type Store struct {
	gateway  ports.AuthGateway
	storage  ports.TokenStorage
	prompter ports.ReauthPrompter
	logger   *slog.Logger

	mu         sync.RWMutex
	current    *identity.Session
	generation uint64
}

var _ ports.TokenSource = (*Store)(nil)

// NewStore creates a Session Store with no current session. Call Restore to pick
// up a persisted token. prompter may be nil when nobody can be asked to log in again.
func NewStore(
	gateway ports.AuthGateway,
	storage ports.TokenStorage,
	prompter ports.ReauthPrompter,
	logger *slog.Logger,
) *Store {
	return &Store{
		gateway:  gateway,
		storage:  storage,
		prompter: prompter,
		logger:   logger.With("component", "SessionStore"),
	}
}

// Login exchanges credentials for a token, hydrates the identity with it and only
// then makes the session current and persists the token. Bad credentials fail with
// an AuthenticationError and leave the previous session untouched.
func (s *Store) Login(ctx context.Context, credentials identity.Credentials) (identity.Session, error) {
	if err := credentials.Validate(); err != nil {
		return identity.Session{}, err
	}

	token, err := s.gateway.Login(ctx, credentials)
	if err != nil {
		return identity.Session{}, err
	}

	ident, err := s.gateway.Me(ctx, token)
	if err != nil {
		return identity.Session{}, err
	}

	sess := identity.Session{Token: token, Identity: ident}

	// Storage is written under the lock so a racing logout cannot be undone.
	s.mu.Lock()
	s.current = &sess
	s.generation++
	if err = s.storage.Save(ctx, token); err != nil {
		s.logger.WarnContext(ctx, "token not persisted, session lasts until exit", "error", err)
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "logged in", "username", ident.Username(), "role", ident.Role().String())
	return sess, nil
}

// Restore rehydrates a persisted token at process start. It returns nil when no
// token is stored. A token the remote authority rejects is purged and nil is
// returned; a transport or server failure returns the error and keeps the stored
// token for the next attempt.
func (s *Store) Restore(ctx context.Context) (*identity.Session, error) {
	token, err := s.storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	s.mu.RLock()
	generation := s.generation
	s.mu.RUnlock()

	ident, err := s.gateway.Me(ctx, token)
	if err != nil {
		if !isRejection(err) {
			return nil, err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation != generation {
			return nil, nil
		}
		s.logger.InfoContext(ctx, "stored token rejected, purging", "error", err)
		return nil, s.storage.Clear(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		// Login or logout happened while hydrating; their outcome wins.
		if s.current == nil {
			return nil, nil
		}
		sess := *s.current
		return &sess, nil
	}

	sess := identity.Session{Token: token, Identity: ident}
	s.current = &sess
	s.generation++
	return &sess, nil
}

// Logout clears the session in memory and in durable storage. It is idempotent.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.generation++
	return s.storage.Clear(ctx)
}

// Current returns the authenticated session, if any.
func (s *Store) Current() (identity.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return identity.Session{}, false
	}
	return *s.current, true
}

// Token returns the current token, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Invalidate is the 401 handler. It logs out and prompts for re-authentication,
// unless token is no longer current: a stale response must not end a session that
// was established after its request left.
func (s *Store) Invalidate(ctx context.Context, token string, cause error) {
	s.mu.Lock()
	if s.current == nil || s.current.Token != token {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.generation++
	if err := s.storage.Clear(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to purge token", "error", err)
	}
	s.mu.Unlock()

	s.logger.WarnContext(ctx, "session invalidated by remote authority", "error", cause)

	if s.prompter != nil {
		s.prompter.PromptReauthentication(ctx, cause)
	}
}

func isRejection(err error) bool {
	return errors.Is(err, errs.ErrAuthentication) || errors.Is(err, errs.ErrAuthorization)
}
