// Package session owns the signed-in user's state: establishing it at
// login, restoring it at startup, publishing changes, and tearing it down.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"banking-console/internal/bankapi"
	"banking-console/internal/navigation"
	"banking-console/internal/session/domain"
	"banking-console/internal/session/repository"
	"banking-console/internal/token"
)

// ErrNoToken is returned when the server accepts the credentials but the
// response carries no token to establish a session with.
var ErrNoToken = errors.New("authentication response carried no token")

// Authenticator exchanges credentials for a token. The API client
// satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, creds bankapi.Credentials) (*bankapi.AuthResponse, error)
}

// Store is the single owner of the current session. Reads are served from
// memory; the storage tiers only matter at login, logout and restore.
type Store struct {
	auth      Authenticator
	durable   repository.Tier
	ephemeral repository.Tier
	nav       navigation.Navigator
	log       *slog.Logger
	now       func() time.Time

	mu      sync.RWMutex
	current *domain.Session
	subs    []func(*domain.Session)
}

func NewStore(auth Authenticator, durable, ephemeral repository.Tier, nav navigation.Navigator, log *slog.Logger) *Store {
	return &Store{
		auth:      auth,
		durable:   durable,
		ephemeral: ephemeral,
		nav:       nav,
		log:       log,
		now:       time.Now,
	}
}

// Restore loads a previously persisted session, durable tier first. A tier
// that fails to load is treated as empty; a stale or tampered payload must
// not keep the user from reaching the login screen.
func (s *Store) Restore(ctx context.Context) {
	for _, tier := range []repository.Tier{s.durable, s.ephemeral} {
		loaded, err := tier.Load(ctx)
		if err != nil {
			s.log.Warn("discarding unreadable session", "error", err)
			continue
		}
		if loaded != nil {
			s.publish(loaded)
			return
		}
	}
}

// Login authenticates and establishes the session. With remember set the
// session lands in the durable tier, otherwise in the process-memory tier;
// the other tier is cleared so exactly one holds a session at a time.
func (s *Store) Login(ctx context.Context, creds bankapi.Credentials, remember bool) (*domain.Session, error) {
	resp, err := s.auth.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, ErrNoToken
	}

	sess := &domain.Session{
		UserID:      resolveUserID(resp),
		Username:    resp.Username,
		Role:        resolveRole(resp),
		Token:       resp.Token,
		FullName:    resp.FullName,
		Email:       resolveEmail(resp),
		PhoneNumber: resp.PhoneNumber,
	}
	if sess.Username == "" {
		sess.Username = creds.Username
	}

	keep, clear := s.durable, s.ephemeral
	if !remember {
		keep, clear = s.ephemeral, s.durable
	}
	s.persist(ctx, keep, clear, sess)
	s.publish(sess)
	return sess.Clone(), nil
}

// persist writes the session to keep and wipes clear. Storage failures are
// logged rather than surfaced: the sign-in itself succeeded and the
// in-memory session is authoritative.
func (s *Store) persist(ctx context.Context, keep, clear repository.Tier, sess *domain.Session) {
	if err := keep.Save(ctx, sess); err != nil {
		s.log.Warn("session not persisted", "error", err)
	}
	if err := clear.Clear(ctx); err != nil {
		s.log.Warn("stale session tier not cleared", "error", err)
	}
}

// Logout clears both tiers, drops the in-memory session and navigates to
// the login route.
func (s *Store) Logout(ctx context.Context) {
	if err := s.durable.Clear(ctx); err != nil {
		s.log.Warn("durable session not cleared", "error", err)
	}
	if err := s.ephemeral.Clear(ctx); err != nil {
		s.log.Warn("ephemeral session not cleared", "error", err)
	}
	s.publish(nil)
	s.nav.Navigate(navigation.LoginRoute)
}

// Current returns the signed-in session, or nil.
func (s *Store) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// IsAuthenticated reports whether a user is signed in with a token that has
// not expired.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Token returns the bearer token for outgoing requests. An expired token is
// never returned: the session may still render, but the credential must not
// leave the process.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.Token == "" {
		return ""
	}
	if !token.IsValid(s.current.Token, s.now()) {
		return ""
	}
	return s.current.Token
}

// Subscribe registers fn for session changes and replays the current value
// immediately.
func (s *Store) Subscribe(fn func(*domain.Session)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	current := s.current.Clone()
	s.mu.Unlock()
	fn(current)
}

func (s *Store) publish(sess *domain.Session) {
	s.mu.Lock()
	s.current = sess
	subs := make([]func(*domain.Session), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(sess.Clone())
	}
}

// resolveRole prefers the role the server named in the login response and
// falls back to the token claims, which default to clerk, the least
// privileged role.
func resolveRole(resp *bankapi.AuthResponse) domain.Role {
	if resp.Role != "" {
		return domain.Role(strings.ToUpper(resp.Role))
	}
	return token.ExtractRole(resp.Token)
}

func resolveUserID(resp *bankapi.AuthResponse) int64 {
	if resp.UserID != nil {
		return *resp.UserID
	}
	return token.ExtractUserID(resp.Token)
}

func resolveEmail(resp *bankapi.AuthResponse) string {
	if resp.EmailID != "" {
		return resp.EmailID
	}
	return resp.Email
}
