package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"banking-console/internal/bankapi"
	"banking-console/internal/navigation"
	"banking-console/internal/session/domain"
	"banking-console/internal/session/repository"
	"banking-console/internal/token"
)

type fakeAuth struct {
	resp  *bankapi.AuthResponse
	err   error
	creds bankapi.Credentials
}

func (f *fakeAuth) Authenticate(_ context.Context, creds bankapi.Credentials) (*bankapi.AuthResponse, error) {
	f.creds = creds
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeNav struct {
	current string
	visited []string
}

func (n *fakeNav) Current() string { return n.current }
func (n *fakeNav) Navigate(target string) {
	n.current = target
	n.visited = append(n.visited, target)
}

type failingTier struct{ err error }

func (t failingTier) Load(context.Context) (*domain.Session, error) { return nil, t.err }
func (t failingTier) Save(context.Context, *domain.Session) error   { return t.err }
func (t failingTier) Clear(context.Context) error                   { return t.err }

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func futureToken(t *testing.T) string {
	t.Helper()
	tok, err := token.MintExpiring(time.Now().Add(time.Hour), "MANAGER")
	if err != nil {
		t.Fatalf("MintExpiring: %v", err)
	}
	return tok
}

func TestLoginRemembered(t *testing.T) {
	tok := futureToken(t)
	auth := &fakeAuth{resp: &bankapi.AuthResponse{Token: tok, Username: "mgr", Role: "MANAGER"}}
	durable := repository.NewMemoryTier()
	ephemeral := repository.NewMemoryTier()
	store := NewStore(auth, durable, ephemeral, &fakeNav{}, discard())
	ctx := context.Background()

	sess, err := store.Login(ctx, bankapi.Credentials{Username: "mgr", Password: "pw"}, true)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Role != domain.RoleManager || sess.Token != tok {
		t.Errorf("session = %+v", sess)
	}
	if got, _ := durable.Load(ctx); got == nil {
		t.Error("durable tier empty after remembered login")
	}
	if got, _ := ephemeral.Load(ctx); got != nil {
		t.Error("ephemeral tier should be cleared on remembered login")
	}
	if !store.IsAuthenticated() {
		t.Error("IsAuthenticated = false after login")
	}
}

func TestLoginNotRemembered(t *testing.T) {
	tok := futureToken(t)
	auth := &fakeAuth{resp: &bankapi.AuthResponse{Token: tok, Username: "clerk1", Role: "CLERK"}}
	durable := repository.NewMemoryTier()
	ephemeral := repository.NewMemoryTier()
	store := NewStore(auth, durable, ephemeral, &fakeNav{}, discard())
	ctx := context.Background()

	// A stale remembered session must not outlive the new sign-in.
	durable.Save(ctx, &domain.Session{Username: "old", Token: "h.p.s"})

	if _, err := store.Login(ctx, bankapi.Credentials{Username: "clerk1", Password: "pw"}, false); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got, _ := ephemeral.Load(ctx); got == nil || got.Username != "clerk1" {
		t.Errorf("ephemeral tier = %+v", got)
	}
	if got, _ := durable.Load(ctx); got != nil {
		t.Error("durable tier should be cleared on non-remembered login")
	}
}

func TestLoginFailurePassesThrough(t *testing.T) {
	authErr := &bankapi.Error{Status: 401, Message: "Invalid credentials"}
	store := NewStore(&fakeAuth{err: authErr},
		repository.NewMemoryTier(), repository.NewMemoryTier(), &fakeNav{}, discard())

	_, err := store.Login(context.Background(), bankapi.Credentials{Username: "x", Password: "y"}, true)
	if !errors.Is(err, authErr) {
		t.Fatalf("Login error = %v, want %v", err, authErr)
	}
	if store.Current() != nil {
		t.Error("session established after failed login")
	}
}

func TestLoginWithoutToken(t *testing.T) {
	store := NewStore(&fakeAuth{resp: &bankapi.AuthResponse{Username: "mgr"}},
		repository.NewMemoryTier(), repository.NewMemoryTier(), &fakeNav{}, discard())

	_, err := store.Login(context.Background(), bankapi.Credentials{Username: "mgr", Password: "pw"}, true)
	if !errors.Is(err, ErrNoToken) {
		t.Fatalf("Login error = %v, want ErrNoToken", err)
	}
}

func TestLoginFallbacks(t *testing.T) {
	tok, err := token.MintHS256(jwt.MapClaims{
		"exp":    time.Now().Add(time.Hour).Unix(),
		"roles":  []string{"MANAGER"},
		"userId": 42,
	})
	if err != nil {
		t.Fatalf("MintHS256: %v", err)
	}
	auth := &fakeAuth{resp: &bankapi.AuthResponse{Token: tok, EmailID: "mgr@bank.test"}}
	store := NewStore(auth, repository.NewMemoryTier(), repository.NewMemoryTier(), &fakeNav{}, discard())

	sess, err := store.Login(context.Background(), bankapi.Credentials{Username: "typed-name", Password: "pw"}, true)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Username != "typed-name" {
		t.Errorf("username fallback = %q, want typed-name", sess.Username)
	}
	if sess.Role != domain.RoleManager {
		t.Errorf("role fallback = %q, want MANAGER from token claims", sess.Role)
	}
	if sess.UserID != 42 {
		t.Errorf("userId fallback = %d, want 42 from token claims", sess.UserID)
	}
	if sess.Email != "mgr@bank.test" {
		t.Errorf("email = %q", sess.Email)
	}
}

func TestLoginPersistFailureIsNotFatal(t *testing.T) {
	tok := futureToken(t)
	auth := &fakeAuth{resp: &bankapi.AuthResponse{Token: tok, Username: "mgr", Role: "MANAGER"}}
	store := NewStore(auth, failingTier{err: errors.New("disk full")},
		repository.NewMemoryTier(), &fakeNav{}, discard())

	sess, err := store.Login(context.Background(), bankapi.Credentials{Username: "mgr", Password: "pw"}, true)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess == nil || store.Current() == nil {
		t.Error("in-memory session lost to a storage failure")
	}
}

func TestRestoreDurableFirst(t *testing.T) {
	durable := repository.NewMemoryTier()
	ephemeral := repository.NewMemoryTier()
	ctx := context.Background()
	durable.Save(ctx, &domain.Session{Username: "from-durable", Token: "h.p.s"})
	ephemeral.Save(ctx, &domain.Session{Username: "from-ephemeral", Token: "h.p.s"})

	store := NewStore(&fakeAuth{}, durable, ephemeral, &fakeNav{}, discard())
	store.Restore(ctx)
	if got := store.Current(); got == nil || got.Username != "from-durable" {
		t.Errorf("Current = %+v, want the durable session", got)
	}
}

func TestRestoreSkipsUnreadableTier(t *testing.T) {
	ephemeral := repository.NewMemoryTier()
	ctx := context.Background()
	ephemeral.Save(ctx, &domain.Session{Username: "fallback", Token: "h.p.s"})

	store := NewStore(&fakeAuth{}, failingTier{err: errors.New("tampered")}, ephemeral, &fakeNav{}, discard())
	store.Restore(ctx)
	if got := store.Current(); got == nil || got.Username != "fallback" {
		t.Errorf("Current = %+v, want the fallback session", got)
	}
}

func TestExpiredTokenNeverLeaves(t *testing.T) {
	expired, err := token.MintExpiring(time.Now().Add(-time.Hour), "MANAGER")
	if err != nil {
		t.Fatalf("MintExpiring: %v", err)
	}
	store := NewStore(&fakeAuth{}, repository.NewMemoryTier(), repository.NewMemoryTier(), &fakeNav{}, discard())
	store.publish(&domain.Session{Username: "mgr", Token: expired, Role: domain.RoleManager})

	if store.Current() == nil {
		t.Fatal("expired session should still render")
	}
	if store.Token() != "" {
		t.Error("expired token returned for outgoing requests")
	}
	if store.IsAuthenticated() {
		t.Error("IsAuthenticated = true with expired token")
	}
}

func TestSubscribeReplaysAndPublishes(t *testing.T) {
	store := NewStore(&fakeAuth{resp: &bankapi.AuthResponse{Token: futureToken(t), Username: "mgr", Role: "MANAGER"}},
		repository.NewMemoryTier(), repository.NewMemoryTier(), &fakeNav{}, discard())

	var seen []*domain.Session
	store.Subscribe(func(s *domain.Session) { seen = append(seen, s) })
	if len(seen) != 1 || seen[0] != nil {
		t.Fatalf("replay = %v, want one nil value", seen)
	}

	if _, err := store.Login(context.Background(), bankapi.Credentials{Username: "mgr", Password: "pw"}, true); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if len(seen) != 2 || seen[1] == nil || seen[1].Username != "mgr" {
		t.Fatalf("after login seen = %v", seen)
	}

	store.Logout(context.Background())
	if len(seen) != 3 || seen[2] != nil {
		t.Fatalf("after logout seen = %v", seen)
	}
}

func TestLogout(t *testing.T) {
	nav := &fakeNav{current: "/accounts"}
	durable := repository.NewMemoryTier()
	ephemeral := repository.NewMemoryTier()
	ctx := context.Background()
	durable.Save(ctx, &domain.Session{Username: "mgr", Token: "h.p.s"})

	store := NewStore(&fakeAuth{}, durable, ephemeral, nav, discard())
	store.Restore(ctx)
	store.Logout(ctx)

	if store.Current() != nil {
		t.Error("session survives logout")
	}
	if got, _ := durable.Load(ctx); got != nil {
		t.Error("durable tier not cleared on logout")
	}
	if nav.current != navigation.LoginRoute {
		t.Errorf("navigated to %q, want login", nav.current)
	}
}
