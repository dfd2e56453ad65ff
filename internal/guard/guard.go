// Package guard decides whether a route may be entered by the current user.
package guard

import (
	"banking-console/internal/navigation"
	"banking-console/internal/notify"
	"banking-console/internal/session/domain"
)

// Route describes a navigable destination and the roles allowed to enter
// it. An empty Roles slice means any authenticated user may enter.
type Route struct {
	Path  string
	Roles []domain.Role
}

// Decision is the outcome of a guard check. When Allowed is false,
// RedirectTo names the route the caller must navigate to instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// SessionState reports whether a user is signed in.
type SessionState interface {
	IsAuthenticated() bool
}

// RoleChecker answers role membership questions for the current user.
type RoleChecker interface {
	HasRole(tag string) bool
}

type Guard struct {
	sessions SessionState
	roles    RoleChecker
	notifier *notify.Service
}

func New(sessions SessionState, roles RoleChecker, notifier *notify.Service) *Guard {
	return &Guard{sessions: sessions, roles: roles, notifier: notifier}
}

// CanActivate checks the route against the current user. Unauthenticated
// users are sent to login with the requested route preserved, whatever the
// route required. Authenticated users missing a required role are warned
// and sent to the unauthorized page, never back to login.
func (g *Guard) CanActivate(r Route) Decision {
	if !g.sessions.IsAuthenticated() {
		return Decision{RedirectTo: navigation.LoginRedirect(r.Path)}
	}
	if len(r.Roles) == 0 {
		return Decision{Allowed: true}
	}
	for _, role := range r.Roles {
		if g.roles.HasRole(string(role)) {
			return Decision{Allowed: true}
		}
	}
	g.notifier.Warning("You are not authorized to view this page.")
	return Decision{RedirectTo: navigation.UnauthorizedRoute}
}
