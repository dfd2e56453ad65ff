// Package rbac evaluates the signed-in user's role against route and
// capability requirements.
package rbac

import (
	"strings"

	"banking-console/internal/session/domain"
	"banking-console/internal/token"
)

// SessionSource exposes the current session to the evaluator.
type SessionSource interface {
	Current() *domain.Session
}

type Evaluator struct {
	sessions SessionSource
}

func NewEvaluator(sessions SessionSource) *Evaluator {
	return &Evaluator{sessions: sessions}
}

// HasRole reports whether the signed-in user holds the given role. The
// primary role recorded at login wins; when it does not match, the roles
// carried inside the token are consulted. A missing session or an empty
// token always fails, even if the token has since expired: expiry is a
// transport concern handled by the response interceptor.
func (e *Evaluator) HasRole(tag string) bool {
	s := e.sessions.Current()
	if s == nil || s.Token == "" {
		return false
	}
	if strings.EqualFold(string(s.Role), tag) {
		return true
	}
	return token.HasClaimRole(s.Token, tag)
}

func (e *Evaluator) IsManager() bool {
	return e.HasRole(string(domain.RoleManager))
}

func (e *Evaluator) IsClerk() bool {
	return e.HasRole(string(domain.RoleClerk))
}

// DisplayRole returns a human-readable name for the current user's role.
func (e *Evaluator) DisplayRole() string {
	switch {
	case e.IsManager():
		return "Manager"
	case e.IsClerk():
		return "Clerk"
	default:
		return "Unknown"
	}
}
