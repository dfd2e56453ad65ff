package guard

import (
	"testing"

	"banking-console/internal/navigation"
	"banking-console/internal/notify"
	"banking-console/internal/session/domain"
)

type fakeState struct{ authed bool }

func (f fakeState) IsAuthenticated() bool { return f.authed }

type fakeRoles struct{ roles map[string]bool }

func (f fakeRoles) HasRole(tag string) bool { return f.roles[tag] }

func collect(n *notify.Service) *[]notify.Notification {
	var got []notify.Notification
	n.Subscribe(func(v notify.Notification) { got = append(got, v) })
	return &got
}

func TestCanActivateUnauthenticated(t *testing.T) {
	notifier := notify.NewService()
	seen := collect(notifier)
	g := New(fakeState{authed: false}, fakeRoles{}, notifier)

	// Even a role-gated route sends anonymous users to login, never to
	// the unauthorized page.
	d := g.CanActivate(Route{Path: "/employees", Roles: []domain.Role{domain.RoleManager}})
	if d.Allowed {
		t.Fatal("anonymous user allowed through")
	}
	want := navigation.LoginRoute + "?" + navigation.ReturnURLParam + "=%2Femployees"
	if d.RedirectTo != want {
		t.Errorf("RedirectTo = %q, want %q", d.RedirectTo, want)
	}
	if len(*seen) != 0 {
		t.Errorf("unexpected notifications: %v", *seen)
	}
}

func TestCanActivateAuthenticatedNoRoleRequirement(t *testing.T) {
	g := New(fakeState{authed: true}, fakeRoles{}, notify.NewService())
	d := g.CanActivate(Route{Path: "/accounts"})
	if !d.Allowed {
		t.Errorf("decision = %+v, want allowed", d)
	}
}

func TestCanActivateRoleGranted(t *testing.T) {
	g := New(fakeState{authed: true}, fakeRoles{roles: map[string]bool{"MANAGER": true}}, notify.NewService())
	d := g.CanActivate(Route{Path: "/approvals", Roles: []domain.Role{domain.RoleManager}})
	if !d.Allowed {
		t.Errorf("decision = %+v, want allowed", d)
	}
}

func TestCanActivateRoleDenied(t *testing.T) {
	notifier := notify.NewService()
	seen := collect(notifier)
	g := New(fakeState{authed: true}, fakeRoles{roles: map[string]bool{"CLERK": true}}, notifier)

	d := g.CanActivate(Route{Path: "/employees", Roles: []domain.Role{domain.RoleManager}})
	if d.Allowed {
		t.Fatal("clerk allowed into a manager route")
	}
	if d.RedirectTo != navigation.UnauthorizedRoute {
		t.Errorf("RedirectTo = %q, want %q", d.RedirectTo, navigation.UnauthorizedRoute)
	}
	if len(*seen) != 1 || (*seen)[0].Level != notify.LevelWarning {
		t.Errorf("notifications = %v, want one warning", *seen)
	}
}

func TestCanActivateAnyOfSeveralRoles(t *testing.T) {
	g := New(fakeState{authed: true}, fakeRoles{roles: map[string]bool{"CLERK": true}}, notify.NewService())
	d := g.CanActivate(Route{Path: "/transactions", Roles: []domain.Role{domain.RoleManager, domain.RoleClerk}})
	if !d.Allowed {
		t.Errorf("decision = %+v, want allowed for either role", d)
	}
}
