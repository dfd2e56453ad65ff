package domain

import "testing"

func TestCloneIsIndependent(t *testing.T) {
	original := &Session{UserID: 7, Username: "mgr", Role: RoleManager, Token: "h.p.s"}
	clone := original.Clone()
	clone.Username = "other"
	clone.Role = RoleClerk

	if original.Username != "mgr" || original.Role != RoleManager {
		t.Errorf("clone shares memory: %+v", original)
	}
}

func TestCloneNil(t *testing.T) {
	var s *Session
	if s.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
