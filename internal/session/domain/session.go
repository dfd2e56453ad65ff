// Package domain defines the client-held session record and role tags.
package domain

// Role is a primary role claim tag. The set is closed: the banking API only
// issues MANAGER and CLERK.
type Role string

const (
	RoleManager Role = "MANAGER"
	RoleClerk   Role = "CLERK"
)

// Session is the client-held record of the currently authenticated user.
// It exists only between a successful login and logout or token expiry.
// Profile fields are display-only and never consulted for access decisions.
type Session struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	Token       string `json:"token"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Clone returns a copy so published sessions cannot be mutated by readers.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
