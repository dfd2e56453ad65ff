package bankapi

import "context"

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the server's answer to a successful sign-in. Most fields
// beyond the token are optional; the session layer falls back to the token
// claims when they are absent.
type AuthResponse struct {
	Token       string `json:"token"`
	UserID      *int64 `json:"userId,omitempty"`
	Username    string `json:"username,omitempty"`
	Role        string `json:"role,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	EmailID     string `json:"emailId,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Authenticate exchanges credentials for a bearer token.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/authenticate", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
