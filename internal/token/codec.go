// Package token decodes bearer tokens without verifying signatures. The
// remote banking API is the sole authority on token acceptance; everything
// here is a local, advisory check of structure and expiry.
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"banking-console/internal/session/domain"
)

// ErrMalformedToken is returned when a token cannot be parsed. Callers in
// this repository always reduce it to a boolean; it never reaches the user.
var ErrMalformedToken = errors.New("malformed token")

// Claims is the typed view of a token's payload segment. Absent optional
// claims are zero values; HasExpiry distinguishes a missing exp from exp=0.
type Claims struct {
	ExpiresAt float64
	HasExpiry bool
	Subject   string
	UserID    int64
	Roles     []string
}

// Decode splits a token into its three dot-separated segments and parses
// the payload. The header and signature segments are carried opaquely and
// never inspected.
func Decode(tok string) (*Claims, error) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(parts))
	}
	payload := strings.NewReplacer("-", "+", "_", "/").Replace(parts[1])
	if rem := len(payload) % 4; rem != 0 {
		payload += strings.Repeat("=", 4-rem)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload segment: %v", ErrMalformedToken, err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: payload claims: %v", ErrMalformedToken, err)
	}

	c := &Claims{}
	if f, ok := m["exp"].(float64); ok {
		c.ExpiresAt = f
		c.HasExpiry = true
	}
	if s, ok := m["sub"].(string); ok {
		c.Subject = s
	}
	c.UserID = numberClaim(m, "userId", "id", "subId")
	c.Roles = roleClaims(m)
	return c, nil
}

// numberClaim returns the first non-zero numeric claim among keys.
func numberClaim(m map[string]any, keys ...string) int64 {
	for _, k := range keys {
		if f, ok := m[k].(float64); ok && f != 0 {
			return int64(f)
		}
	}
	return 0
}

// roleClaims reads the role list from "roles" or "authorities", strips the
// ROLE_ prefix decoration, and uppercases. A non-list claim yields no roles.
func roleClaims(m map[string]any) []string {
	v, ok := m["roles"]
	if !ok {
		v = m["authorities"]
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			continue
		}
		out = append(out, strings.ToUpper(strings.TrimPrefix(s, "ROLE_")))
	}
	return out
}

// IsValid reports whether the token parses and its expiry lies strictly in
// the future at now. Expiry is in whole seconds; the comparison is in
// milliseconds. Malformed input is simply invalid, never a panic.
func IsValid(tok string, now time.Time) bool {
	c, err := Decode(tok)
	if err != nil || !c.HasExpiry {
		return false
	}
	return int64(c.ExpiresAt*1000) > now.UnixMilli()
}

// HasClaimRole reports whether the token's role claims contain tag
// (case-insensitive). Malformed tokens have no roles.
func HasClaimRole(tok, tag string) bool {
	c, err := Decode(tok)
	if err != nil {
		return false
	}
	want := strings.ToUpper(tag)
	for _, r := range c.Roles {
		if r == want {
			return true
		}
	}
	return false
}

// ExtractRole derives a primary role from the token's claim list: MANAGER
// when present, CLERK otherwise. Used only when the login response carries
// no explicit role.
func ExtractRole(tok string) domain.Role {
	if HasClaimRole(tok, string(domain.RoleManager)) {
		return domain.RoleManager
	}
	return domain.RoleClerk
}

// ExtractUserID returns the numeric user id claim, 0 when absent.
func ExtractUserID(tok string) int64 {
	c, err := Decode(tok)
	if err != nil {
		return 0
	}
	return c.UserID
}
