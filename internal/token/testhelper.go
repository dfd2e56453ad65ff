package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// testSigningKey signs fixture tokens for unit tests only. The codec never
// verifies signatures, so the key value is irrelevant beyond producing a
// structurally real token.
var testSigningKey = []byte("bank-console-test-signing-key")

// MintHS256 returns an HS256-signed token carrying claims. For unit tests
// only; production tokens are issued by the banking API.
func MintHS256(claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
}

// MintExpiring mints a fixture token with the given roles expiring at exp.
func MintExpiring(exp time.Time, roles ...string) (string, error) {
	return MintHS256(jwt.MapClaims{"exp": exp.Unix(), "roles": roles})
}
