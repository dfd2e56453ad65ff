// Package interceptors assembles the client-side HTTP round-tripper chain:
// credential attachment, telemetry, and shared failure handling.
package interceptors

import (
	"net/http"

	"github.com/google/uuid"
)

// TokenSource yields the bearer token for outgoing requests. An empty
// string means no credential should be attached.
type TokenSource interface {
	Token() string
}

type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

// NewAuthTransport returns a round-tripper that attaches the current bearer
// token and a request id to every outgoing request. Requests are cloned
// before mutation per the http.RoundTripper contract.
func NewAuthTransport(base http.RoundTripper, tokens TokenSource) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, tokens: tokens}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if tok := t.tokens.Token(); tok != "" {
		clone.Header.Set("Authorization", "Bearer "+tok)
	}
	if clone.Header.Get("X-Request-Id") == "" {
		clone.Header.Set("X-Request-Id", uuid.NewString())
	}
	return t.base.RoundTrip(clone)
}
