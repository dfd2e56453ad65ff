package interceptors

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"banking-console/internal/navigation"
	"banking-console/internal/notify"
)

// SessionInvalidator tears down the current session when the server rejects
// its credentials.
type SessionInvalidator interface {
	Logout(ctx context.Context)
}

type failureTransport struct {
	base     http.RoundTripper
	sessions SessionInvalidator
	notifier *notify.Service
	nav      navigation.Navigator
}

// NewFailureTransport returns a round-tripper that translates transport
// errors and authorization failures into notifications and navigation.
func NewFailureTransport(base http.RoundTripper, sessions SessionInvalidator, notifier *notify.Service, nav navigation.Navigator) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &failureTransport{base: base, sessions: sessions, notifier: notifier, nav: nav}
}

func (t *failureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.notifier.Danger("Unable to reach the banking server. Please retry in a moment.")
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Capture where we are before logout navigates away. A rejected
		// sign-in attempt already shows its own error, so no warning or
		// extra navigation when it happens on the login route.
		onLogin := t.nav.Current() == navigation.LoginRoute
		t.sessions.Logout(req.Context())
		if !onLogin {
			t.notifier.Warning("Your session is no longer valid. Please sign in again.")
			t.nav.Navigate(navigation.LoginRoute)
		}
	case resp.StatusCode == http.StatusForbidden:
		t.notifier.Warning("You are not authorized to perform this action.")
		t.nav.Navigate(navigation.UnauthorizedRoute)
	case resp.StatusCode >= http.StatusInternalServerError:
		t.notifier.Danger(serverFaultMessage(resp))
	}
	return resp, nil
}

// serverFaultMessage extracts the server's message from a 5xx body when one
// is present, restoring the body for downstream readers.
func serverFaultMessage(resp *http.Response) string {
	const fallback = "The banking server reported an internal error. Please try again later."
	if resp.Body == nil {
		return fallback
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return fallback
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &payload) != nil {
		return fallback
	}
	if payload.Message != "" {
		return payload.Message
	}
	if payload.Error != "" {
		return payload.Error
	}
	return fallback
}
