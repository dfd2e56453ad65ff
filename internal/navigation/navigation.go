// Package navigation holds the route names shared by guards, interceptors
// and the session store, and the Navigator they steer.
package navigation

import "net/url"

const (
	LoginRoute        = "/login"
	UnauthorizedRoute = "/unauthorized"
	DashboardRoute    = "/dashboard"

	// ReturnURLParam carries the originally requested route through a
	// login redirect.
	ReturnURLParam = "returnUrl"
)

// Navigator reports and changes the active route.
type Navigator interface {
	Current() string
	Navigate(target string)
}

// LoginRedirect builds the login route with the requested route preserved
// as a query parameter.
func LoginRedirect(returnURL string) string {
	if returnURL == "" || returnURL == LoginRoute {
		return LoginRoute
	}
	return LoginRoute + "?" + ReturnURLParam + "=" + url.QueryEscape(returnURL)
}
