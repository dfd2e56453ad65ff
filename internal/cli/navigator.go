package cli

import (
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"banking-console/internal/navigation"
)

// ConsoleNavigator tracks the active route for a terminal session. On a
// console there is nothing to render on redirect, so Navigate records the
// destination and tells the user where they ended up.
type ConsoleNavigator struct {
	log *slog.Logger

	mu      sync.Mutex
	current string
}

func NewConsoleNavigator(log *slog.Logger) *ConsoleNavigator {
	return &ConsoleNavigator{log: log}
}

func (n *ConsoleNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// SetCurrent records the route without announcing a redirect.
func (n *ConsoleNavigator) SetCurrent(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = route
}

// Navigate moves to target. Repeated navigations to the route we are
// already on are dropped so a burst of failures announces once.
func (n *ConsoleNavigator) Navigate(target string) {
	path, query := splitTarget(target)
	n.mu.Lock()
	if n.current == path {
		n.mu.Unlock()
		return
	}
	n.current = path
	n.mu.Unlock()

	switch path {
	case navigation.LoginRoute:
		if ret := returnURLOf(query); ret != "" {
			n.log.Info("sign in required", "after", ret)
		} else {
			n.log.Info("signed out, run 'console login' to sign in")
		}
	case navigation.UnauthorizedRoute:
		n.log.Warn("access denied")
	default:
		n.log.Debug("navigated", "route", path)
	}
}

func splitTarget(target string) (path, query string) {
	if i := strings.IndexByte(target, '?'); i >= 0 {
		return target[:i], target[i+1:]
	}
	return target, ""
}

func returnURLOf(query string) string {
	for _, pair := range strings.Split(query, "&") {
		if v, ok := strings.CutPrefix(pair, navigation.ReturnURLParam+"="); ok {
			if dec, err := url.QueryUnescape(v); err == nil {
				return dec
			}
			return v
		}
	}
	return ""
}
