package router

import (
	"strings"

	"github.com/benchlink/benchlink-cli/internal/log"
	"github.com/benchlink/benchlink-cli/internal/session"
)

// Decision is the outcome of one navigation attempt.
type Decision int

const (
	// Allowed lets the navigation proceed to its destination.
	Allowed Decision = iota
	// RedirectedToLogin aborts the navigation and targets the login route.
	RedirectedToLogin
)

// String returns the string representation of the decision.
func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case RedirectedToLogin:
		return "redirected-to-login"
	default:
		return "unknown"
	}
}

// Guard gates every navigation on the presence of a session token.
//
// The check is purely local: a token that is present but server-side expired
// passes the guard and is caught by the gateway's 401 handling on the next
// API call, which forces the same redirect.
type Guard struct {
	store  session.Store
	logger *log.Logger
}

// NewGuard creates a guard reading the given session store.
func NewGuard(store session.Store) *Guard {
	return &Guard{
		store:  store,
		logger: log.DefaultLogger(),
	}
}

// WithLogger overrides the guard's logger.
func (g *Guard) WithLogger(logger *log.Logger) *Guard {
	g.logger = logger
	return g
}

// Decide resolves one navigation attempt to a destination path.
//
// Rules, in order: the login route is always allowed; a store read failure
// fails safe to a redirect; an absent token on a private route redirects;
// everything else is allowed.
func (g *Guard) Decide(path string) Decision {
	if isPublic(path) {
		return Allowed
	}

	tok, err := g.store.Token()
	if err != nil {
		g.logger.WithError(err).Warn("session storage unreadable, treating as unauthenticated",
			"path", path)
		return RedirectedToLogin
	}

	if strings.TrimSpace(tok) == "" {
		return RedirectedToLogin
	}

	return Allowed
}

// RedirectTarget is where a redirected navigation lands.
func (g *Guard) RedirectTarget() string {
	return LoginPath
}
