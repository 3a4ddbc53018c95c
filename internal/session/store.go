package session

import (
	"strings"
)

// User is the cached profile of the authenticated user.
//
// It mirrors what the platform returns from /users/users/me/ and is only a
// cache: the token decides whether the client is authenticated, never this.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	IsActive  bool   `json:"is_active,omitempty"`
}

// Store owns the authenticated session of this client.
//
// The token is the sole source of truth for "is authenticated". Every mutation
// is mirrored to durable storage before the call returns, so a reload never
// observes a state the previous process did not commit.
//
// The Gateway and the navigation guard read the store; only explicit
// login/logout and the Gateway's 401 handling mutate it.
type Store interface {
	// Token returns the current credential, or "" when unauthenticated.
	// A non-nil error means durable storage could not be read; callers
	// must treat that the same as an absent token.
	Token() (string, error)

	// SetToken stores the credential in memory and durable storage.
	SetToken(token string) error

	// Clear removes the credential and cached user. Clearing an already
	// empty session is a no-op, not an error.
	Clear() error

	// IsAuthenticated reports whether a token is present. It never makes a
	// network call; server-side validity is only discovered via a 401.
	IsAuthenticated() bool

	// User returns the cached profile, which may be nil even when a token
	// is present (not yet fetched).
	User() *User

	// SetUser caches the profile alongside the token.
	SetUser(u *User) error
}

// hasToken reports whether tok counts as a present credential.
// Whitespace-only tokens are treated as absent, matching the header
// attachment rule in the gateway.
func hasToken(tok string) bool {
	return strings.TrimSpace(tok) != ""
}
