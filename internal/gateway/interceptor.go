package gateway

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/benchlink/benchlink-cli/internal/errors"
)

// tokenScheme is the credential prefix the platform expects.
// It is a server contract (DRF TokenAuthentication), not a client choice.
const tokenScheme = "Token "

// requestIDHeader correlates a call across client logs and server logs.
const requestIDHeader = "X-Request-ID"

// RequestInterceptor transforms an outgoing request. Returning an error
// aborts the call before it reaches the network.
type RequestInterceptor func(req *http.Request) error

// ResponseInterceptor inspects an incoming response. Returning an error
// terminates the chain; the error is propagated to the caller after the
// stage's side effects have run.
type ResponseInterceptor func(resp *http.Response) error

// stampRequestID attaches a fresh request ID to every call.
func stampRequestID(req *http.Request) error {
	req.Header.Set(requestIDHeader, uuid.NewString())
	return nil
}

// attachCredentials reads the session store and sets the Authorization
// header when a token is present.
//
// A storage read failure is treated exactly like an absent token, and an
// absent token does not block the call: the request goes out without
// credentials and the server rejects it. Only navigation is gated client
// side, by the router guard.
func (g *Gateway) attachCredentials(req *http.Request) error {
	tok, err := g.store.Token()
	if err != nil {
		g.logger.WithError(err).Warn("session storage unreadable, sending request without credentials",
			"method", req.Method, "url", req.URL.Path)
		return nil
	}

	tok = strings.TrimSpace(tok)
	if tok == "" {
		// Header omitted entirely, never sent empty.
		return nil
	}

	req.Header.Set("Authorization", tokenScheme+tok)
	return nil
}

// handleUnauthorized is the expiry stage: on a 401 it clears the session,
// forces navigation to login, and re-raises.
//
// The sequence is unconditional and idempotent. Two in-flight requests that
// both come back 401 run it twice; the second run observes an already empty
// session and an already pending navigation, which is harmless.
func (g *Gateway) handleUnauthorized(resp *http.Response) error {
	if resp.StatusCode != http.StatusUnauthorized {
		return nil
	}

	if err := g.store.Clear(); err != nil {
		// The redirect still happens; a stale file is rediscovered as a
		// 401 on the next call.
		g.logger.WithError(err).Warn("failed to clear session after 401")
	}

	if g.nav != nil {
		g.nav.RedirectToLogin()
	}

	return errors.New(errors.ErrCodeUnauthenticated, "session expired or invalid").
		WithSuggestion("Run 'benchlink login' to authenticate again")
}
