package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/benchlink/benchlink-cli/internal/errors"
	"github.com/benchlink/benchlink-cli/internal/log"
	"github.com/benchlink/benchlink-cli/internal/session"
)

// basePath prefixes every resource path on the wire.
const basePath = "/api"

// DefaultTimeout bounds a call unless the caller overrides it.
// Known long-running operations (performance-test execution) must override.
const DefaultTimeout = 10 * time.Second

// Navigator receives the forced navigation when a session expires.
//
// The TUI implements it with a view switch; the CLI with a printed hint.
// A nil navigator is tolerated so the gateway stays usable in plain
// library contexts.
type Navigator interface {
	RedirectToLogin()
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func()

// RedirectToLogin calls the wrapped function.
func (f NavigatorFunc) RedirectToLogin() { f() }

// Gateway is the single chokepoint for all outbound HTTP.
//
// Every request runs through an ordered pipeline of request interceptors
// (request-ID stamping, credential attachment) and every response through
// response interceptors (401 classification). Resource clients never talk to
// the network directly, so none of them can forget to attach a token or to
// handle expiry.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	nav        Navigator
	logger     *log.Logger

	timeout time.Duration

	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// Option configures a Gateway at construction time.
type Option func(*Gateway)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.httpClient = c }
}

// WithLogger replaces the gateway logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// WithDefaultTimeout changes the per-call default timeout.
func WithDefaultTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

// WithRequestInterceptor appends a request stage to the pipeline.
func WithRequestInterceptor(i RequestInterceptor) Option {
	return func(g *Gateway) { g.requestInterceptors = append(g.requestInterceptors, i) }
}

// WithResponseInterceptor appends a response stage to the pipeline.
func WithResponseInterceptor(i ResponseInterceptor) Option {
	return func(g *Gateway) { g.responseInterceptors = append(g.responseInterceptors, i) }
}

// New creates a Gateway for the given platform base URL.
//
// The session store is read for every outgoing call and cleared when a
// response comes back 401. The navigator is invoked after the clear so the
// surrounding UI lands on the login view.
func New(baseURL string, store session.Store, nav Navigator, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No client-level timeout: each call carries its own deadline.
		httpClient: &http.Client{},
		store:      store,
		nav:        nav,
		logger:     log.DefaultLogger(),
		timeout:    DefaultTimeout,
	}

	for _, opt := range opts {
		opt(g)
	}

	// The standard pipeline runs after any caller-supplied stages were
	// registered, in a fixed order: stamp, then authenticate.
	g.requestInterceptors = append([]RequestInterceptor{
		stampRequestID,
		g.attachCredentials,
	}, g.requestInterceptors...)

	g.responseInterceptors = append([]ResponseInterceptor{
		g.handleUnauthorized,
	}, g.responseInterceptors...)

	return g
}

// Do issues one HTTP call and decodes the JSON payload into out.
//
// Transport metadata never reaches the caller: on success out holds the
// unwrapped body, on failure the returned error carries the classification
// (see internal/errors gateway codes). A nil out discards the body.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body, out any, opts ...CallOption) error {
	cfg := callConfig{timeout: g.timeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRequestEncode, "cannot encode request body", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	u := g.baseURL + basePath + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRequestEncode, "cannot build request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for _, intercept := range g.requestInterceptors {
		if err := intercept(req); err != nil {
			return err
		}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return g.classifyTransportError(method, path, err)
	}
	defer resp.Body.Close()

	// Response stages short-circuit: the first error terminates the chain
	// and is what the caller sees, after the stage's side effects ran.
	for _, intercept := range g.responseInterceptors {
		if err := intercept(resp); err != nil {
			return err
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return g.serverError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(errors.ErrCodeResponseDecode,
			fmt.Sprintf("cannot decode response from %s %s", method, path), err)
	}

	return nil
}

// Get issues a GET request.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any, opts ...CallOption) error {
	return g.Do(ctx, http.MethodGet, path, query, nil, out, opts...)
}

// Post issues a POST request.
func (g *Gateway) Post(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return g.Do(ctx, http.MethodPost, path, nil, body, out, opts...)
}

// Patch issues a PATCH request.
func (g *Gateway) Patch(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return g.Do(ctx, http.MethodPatch, path, nil, body, out, opts...)
}

// Put issues a PUT request.
func (g *Gateway) Put(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return g.Do(ctx, http.MethodPut, path, nil, body, out, opts...)
}

// Delete issues a DELETE request.
func (g *Gateway) Delete(ctx context.Context, path string, opts ...CallOption) error {
	return g.Do(ctx, http.MethodDelete, path, nil, nil, nil, opts...)
}

// classifyTransportError separates timeouts from other transport failures.
// Neither touches the session: only a real 401 response does that.
func (g *Gateway) classifyTransportError(method, path string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(errors.ErrCodeTransportTimeout,
			fmt.Sprintf("%s %s exceeded its timeout", method, path), err).
			WithSuggestion("Retry, or raise the per-call timeout for long-running operations")
	}

	return errors.Wrap(errors.ErrCodeNetworkFailure,
		fmt.Sprintf("%s %s got no response", method, path), err).
		WithSuggestion("Check that the platform is reachable").
		WithSuggestion("Verify the configured base URL")
}
