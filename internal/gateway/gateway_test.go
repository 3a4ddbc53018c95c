package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benchlink/benchlink-cli/internal/errors"
	"github.com/benchlink/benchlink-cli/internal/session"
)

// recordingNav counts forced navigations to the login view.
type recordingNav struct {
	redirects int
}

func (n *recordingNav) RedirectToLogin() { n.redirects++ }

// brokenStore simulates unreadable durable storage.
type brokenStore struct {
	session.Store
	cleared int
}

func (s *brokenStore) Token() (string, error) {
	return "", errors.New(errors.ErrCodeSessionLoad, "storage inaccessible")
}

func (s *brokenStore) Clear() error {
	s.cleared++
	return nil
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *session.MemoryStore, *recordingNav) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewMemoryStore()
	nav := &recordingNav{}
	return New(server.URL, store, nav), store, nav
}

func TestDo_AttachesTokenHeader(t *testing.T) {
	var gotAuth string
	gw, store, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	if err := store.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	if err := gw.Get(context.Background(), "/projects/projects/", nil, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotAuth != "Token abc123" {
		t.Errorf("expected 'Token abc123' header, got %q", gotAuth)
	}
}

func TestDo_TrimsTokenWhitespace(t *testing.T) {
	var gotAuth string
	gw, store, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	})

	if err := store.SetToken("  abc123\n"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	if err := gw.Get(context.Background(), "/projects/projects/", nil, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotAuth != "Token abc123" {
		t.Errorf("expected trimmed token in header, got %q", gotAuth)
	}
}

func TestDo_OmitsHeaderWithoutToken(t *testing.T) {
	var hadHeader bool
	gw, _, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	})

	// Fail open: the call goes out uncredentialed rather than being blocked.
	if err := gw.Get(context.Background(), "/projects/projects/", nil, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if hadHeader {
		t.Error("Authorization header must be omitted entirely, not sent empty")
	}
}

func TestDo_StorageFailureReadsAsAbsentToken(t *testing.T) {
	var hadHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	gw := New(server.URL, &brokenStore{}, &recordingNav{})

	if err := gw.Get(context.Background(), "/projects/projects/", nil, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if hadHeader {
		t.Error("unreadable storage must behave like an absent token")
	}
}

func TestDo_UnwrapsPayload(t *testing.T) {
	gw, _, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/projects/projects/" {
			t.Errorf("expected path /api/projects/projects/, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("expected page=2 query, got %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"count": 1, "results": []string{"p1"}})
	})

	var out struct {
		Count   int      `json:"count"`
		Results []string `json:"results"`
	}

	query := map[string][]string{"page": {"2"}}
	if err := gw.Get(context.Background(), "/projects/projects/", query, &out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out.Count != 1 || len(out.Results) != 1 || out.Results[0] != "p1" {
		t.Errorf("payload not unwrapped correctly: %+v", out)
	}
}

func TestDo_401ClearsSessionThenRedirects(t *testing.T) {
	gw, store, nav := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Invalid token."}`))
	})

	if err := store.SetToken("expired-token"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	err := gw.Get(context.Background(), "/testcases/testcases/", nil, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !errors.IsUnauthenticated(err) {
		t.Errorf("expected unauthenticated classification, got %v", err)
	}

	if store.IsAuthenticated() {
		t.Error("session must be cleared after a 401")
	}

	if nav.redirects != 1 {
		t.Errorf("expected exactly one redirect to login, got %d", nav.redirects)
	}
}

func TestDo_401OnAnyEndpoint(t *testing.T) {
	paths := []string{
		"/projects/projects/",
		"/executions/executions/",
		"/environments/global-tokens/",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			gw, store, nav := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			})

			if err := store.SetToken("tok"); err != nil {
				t.Fatalf("SetToken failed: %v", err)
			}

			err := gw.Get(context.Background(), path, nil, nil)
			if !errors.IsUnauthenticated(err) {
				t.Fatalf("expected unauthenticated error, got %v", err)
			}

			if store.IsAuthenticated() || nav.redirects != 1 {
				t.Errorf("expiry side effect must not depend on the endpoint")
			}
		})
	}
}

func TestDo_ConcurrentExpiryIsIdempotent(t *testing.T) {
	gw, store, nav := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if err := store.SetToken("tok"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	// Two outstanding requests both coming back 401: the clear/redirect
	// sequence runs twice and must be harmless both times.
	for i := 0; i < 2; i++ {
		err := gw.Get(context.Background(), "/projects/projects/", nil, nil)
		if !errors.IsUnauthenticated(err) {
			t.Fatalf("call %d: expected unauthenticated error, got %v", i, err)
		}
	}

	if store.IsAuthenticated() {
		t.Error("session must stay cleared")
	}

	if nav.redirects != 2 {
		t.Errorf("expected the redirect side effect per 401, got %d", nav.redirects)
	}
}

func TestDo_500PassesThroughUntouched(t *testing.T) {
	gw, store, nav := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "database down"}`))
	})

	if err := store.SetToken("tok"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	err := gw.Get(context.Background(), "/projects/projects/", nil, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !errors.HasCode(err, errors.ErrCodeServerError) {
		t.Errorf("expected server error classification, got %v", err)
	}

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError in chain, got %v", err)
	}

	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.StatusCode)
	}

	if apiErr.Message != "database down" {
		t.Errorf("expected server payload to be preserved, got %q", apiErr.Message)
	}

	// No session impact, no navigation.
	if !store.IsAuthenticated() {
		t.Error("non-401 failures must not clear the session")
	}

	if nav.redirects != 0 {
		t.Errorf("non-401 failures must not navigate, got %d redirects", nav.redirects)
	}
}

func TestDo_403DoesNotClearSession(t *testing.T) {
	gw, store, nav := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail": "You do not have permission."}`))
	})

	if err := store.SetToken("tok"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	err := gw.Get(context.Background(), "/system/users/", nil, nil)
	if errors.IsUnauthenticated(err) {
		t.Error("403 is a permission problem, not session expiry")
	}

	if !store.IsAuthenticated() || nav.redirects != 0 {
		t.Error("403 must leave session and navigation untouched")
	}
}

func TestDo_TimeoutClassification(t *testing.T) {
	gw, store, nav := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	if err := store.SetToken("tok"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	err := gw.Get(context.Background(), "/slow/", nil, nil, WithTimeout(20*time.Millisecond))
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}

	if !errors.HasCode(err, errors.ErrCodeTransportTimeout) {
		t.Errorf("expected timeout classification, got %v", err)
	}

	// A timeout is not a 401: no session impact.
	if !store.IsAuthenticated() || nav.redirects != 0 {
		t.Error("timeouts must not trigger the expiry side effect")
	}
}

func TestDo_PerCallTimeoutOverride(t *testing.T) {
	gw, _, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	})

	// Shrink the default below the handler delay, then override per call.
	gw.timeout = 20 * time.Millisecond

	err := gw.Post(context.Background(), "/testcases/performance-tests/1/execute/", nil, nil,
		WithTimeout(2*time.Second))
	if err != nil {
		t.Errorf("per-call override should outlast the handler, got %v", err)
	}
}

func TestDo_NetworkFailureClassification(t *testing.T) {
	store := session.NewMemoryStore()
	nav := &recordingNav{}
	// Nothing listens here.
	gw := New("http://127.0.0.1:1", store, nav)

	err := gw.Get(context.Background(), "/projects/projects/", nil, nil)
	if err == nil {
		t.Fatal("expected network error, got nil")
	}

	if !errors.HasCode(err, errors.ErrCodeNetworkFailure) {
		t.Errorf("expected network failure classification, got %v", err)
	}

	if nav.redirects != 0 {
		t.Error("network failures must not navigate")
	}
}

func TestDo_RequestIDStamped(t *testing.T) {
	var first, second string
	gw, _, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if first == "" {
			first = r.Header.Get("X-Request-ID")
		} else {
			second = r.Header.Get("X-Request-ID")
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	})

	ctx := context.Background()
	if err := gw.Get(ctx, "/a/", nil, nil); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if err := gw.Get(ctx, "/b/", nil, nil); err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if first == "" || second == "" {
		t.Fatal("every request must carry a request ID")
	}

	if first == second {
		t.Error("request IDs must be fresh per call")
	}
}

func TestDo_DecodeFailure(t *testing.T) {
	gw, _, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json"))
	})

	var out map[string]any
	err := gw.Get(context.Background(), "/projects/projects/", nil, &out)
	if !errors.HasCode(err, errors.ErrCodeResponseDecode) {
		t.Errorf("expected decode classification, got %v", err)
	}
}

func TestDo_CustomInterceptorRunsFirst(t *testing.T) {
	var order []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	gw := New(server.URL, session.NewMemoryStore(), nil,
		WithRequestInterceptor(func(req *http.Request) error {
			order = append(order, "custom")
			if req.Header.Get("X-Request-ID") == "" {
				t.Error("standard stages must run before caller-supplied ones")
			}
			return nil
		}))

	if err := gw.Get(context.Background(), "/x/", nil, nil); err != nil {
		t.Fatalf("call failed: %v", err)
	}

	if len(order) != 1 {
		t.Errorf("custom interceptor should run once, ran %d times", len(order))
	}
}

func TestDo_ErrorPayloadFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"detail field", 400, `{"detail": "bad input"}`, "bad input"},
		{"error field", 400, `{"error": "invalid credentials"}`, "invalid credentials"},
		{"raw body", 502, `upstream exploded`, "upstream exploded"},
		{"empty body", 503, ``, "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, _, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := gw.Get(context.Background(), "/x/", nil, nil)
			apiErr, ok := AsAPIError(err)
			if !ok {
				t.Fatalf("expected APIError, got %v", err)
			}

			if apiErr.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, apiErr.Message)
			}
		})
	}
}

func TestDo_NoContentSkipsDecode(t *testing.T) {
	gw, _, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	var out map[string]any
	if err := gw.Do(context.Background(), http.MethodDelete, "/projects/projects/1/", nil, nil, &out); err != nil {
		t.Errorf("204 with a decode target must not error, got %v", err)
	}
}

func TestNavigatorFunc(t *testing.T) {
	called := false
	var nav Navigator = NavigatorFunc(func() { called = true })
	nav.RedirectToLogin()
	if !called {
		t.Error("NavigatorFunc must invoke the wrapped function")
	}
}

func TestDo_StringsTrimBaseURL(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	gw := New(server.URL+"/", session.NewMemoryStore(), nil)
	if err := gw.Get(context.Background(), "/users/users/me/", nil, nil); err != nil {
		t.Fatalf("call failed: %v", err)
	}

	if strings.Contains(gotPath, "//") {
		t.Errorf("trailing slash on base URL must not double the separator, got %s", gotPath)
	}
}
