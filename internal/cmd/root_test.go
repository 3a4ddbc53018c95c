package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchlink/benchlink-cli/internal/api"
	"github.com/benchlink/benchlink-cli/internal/errors"
	"github.com/benchlink/benchlink-cli/internal/session"
)

// execute runs the CLI against an isolated home directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagAPIURL = ""
		flagConfigPath = ""
		flagVerbose = false
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// isolateHome points the session and config files at a fresh directory.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

// loginAt seeds a valid session for the isolated home.
func loginAt(t *testing.T) {
	t.Helper()
	path, err := session.DefaultPath()
	require.NoError(t, err)
	store := session.NewFileStore(path)
	require.NoError(t, store.SetToken("test-token"))
}

func TestProjectsList_WithoutSessionRefuses(t *testing.T) {
	isolateHome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the server")
	}))
	defer server.Close()

	_, err := execute(t, "projects", "list", "--api-url", server.URL)
	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestProjectsList_WithSession(t *testing.T) {
	isolateHome(t)
	loginAt(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/projects/projects/", r.URL.Path)
		require.Equal(t, "Token test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(api.Page[api.Project]{
			Count: 1,
			Results: []api.Project{
				{ID: 1, Name: "checkout", IsActive: true},
			},
		})
	}))
	defer server.Close()

	out, err := execute(t, "projects", "list", "--api-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "checkout")
}

func TestLogin_PersistsSessionForLaterCommands(t *testing.T) {
	isolateHome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/users/login/":
			json.NewEncoder(w).Encode(api.LoginResponse{
				Token: "abc123",
				User:  &session.User{ID: 1, Username: "admin"},
			})
		case "/api/executions/executions/":
			require.Equal(t, "Token abc123", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(api.Page[api.Execution]{Count: 0})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	out, err := execute(t, "login", "--username", "admin", "--password", "secret",
		"--api-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as admin")

	_, err = execute(t, "executions", "list", "--api-url", server.URL)
	require.NoError(t, err)
}

func TestLogout_ClearsSession(t *testing.T) {
	isolateHome(t)
	loginAt(t)

	out, err := execute(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	// Subsequent guarded commands refuse.
	_, err = execute(t, "projects", "list", "--api-url", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestExpiredSessionSurfacesLoginHint(t *testing.T) {
	isolateHome(t)
	loginAt(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := execute(t, "projects", "list", "--api-url", server.URL)
	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))

	// The 401 cleared the stored token, so the next command fails the
	// guard before any network call.
	_, err = execute(t, "projects", "list", "--api-url", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestVersionCommand(t *testing.T) {
	isolateHome(t)

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}

func TestConfigSetAndShow(t *testing.T) {
	isolateHome(t)

	_, err := execute(t, "config", "set", "theme", "dark")
	require.NoError(t, err)

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: dark")
}

func TestConfigSet_RejectsInvalidTheme(t *testing.T) {
	isolateHome(t)

	_, err := execute(t, "config", "set", "theme", "sepia")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeConfigInvalid))
}
