package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/benchlink/benchlink-cli/internal/api"
	"github.com/benchlink/benchlink-cli/internal/router"
	"github.com/benchlink/benchlink-cli/internal/session"
)

func newTestModel(t *testing.T, token string) Model {
	t.Helper()

	store := session.NewMemoryStore()
	if token != "" {
		if err := store.SetToken(token); err != nil {
			t.Fatalf("SetToken failed: %v", err)
		}
	}
	guard := router.NewGuard(store)
	return NewModel(&api.Client{}, store, guard)
}

// TestNewModel_NoSessionStartsOnLogin tests that a missing session lands
// on the login screen
func TestNewModel_NoSessionStartsOnLogin(t *testing.T) {
	model := newTestModel(t, "")

	if model.view != ViewLogin {
		t.Errorf("Expected ViewLogin, got %v", model.view)
	}
}

// TestNewModel_SessionStartsOnDashboard tests that an existing session
// skips the login screen
func TestNewModel_SessionStartsOnDashboard(t *testing.T) {
	model := newTestModel(t, "abc123")

	if model.view != ViewDashboard {
		t.Errorf("Expected ViewDashboard, got %v", model.view)
	}
}

// TestNavigate_WithoutSessionRedirectsToLogin tests guard enforcement on
// screen switches
func TestNavigate_WithoutSessionRedirectsToLogin(t *testing.T) {
	model := newTestModel(t, "abc123")
	if err := model.store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	updated, _ := model.navigate(ViewProjects)
	m := updated.(Model)

	if m.view != ViewLogin {
		t.Errorf("Expected redirect to ViewLogin, got %v", m.view)
	}
	if m.notice == "" {
		t.Error("Expected a notice explaining the redirect")
	}
}

// TestNavigate_WithSessionSwitchesView tests an allowed navigation
func TestNavigate_WithSessionSwitchesView(t *testing.T) {
	model := newTestModel(t, "abc123")

	updated, cmd := model.navigate(ViewProjects)
	m := updated.(Model)

	if m.view != ViewProjects {
		t.Errorf("Expected ViewProjects, got %v", m.view)
	}
	if !m.loading {
		t.Error("Expected loading state after navigation")
	}
	if cmd == nil {
		t.Error("Expected a load command after navigation")
	}
}

// TestSessionExpiredMsg tests the mid-session expiry path
func TestSessionExpiredMsg(t *testing.T) {
	model := newTestModel(t, "abc123")
	model.view = ViewExecutions

	updated, _ := model.Update(SessionExpiredMsg{})
	m := updated.(Model)

	if m.view != ViewLogin {
		t.Errorf("Expected ViewLogin after expiry, got %v", m.view)
	}
	if !strings.Contains(m.notice, "expired") {
		t.Errorf("Expected expiry notice, got %q", m.notice)
	}
}

// TestLoginView_RequiresCredentials tests the empty-submit validation
func TestLoginView_RequiresCredentials(t *testing.T) {
	model := newTestModel(t, "")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := updated.(Model)

	if cmd != nil {
		t.Error("Expected no command on empty submit")
	}
	if m.errMsg == "" {
		t.Error("Expected validation error on empty submit")
	}
}

// TestRedirector_UnboundDropsRedirect tests that an unbound redirector
// does not panic
func TestRedirector_UnboundDropsRedirect(t *testing.T) {
	r := NewRedirector()
	r.RedirectToLogin()
}

// TestRedirector_ForwardsMsg tests the bound redirector
func TestRedirector_ForwardsMsg(t *testing.T) {
	r := NewRedirector()

	var got tea.Msg
	r.Bind(func(msg tea.Msg) { got = msg })
	r.RedirectToLogin()

	if _, ok := got.(SessionExpiredMsg); !ok {
		t.Errorf("Expected SessionExpiredMsg, got %T", got)
	}
}

// TestView_LoginRender tests that the login screen renders its fields
func TestView_LoginRender(t *testing.T) {
	model := newTestModel(t, "")

	out := model.View()
	if !strings.Contains(out, "BenchLink") {
		t.Error("Expected title in login view")
	}
	if !strings.Contains(out, "username") {
		t.Error("Expected username placeholder in login view")
	}
}

// TestQuitKey tests that q quits outside the login view
func TestQuitKey(t *testing.T) {
	model := newTestModel(t, "abc123")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m := updated.(Model)

	if !m.quitting {
		t.Error("Expected quitting after q")
	}
	if cmd == nil {
		t.Error("Expected tea.Quit command")
	}
}
