package tui

import tea "github.com/charmbracelet/bubbletea"

// Redirector forwards the gateway's login redirect into the running
// bubbletea program as a SessionExpiredMsg.
//
// The send function is bound after the program is constructed, because
// the gateway has to exist before the program does. Redirects that fire
// before Bind are dropped, which only happens before the first screen
// is drawn.
type Redirector struct {
	send func(tea.Msg)
}

// NewRedirector creates an unbound redirector.
func NewRedirector() *Redirector {
	return &Redirector{}
}

// Bind connects the redirector to a running program.
func (r *Redirector) Bind(send func(tea.Msg)) {
	r.send = send
}

// RedirectToLogin implements the gateway's Navigator.
func (r *Redirector) RedirectToLogin() {
	if r.send != nil {
		r.send(SessionExpiredMsg{})
	}
}
