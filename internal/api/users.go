package api

import (
	"context"
	"fmt"

	"github.com/benchlink/benchlink-cli/internal/session"
)

// LoginRequest carries the credentials for a login call.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is what the server returns on successful login or
// registration: the opaque token plus the user profile.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *session.User `json:"user"`
}

// RegisterRequest carries a new account's details.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Phone           string `json:"phone,omitempty"`
}

// Login authenticates against the platform and persists the session.
//
// The token is written to the session store before Login returns, so a
// reload immediately after observes the authenticated state.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.gw.Post(ctx, "/users/users/login/", LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if err := c.store.SetToken(resp.Token); err != nil {
		return nil, fmt.Errorf("login succeeded but session could not be persisted: %w", err)
	}
	if resp.User != nil {
		if err := c.store.SetUser(resp.User); err != nil {
			return nil, fmt.Errorf("login succeeded but profile could not be cached: %w", err)
		}
	}

	return &resp, nil
}

// Register creates an account. The server issues a token on success, which
// is persisted exactly like a login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.gw.Post(ctx, "/users/users/register/", req, &resp); err != nil {
		return nil, err
	}

	if err := c.store.SetToken(resp.Token); err != nil {
		return nil, fmt.Errorf("registration succeeded but session could not be persisted: %w", err)
	}
	if resp.User != nil {
		if err := c.store.SetUser(resp.User); err != nil {
			return nil, fmt.Errorf("registration succeeded but profile could not be cached: %w", err)
		}
	}

	return &resp, nil
}

// Logout clears the local session. No server-side call is made: the token
// stays valid server side until it expires there.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// CurrentUser fetches the authenticated user's profile and refreshes the
// cached copy.
func (c *Client) CurrentUser(ctx context.Context) (*session.User, error) {
	var user session.User
	if err := c.gw.Get(ctx, "/users/users/me/", nil, &user); err != nil {
		return nil, err
	}

	// Cache failures are not fatal: the profile is advisory.
	_ = c.store.SetUser(&user)

	return &user, nil
}

// ChangePassword updates the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return c.gw.Post(ctx, "/users/users/change_password/", body, nil)
}

// ListUsers lists platform users (admin surface).
func (c *Client) ListUsers(ctx context.Context, params ListParams) (*Page[session.User], error) {
	var page Page[session.User]
	if err := c.gw.Get(ctx, "/users/users/", params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}
