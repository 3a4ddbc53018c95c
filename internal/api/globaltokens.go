package api

import (
	"context"
	"fmt"
)

// GlobalToken is a shared credential test runs can reference by name.
// These are platform resources, unrelated to the client's own session token.
type GlobalToken struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	AuthType    string `json:"auth_type"`
	Token       string `json:"token,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	timestamps
}

// GlobalTokenInput is the writable subset of a global token.
type GlobalTokenInput struct {
	Name        string `json:"name"`
	AuthType    string `json:"auth_type"`
	Token       string `json:"token"`
	Description string `json:"description,omitempty"`
}

// ListGlobalTokens returns one page of global tokens.
func (c *Client) ListGlobalTokens(ctx context.Context, params ListParams) (*Page[GlobalToken], error) {
	var page Page[GlobalToken]
	if err := c.gw.Get(ctx, "/environments/global-tokens/", params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetGlobalToken fetches a single global token.
func (c *Client) GetGlobalToken(ctx context.Context, id int) (*GlobalToken, error) {
	var t GlobalToken
	if err := c.gw.Get(ctx, fmt.Sprintf("/environments/global-tokens/%d/", id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateGlobalToken creates a global token.
func (c *Client) CreateGlobalToken(ctx context.Context, in GlobalTokenInput) (*GlobalToken, error) {
	var t GlobalToken
	if err := c.gw.Post(ctx, "/environments/global-tokens/", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateGlobalToken applies a partial update.
func (c *Client) UpdateGlobalToken(ctx context.Context, id int, in GlobalTokenInput) (*GlobalToken, error) {
	var t GlobalToken
	if err := c.gw.Patch(ctx, fmt.Sprintf("/environments/global-tokens/%d/", id), in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteGlobalToken removes a global token.
func (c *Client) DeleteGlobalToken(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/environments/global-tokens/%d/", id))
}
