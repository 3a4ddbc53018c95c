package api

import (
	"context"
	"fmt"
)

// Environment is a named target configuration for test runs.
type Environment struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Project     int               `json:"project"`
	BaseURL     string            `json:"base_url"`
	Description string            `json:"description,omitempty"`
	Variables   map[string]any    `json:"variables,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	IsActive    bool              `json:"is_active"`
	timestamps
}

// EnvironmentInput is the writable subset of an environment.
type EnvironmentInput struct {
	Name        string            `json:"name"`
	Project     int               `json:"project"`
	BaseURL     string            `json:"base_url"`
	Description string            `json:"description,omitempty"`
	Variables   map[string]any    `json:"variables,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

// ListEnvironments returns one page of environments.
func (c *Client) ListEnvironments(ctx context.Context, params ListParams) (*Page[Environment], error) {
	var page Page[Environment]
	if err := c.gw.Get(ctx, "/environments/environments/", params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetEnvironment fetches a single environment.
func (c *Client) GetEnvironment(ctx context.Context, id int) (*Environment, error) {
	var e Environment
	if err := c.gw.Get(ctx, fmt.Sprintf("/environments/environments/%d/", id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEnvironment creates an environment.
func (c *Client) CreateEnvironment(ctx context.Context, in EnvironmentInput) (*Environment, error) {
	var e Environment
	if err := c.gw.Post(ctx, "/environments/environments/", in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEnvironment applies a partial update.
func (c *Client) UpdateEnvironment(ctx context.Context, id int, in EnvironmentInput) (*Environment, error) {
	var e Environment
	if err := c.gw.Patch(ctx, fmt.Sprintf("/environments/environments/%d/", id), in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEnvironment removes an environment.
func (c *Client) DeleteEnvironment(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/environments/environments/%d/", id))
}
