package api

import (
	"context"
	"fmt"
)

// API is one HTTP endpoint definition under a project.
type API struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Project     int               `json:"project"`
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers,omitempty"`
	Params      map[string]any    `json:"params,omitempty"`
	Body        map[string]any    `json:"body,omitempty"`
	Description string            `json:"description,omitempty"`
	timestamps
}

// APIInput is the writable subset of an API definition.
type APIInput struct {
	Name        string            `json:"name"`
	Project     int               `json:"project"`
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers,omitempty"`
	Params      map[string]any    `json:"params,omitempty"`
	Body        map[string]any    `json:"body,omitempty"`
	Description string            `json:"description,omitempty"`
}

// APIExecutionResult is the ad-hoc execution outcome of one endpoint.
type APIExecutionResult struct {
	Success      bool           `json:"success"`
	StatusCode   int            `json:"status_code"`
	ResponseTime float64        `json:"response_time"`
	Response     map[string]any `json:"response,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// ListAPIs returns one page of API definitions.
func (c *Client) ListAPIs(ctx context.Context, params ListParams) (*Page[API], error) {
	var page Page[API]
	if err := c.gw.Get(ctx, "/apis/apis/", params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAPI fetches a single API definition.
func (c *Client) GetAPI(ctx context.Context, id int) (*API, error) {
	var a API
	if err := c.gw.Get(ctx, fmt.Sprintf("/apis/apis/%d/", id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAPI creates an API definition.
func (c *Client) CreateAPI(ctx context.Context, in APIInput) (*API, error) {
	var a API
	if err := c.gw.Post(ctx, "/apis/apis/", in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAPI applies a partial update.
func (c *Client) UpdateAPI(ctx context.Context, id int, in APIInput) (*API, error) {
	var a API
	if err := c.gw.Patch(ctx, fmt.Sprintf("/apis/apis/%d/", id), in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAPI removes an API definition.
func (c *Client) DeleteAPI(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/apis/apis/%d/", id))
}

// ExecuteAPI runs one endpoint ad hoc with optional overrides.
func (c *Client) ExecuteAPI(ctx context.Context, id int, overrides map[string]any) (*APIExecutionResult, error) {
	if overrides == nil {
		overrides = map[string]any{}
	}
	var res APIExecutionResult
	if err := c.gw.Post(ctx, fmt.Sprintf("/apis/apis/%d/execute/", id), overrides, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
