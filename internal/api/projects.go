package api

import (
	"context"
	"fmt"
)

// Project is a container for APIs, test cases, and suites.
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Owner       int    `json:"owner,omitempty"`
	OwnerName   string `json:"owner_name,omitempty"`
	IsActive    bool   `json:"is_active"`
	timestamps
}

// ProjectInput is the writable subset of a project.
type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// ProjectStatistics summarizes a project's contents.
type ProjectStatistics struct {
	TotalProjects   int `json:"total_projects"`
	TotalAPIs       int `json:"total_apis"`
	TotalTestCases  int `json:"total_testcases"`
	TotalTestSuites int `json:"total_testsuites"`
}

// ListProjects returns one page of projects.
func (c *Client) ListProjects(ctx context.Context, params ListParams) (*Page[Project], error) {
	var page Page[Project]
	if err := c.gw.Get(ctx, "/projects/projects/", params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProject fetches a single project.
func (c *Client) GetProject(ctx context.Context, id int) (*Project, error) {
	var p Project
	if err := c.gw.Get(ctx, fmt.Sprintf("/projects/projects/%d/", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (*Project, error) {
	var p Project
	if err := c.gw.Post(ctx, "/projects/projects/", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject applies a partial update.
func (c *Client) UpdateProject(ctx context.Context, id int, in ProjectInput) (*Project, error) {
	var p Project
	if err := c.gw.Patch(ctx, fmt.Sprintf("/projects/projects/%d/", id), in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/projects/projects/%d/", id))
}

// ProjectStatistics returns aggregate counts across projects.
func (c *Client) ProjectStatistics(ctx context.Context) (*ProjectStatistics, error) {
	var stats ProjectStatistics
	if err := c.gw.Get(ctx, "/projects/projects/statistics/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
