package api

import (
	"context"
	"fmt"
)

// TestCase binds one API to assertions, variables, and scripts.
type TestCase struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Project     int            `json:"project"`
	API         int            `json:"api"`
	Environment *int           `json:"environment,omitempty"`
	Description string         `json:"description,omitempty"`
	PreScript   string         `json:"pre_script,omitempty"`
	PostScript  string         `json:"post_script,omitempty"`
	Assertions  []map[string]any `json:"assertions,omitempty"`
	Variables   map[string]any `json:"variables,omitempty"`
	timestamps
}

// TestCaseInput is the writable subset of a test case.
type TestCaseInput struct {
	Name        string           `json:"name"`
	Project     int              `json:"project"`
	API         int              `json:"api"`
	Environment *int             `json:"environment,omitempty"`
	Description string           `json:"description,omitempty"`
	PreScript   string           `json:"pre_script,omitempty"`
	PostScript  string           `json:"post_script,omitempty"`
	Assertions  []map[string]any `json:"assertions,omitempty"`
	Variables   map[string]any   `json:"variables,omitempty"`
}

// TestCaseStatistics summarizes pass/fail counts.
type TestCaseStatistics struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// TestCaseExecution is the result of running one case.
type TestCaseExecution struct {
	ID           int            `json:"id"`
	Status       string         `json:"status"`
	ResponseTime float64        `json:"response_time"`
	Result       map[string]any `json:"result,omitempty"`
}

// ListTestCases returns one page of test cases.
func (c *Client) ListTestCases(ctx context.Context, params ListParams) (*Page[TestCase], error) {
	var page Page[TestCase]
	if err := c.gw.Get(ctx, "/testcases/testcases/", params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTestCase fetches a single test case.
func (c *Client) GetTestCase(ctx context.Context, id int) (*TestCase, error) {
	var tc TestCase
	if err := c.gw.Get(ctx, fmt.Sprintf("/testcases/testcases/%d/", id), nil, &tc); err != nil {
		return nil, err
	}
	return &tc, nil
}

// CreateTestCase creates a test case.
func (c *Client) CreateTestCase(ctx context.Context, in TestCaseInput) (*TestCase, error) {
	var tc TestCase
	if err := c.gw.Post(ctx, "/testcases/testcases/", in, &tc); err != nil {
		return nil, err
	}
	return &tc, nil
}

// UpdateTestCase applies a partial update.
func (c *Client) UpdateTestCase(ctx context.Context, id int, in TestCaseInput) (*TestCase, error) {
	var tc TestCase
	if err := c.gw.Patch(ctx, fmt.Sprintf("/testcases/testcases/%d/", id), in, &tc); err != nil {
		return nil, err
	}
	return &tc, nil
}

// DeleteTestCase removes a test case.
func (c *Client) DeleteTestCase(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/testcases/testcases/%d/", id))
}

// ExecuteTestCase runs one test case.
func (c *Client) ExecuteTestCase(ctx context.Context, id int, overrides map[string]any) (*TestCaseExecution, error) {
	if overrides == nil {
		overrides = map[string]any{}
	}
	var exec TestCaseExecution
	if err := c.gw.Post(ctx, fmt.Sprintf("/testcases/testcases/%d/execute/", id), overrides, &exec); err != nil {
		return nil, err
	}
	return &exec, nil
}

// TestCaseStatistics returns aggregate pass/fail counts.
func (c *Client) TestCaseStatistics(ctx context.Context) (*TestCaseStatistics, error) {
	var stats TestCaseStatistics
	if err := c.gw.Get(ctx, "/testcases/testcases/statistics/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
