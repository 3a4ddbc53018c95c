package api

import (
	"context"
	"fmt"
)

// TestSuite is an ordered collection of test cases.
type TestSuite struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Project     int    `json:"project"`
	Environment *int   `json:"environment,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	TestCases   []int  `json:"testcases,omitempty"`
	timestamps
}

// TestSuiteInput is the writable subset of a suite.
type TestSuiteInput struct {
	Name        string `json:"name"`
	Project     int    `json:"project"`
	Environment *int   `json:"environment,omitempty"`
	Description string `json:"description,omitempty"`
	TestCases   []int  `json:"testcases,omitempty"`
}

// TestCaseOrder pins one case to a position inside a suite.
type TestCaseOrder struct {
	TestCase int `json:"testcase"`
	Order    int `json:"order"`
}

// SuiteExecution is the result handle of a suite run.
type SuiteExecution struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Total  int    `json:"total"`
	Passed int    `json:"passed"`
	Failed int    `json:"failed"`
}

// ListTestSuites returns one page of suites.
func (c *Client) ListTestSuites(ctx context.Context, params ListParams) (*Page[TestSuite], error) {
	var page Page[TestSuite]
	if err := c.gw.Get(ctx, "/testsuites/testsuites/", params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTestSuite fetches a single suite.
func (c *Client) GetTestSuite(ctx context.Context, id int) (*TestSuite, error) {
	var ts TestSuite
	if err := c.gw.Get(ctx, fmt.Sprintf("/testsuites/testsuites/%d/", id), nil, &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}

// CreateTestSuite creates a suite.
func (c *Client) CreateTestSuite(ctx context.Context, in TestSuiteInput) (*TestSuite, error) {
	var ts TestSuite
	if err := c.gw.Post(ctx, "/testsuites/testsuites/", in, &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}

// UpdateTestSuite applies a partial update.
func (c *Client) UpdateTestSuite(ctx context.Context, id int, in TestSuiteInput) (*TestSuite, error) {
	var ts TestSuite
	if err := c.gw.Patch(ctx, fmt.Sprintf("/testsuites/testsuites/%d/", id), in, &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}

// DeleteTestSuite removes a suite.
func (c *Client) DeleteTestSuite(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/testsuites/testsuites/%d/", id))
}

// ExecuteTestSuite runs every case in the suite.
func (c *Client) ExecuteTestSuite(ctx context.Context, id int) (*SuiteExecution, error) {
	var exec SuiteExecution
	if err := c.gw.Post(ctx, fmt.Sprintf("/testsuites/testsuites/%d/execute/", id), nil, &exec); err != nil {
		return nil, err
	}
	return &exec, nil
}

// ReorderTestCases rewrites the case ordering inside a suite.
func (c *Client) ReorderTestCases(ctx context.Context, id int, orders []TestCaseOrder) error {
	body := map[string]any{"testcase_orders": orders}
	return c.gw.Post(ctx, fmt.Sprintf("/testsuites/testsuites/%d/reorder_testcases/", id), body, nil)
}
