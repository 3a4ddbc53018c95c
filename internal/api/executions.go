package api

import (
	"context"
	"fmt"
)

// Execution is one recorded run of a suite or case.
type Execution struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Project   int            `json:"project"`
	TestSuite *int           `json:"testsuite,omitempty"`
	Status    string         `json:"status"`
	Total     int            `json:"total"`
	Passed    int            `json:"passed"`
	Failed    int            `json:"failed"`
	Report    map[string]any `json:"report,omitempty"`
	timestamps
}

// ListExecutions returns one page of execution records.
func (c *Client) ListExecutions(ctx context.Context, params ListParams) (*Page[Execution], error) {
	var page Page[Execution]
	if err := c.gw.Get(ctx, "/executions/executions/", params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetExecution fetches a single execution record.
func (c *Client) GetExecution(ctx context.Context, id int) (*Execution, error) {
	var e Execution
	if err := c.gw.Get(ctx, fmt.Sprintf("/executions/executions/%d/", id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteExecution removes one execution record.
func (c *Client) DeleteExecution(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/executions/executions/%d/", id))
}

// BatchDeleteExecutions removes several execution records at once.
func (c *Client) BatchDeleteExecutions(ctx context.Context, ids []int) error {
	body := map[string]any{"ids": ids}
	return c.gw.Post(ctx, "/executions/executions/batch_delete/", body, nil)
}
