package api

import (
	"context"
	"fmt"
	"time"

	"github.com/benchlink/benchlink-cli/internal/gateway"
)

// performanceExecuteTimeout accommodates a server-side load-test run of up
// to a minute, plus worker startup and buffer. The gateway's 10s default
// would abort the call long before the run completes.
const performanceExecuteTimeout = 300 * time.Second

// PerformanceTest is a load-test definition.
type PerformanceTest struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Project     int    `json:"project"`
	TargetURL   string `json:"target_url"`
	Users       int    `json:"users"`
	SpawnRate   int    `json:"spawn_rate"`
	Duration    int    `json:"duration"`
	Script      string `json:"script,omitempty"`
	Description string `json:"description,omitempty"`
	timestamps
}

// PerformanceTestInput is the writable subset of a load test.
type PerformanceTestInput struct {
	Name        string `json:"name"`
	Project     int    `json:"project"`
	TargetURL   string `json:"target_url"`
	Users       int    `json:"users"`
	SpawnRate   int    `json:"spawn_rate"`
	Duration    int    `json:"duration"`
	Script      string `json:"script,omitempty"`
	Description string `json:"description,omitempty"`
}

// PerformanceReport is the aggregated outcome of one load-test run.
type PerformanceReport struct {
	ID              int     `json:"id"`
	Test            int     `json:"test"`
	Status          string  `json:"status"`
	TotalRequests   int     `json:"total_requests"`
	FailedRequests  int     `json:"failed_requests"`
	AvgResponseTime float64 `json:"avg_response_time"`
	RequestsPerSec  float64 `json:"requests_per_sec"`
}

// ListPerformanceTests returns one page of load tests.
func (c *Client) ListPerformanceTests(ctx context.Context, params ListParams) (*Page[PerformanceTest], error) {
	var page Page[PerformanceTest]
	if err := c.gw.Get(ctx, "/testcases/performance-tests/", params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPerformanceTest fetches a single load test.
func (c *Client) GetPerformanceTest(ctx context.Context, id int) (*PerformanceTest, error) {
	var pt PerformanceTest
	if err := c.gw.Get(ctx, fmt.Sprintf("/testcases/performance-tests/%d/", id), nil, &pt); err != nil {
		return nil, err
	}
	return &pt, nil
}

// CreatePerformanceTest creates a load test.
func (c *Client) CreatePerformanceTest(ctx context.Context, in PerformanceTestInput) (*PerformanceTest, error) {
	var pt PerformanceTest
	if err := c.gw.Post(ctx, "/testcases/performance-tests/", in, &pt); err != nil {
		return nil, err
	}
	return &pt, nil
}

// UpdatePerformanceTest applies a partial update.
func (c *Client) UpdatePerformanceTest(ctx context.Context, id int, in PerformanceTestInput) (*PerformanceTest, error) {
	var pt PerformanceTest
	if err := c.gw.Patch(ctx, fmt.Sprintf("/testcases/performance-tests/%d/", id), in, &pt); err != nil {
		return nil, err
	}
	return &pt, nil
}

// DeletePerformanceTest removes a load test.
func (c *Client) DeletePerformanceTest(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/testcases/performance-tests/%d/", id))
}

// ExecutePerformanceTest starts a load-test run and waits for the report.
// This is the documented long-running operation: it overrides the default
// per-call timeout.
func (c *Client) ExecutePerformanceTest(ctx context.Context, id int) (*PerformanceReport, error) {
	var report PerformanceReport
	err := c.gw.Post(ctx, fmt.Sprintf("/testcases/performance-tests/%d/execute/", id),
		map[string]any{}, &report, gateway.WithTimeout(performanceExecuteTimeout))
	if err != nil {
		return nil, err
	}
	return &report, nil
}
