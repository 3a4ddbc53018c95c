package api

import (
	"context"
	"fmt"
)

// Schedule runs a test suite on a cron expression.
type Schedule struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Project        int    `json:"project"`
	TestSuite      int    `json:"testsuite"`
	CronExpression string `json:"cron_expression"`
	Status         string `json:"status"`
	Description    string `json:"description,omitempty"`
	timestamps
}

// ScheduleInput is the writable subset of a schedule. The server expects the
// relation fields under _id names on writes.
type ScheduleInput struct {
	Name           string `json:"name"`
	ProjectID      int    `json:"project_id"`
	TestSuiteID    int    `json:"testsuite_id"`
	CronExpression string `json:"cron_expression"`
	Description    string `json:"description,omitempty"`
}

// ListSchedules returns one page of schedules.
func (c *Client) ListSchedules(ctx context.Context, params ListParams) (*Page[Schedule], error) {
	var page Page[Schedule]
	if err := c.gw.Get(ctx, "/scheduler/schedules/", params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetSchedule fetches a single schedule.
func (c *Client) GetSchedule(ctx context.Context, id int) (*Schedule, error) {
	var s Schedule
	if err := c.gw.Get(ctx, fmt.Sprintf("/scheduler/schedules/%d/", id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSchedule creates a schedule.
func (c *Client) CreateSchedule(ctx context.Context, in ScheduleInput) (*Schedule, error) {
	var s Schedule
	if err := c.gw.Post(ctx, "/scheduler/schedules/", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSchedule applies a partial update.
func (c *Client) UpdateSchedule(ctx context.Context, id int, in ScheduleInput) (*Schedule, error) {
	var s Schedule
	if err := c.gw.Patch(ctx, fmt.Sprintf("/scheduler/schedules/%d/", id), in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSchedule removes a schedule.
func (c *Client) DeleteSchedule(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/scheduler/schedules/%d/", id))
}

// ToggleSchedule switches a schedule between active and paused.
func (c *Client) ToggleSchedule(ctx context.Context, id int, status string) (*Schedule, error) {
	var s Schedule
	body := map[string]string{"status": status}
	if err := c.gw.Patch(ctx, fmt.Sprintf("/scheduler/schedules/%d/", id), body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
