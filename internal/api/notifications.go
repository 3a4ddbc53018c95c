package api

import (
	"context"
	"fmt"
)

// NotificationChannel delivers execution results to an external sink.
type NotificationChannel struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	ChannelType string         `json:"channel_type"`
	Config      map[string]any `json:"config,omitempty"`
	IsActive    bool           `json:"is_active"`
	timestamps
}

// NotificationChannelInput is the writable subset of a channel.
type NotificationChannelInput struct {
	Name        string         `json:"name"`
	ChannelType string         `json:"channel_type"`
	Config      map[string]any `json:"config,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
}

// ListNotificationChannels returns one page of channels.
func (c *Client) ListNotificationChannels(ctx context.Context, params ListParams) (*Page[NotificationChannel], error) {
	var page Page[NotificationChannel]
	if err := c.gw.Get(ctx, "/notifications/channels/", params.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetNotificationChannel fetches a single channel.
func (c *Client) GetNotificationChannel(ctx context.Context, id int) (*NotificationChannel, error) {
	var ch NotificationChannel
	if err := c.gw.Get(ctx, fmt.Sprintf("/notifications/channels/%d/", id), nil, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// CreateNotificationChannel creates a channel.
func (c *Client) CreateNotificationChannel(ctx context.Context, in NotificationChannelInput) (*NotificationChannel, error) {
	var ch NotificationChannel
	if err := c.gw.Post(ctx, "/notifications/channels/", in, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// UpdateNotificationChannel applies a partial update.
func (c *Client) UpdateNotificationChannel(ctx context.Context, id int, in NotificationChannelInput) (*NotificationChannel, error) {
	var ch NotificationChannel
	if err := c.gw.Patch(ctx, fmt.Sprintf("/notifications/channels/%d/", id), in, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// DeleteNotificationChannel removes a channel.
func (c *Client) DeleteNotificationChannel(ctx context.Context, id int) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/notifications/channels/%d/", id))
}

// TestNotificationChannel sends a probe message through the channel.
func (c *Client) TestNotificationChannel(ctx context.Context, id int) error {
	return c.gw.Post(ctx, fmt.Sprintf("/notifications/channels/%d/test/", id), nil, nil)
}
