package api

import (
	"net/url"
	"strconv"
	"time"

	"github.com/benchlink/benchlink-cli/internal/gateway"
	"github.com/benchlink/benchlink-cli/internal/session"
)

// Client wraps the platform's REST resources, one thin method per endpoint.
//
// All transport concerns live in the gateway: credential attachment, timeout,
// error classification, the expiry redirect. Methods here only name the
// endpoint and the payload shapes.
type Client struct {
	gw    *gateway.Gateway
	store session.Store
}

// NewClient creates a resource client on top of a configured gateway.
func NewClient(gw *gateway.Gateway, store session.Store) *Client {
	return &Client{gw: gw, store: store}
}

// Page is the server's pagination envelope.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ListParams are the common list-endpoint query parameters.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Project  int
	Ordering string
}

// query renders the parameters, omitting zero values.
func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Project > 0 {
		q.Set("project", strconv.Itoa(p.Project))
	}
	if p.Ordering != "" {
		q.Set("ordering", p.Ordering)
	}
	return q
}

// Timestamps shared by most resources.
type timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
