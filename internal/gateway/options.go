package gateway

import "time"

// callConfig holds the per-call overrides.
type callConfig struct {
	timeout time.Duration
}

// CallOption overrides one call's configuration.
type CallOption func(*callConfig)

// WithTimeout overrides the default timeout for one call.
//
// Performance-test execution uses five minutes: the server-side run takes up
// to a minute plus startup, and the default ten seconds would cut it off.
func WithTimeout(d time.Duration) CallOption {
	return func(c *callConfig) { c.timeout = d }
}
