// Package session keeps the query state of every open listing view.
package session

import "time"

// Option applies a configuration option to the registry.
type Option func(*registry)

// WithMaxSessions bounds the number of open sessions. When full, opening a
// new session evicts the least recently used one. Values <= 0 mean unbounded.
func WithMaxSessions(n int) Option {
	return func(r *registry) {
		r.maxSize = n
	}
}

// WithTTL sets how long a session may stay idle before Sweep drops it.
// Values <= 0 disable expiry.
func WithTTL(ttl time.Duration) Option {
	return func(r *registry) {
		r.ttl = ttl
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *registry) {
		if now != nil {
			r.now = now
		}
	}
}
