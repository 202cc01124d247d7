// Package repository defines the catalog store interface and errors.
package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithMetrics enables or disables recording query latencies.
func WithMetrics(enabled bool) Option {
	return func(s *MemStore) {
		s.metricsEnabled = enabled
	}
}
