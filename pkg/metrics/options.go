package metrics

import (
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
)

// Option customizes a Manager built by NewManager. Zero values keep the default.
type Option func(*Manager)

// WithNamespace replaces the "collegerank" metric name prefix.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem replaces the "roster" metric name segment.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithHistogramBuckets sets the millisecond buckets shared by every latency histogram.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = sortedCopy(buckets)
		}
	}
}

// WithMatchBuckets sets the buckets of the matches-per-view histogram.
func WithMatchBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.matchBuckets = sortedCopy(buckets)
		}
	}
}

// WithCustomLabels merges constant labels into every metric. Repeated calls
// accumulate; a later value for the same name wins.
func WithCustomLabels(labels map[string]string) Option {
	return func(m *Manager) {
		if m.customLabels == nil {
			m.customLabels = make(map[string]string, len(labels))
		}
		maps.Copy(m.customLabels, labels)
	}
}

// WithPrometheusRegistry registers the metrics on reg instead of the package registry.
func WithPrometheusRegistry(reg prometheus.Registerer) Option {
	return func(m *Manager) {
		if reg != nil {
			m.registry = reg
		}
	}
}

// sortedCopy detaches buckets from the caller's slice; prometheus rejects unsorted ones.
func sortedCopy(buckets []float64) []float64 {
	out := slices.Clone(buckets)
	slices.Sort(out)
	return slices.Compact(out)
}
