// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/okian/collegerank/pkg/logger"
	"github.com/okian/collegerank/pkg/metrics"
)

// failure buckets an error response for the error metrics.
type failure struct {
	kind     string
	severity string
}

// classify returns the failure bucket of status, or false for a success.
func classify(status int) (failure, bool) {
	switch {
	case status >= http.StatusInternalServerError:
		return failure{kind: "server_error", severity: "high"}, true
	case status == http.StatusNotFound:
		return failure{kind: "not_found", severity: "medium"}, true
	case status >= http.StatusBadRequest:
		return failure{kind: "client_error", severity: "medium"}, true
	}
	return failure{}, false
}

// instrument wraps a route handler with request metrics and a debug access log.
// endpoint is the metric label, kept stable across path parameters.
func instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(rec, r)
		elapsed := time.Since(start)

		ms := float64(elapsed.Microseconds()) / 1000
		code := strconv.Itoa(rec.status)
		metrics.RecordHTTPRequest(endpoint, r.Method, code)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, code, ms)

		if f, failed := classify(rec.status); failed {
			metrics.RecordErrorByEndpoint(endpoint, r.Method, f.kind)
			metrics.RecordErrorByType(f.kind, f.severity)
			metrics.RecordErrorLatency("http", f.kind, ms)
		}

		logger.Named("http").Debug(r.Context(), "request served",
			logger.String("endpoint", endpoint),
			logger.String("method", r.Method),
			logger.Int("status", rec.status),
			logger.Int("bytes", rec.written),
			logger.Duration("elapsed", elapsed),
		)
	}
}

// statusRecorder remembers the status and body size a handler produced.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}
