package api

import (
	"maps"
	"net/http"
	"time"
)

// StatsProvider reports the service counters published on /stats.
type StatsProvider interface {
	GetStats() map[string]any
}

// statsHandler serves the provider's counters plus the server uptime.
func statsHandler(p StatsProvider, since time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		out := maps.Clone(p.GetStats())
		if out == nil {
			out = make(map[string]any, 1)
		}
		out["uptimeSeconds"] = int64(time.Since(since).Seconds())
		writeJSON(w, http.StatusOK, out)
	}
}
