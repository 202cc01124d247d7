// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
)

// DefaultTopLimit is the landing board size when no limit is given.
const DefaultTopLimit = 5

// TopDependencies defines the interface for top board operations.
type TopDependencies interface {
	TopN(ctx context.Context, n int) ([]Entry, error)
	MaxTopLimit() int
}

// TopHandler handles top board requests.
type TopHandler struct {
	deps TopDependencies
}

// NewTopHandler creates a new top board handler.
func NewTopHandler(deps TopDependencies) *TopHandler {
	return &TopHandler{deps: deps}
}

// HandleGetTop handles GET /top?limit=N requests.
func (h *TopHandler) HandleGetTop(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_top"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := DefaultTopLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		n, err = strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
	}
	if n > h.deps.MaxTopLimit() {
		writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
		return
	}
	entries, err := h.deps.TopN(r.Context(), n)
	if err != nil {
		writeFailure(r, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
