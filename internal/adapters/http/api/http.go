// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/okian/collegerank/internal/adapters/repository"
	service "github.com/okian/collegerank/internal/app"
	"github.com/okian/collegerank/internal/domain/model"
	"github.com/okian/collegerank/internal/domain/query"
	"github.com/okian/collegerank/internal/domain/types"
	"github.com/okian/collegerank/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	CollegeDependencies
	TopDependencies
	RegionDependencies
	SessionDependencies
}

// Entry mirrors the read shape returned by top board queries.
type Entry = types.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	stats           http.HandlerFunc
	collegesHandler *CollegesHandler
	topHandler      *TopHandler
	regionsHandler  *RegionsHandler
	sessionsHandler *SessionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		stats:           statsHandler(statsProvider, time.Now()),
		collegesHandler: NewCollegesHandler(deps),
		topHandler:      NewTopHandler(deps),
		regionsHandler:  NewRegionsHandler(deps),
		sessionsHandler: NewSessionsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	routes := []struct {
		pattern  string
		endpoint string
		handler  http.HandlerFunc
	}{
		{"/healthz", "healthz", s.healthHandler.HandleHealth},
		{"/stats", "stats", s.stats},
		{"/colleges", "colleges", s.collegesHandler.HandleList},
		{"/colleges/{id}", "college", s.collegesHandler.HandleGet},
		{"/top", "top", s.topHandler.HandleGetTop},
		{"/regions", "regions", s.regionsHandler.HandleRegions},
		{"/regions/{region}/cities", "cities", s.regionsHandler.HandleCities},
		{"/sessions", "sessions", s.sessionsHandler.HandleOpen},
		{"/sessions/{id}", "session", s.sessionsHandler.HandleSession},
		{"/sessions/{id}/actions", "actions", s.sessionsHandler.HandleAction},
	}
	for _, rt := range routes {
		mux.HandleFunc(rt.pattern, instrument(rt.endpoint, rt.handler))
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure maps err onto a status by its sentinel kind.
func writeFailure(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case isNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", err)
	case isBadRequest(err):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		logger.Named("api").Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.String("method", r.Method),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, service.ErrSessionNotFound)
}

func isBadRequest(err error) bool {
	for _, kind := range []error{
		ErrBadRequest,
		repository.ErrInvalidLimit,
		model.ErrUnknownCategory,
		query.ErrUnknownAction,
		query.ErrUnknownSortKey,
		query.ErrUnknownField,
		query.ErrUnknownEdge,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
