package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/okian/collegerank/internal/app"
	"github.com/okian/collegerank/internal/domain/query"
)

// SessionDependencies defines listing session operations.
type SessionDependencies interface {
	OpenSession(ctx context.Context) (service.SessionView, error)
	Session(ctx context.Context, id string) (service.SessionView, error)
	Apply(ctx context.Context, id string, a query.Action) (service.SessionView, query.Outcome, error)
	CloseSession(ctx context.Context, id string) error
}

// SessionsHandler serves stateful listing views.
type SessionsHandler struct {
	deps SessionDependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps SessionDependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

type sessionResponse struct {
	ID      string       `json:"id"`
	Outcome string       `json:"outcome,omitempty"`
	Summary string       `json:"summary"`
	State   *query.State `json:"state"`
	View    query.View   `json:"view"`
}

func newSessionResponse(sv service.SessionView, outcome query.Outcome) sessionResponse {
	return sessionResponse{
		ID:      sv.ID,
		Outcome: string(outcome),
		Summary: sv.View.Summary(),
		State:   sv.State,
		View:    sv.View,
	}
}

// HandleOpen handles POST /sessions.
func (h *SessionsHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	sv, err := h.deps.OpenSession(r.Context())
	if err != nil {
		writeFailure(r, w, Wrap("api.open_session", err))
		return
	}
	writeJSON(w, http.StatusCreated, newSessionResponse(sv, ""))
}

// HandleSession handles GET and DELETE /sessions/{id}.
func (h *SessionsHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	switch r.Method {
	case http.MethodGet:
		sv, err := h.deps.Session(r.Context(), id)
		if err != nil {
			writeFailure(r, w, Wrap("api.get_session", err))
			return
		}
		writeJSON(w, http.StatusOK, newSessionResponse(sv, ""))
	case http.MethodDelete:
		if err := h.deps.CloseSession(r.Context(), id); err != nil {
			writeFailure(r, w, Wrap("api.close_session", err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}

// HandleAction handles POST /sessions/{id}/actions with one query.Action body.
func (h *SessionsHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	const op = "api.apply_action"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var a query.Action
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		writeFailure(r, w, WrapKind(op, ErrBadRequest, err))
		return
	}
	sv, outcome, err := h.deps.Apply(r.Context(), r.PathValue("id"), a)
	if err != nil {
		writeFailure(r, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(sv, outcome))
}
