package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/okian/collegerank/internal/domain/model"
	"github.com/okian/collegerank/internal/domain/profile"
	"github.com/okian/collegerank/internal/domain/query"
)

// CollegeDependencies defines the listing and details operations.
type CollegeDependencies interface {
	Query(ctx context.Context, s *query.State) (query.View, error)
	Profile(ctx context.Context, id int) (profile.Details, error)
	Cities(ctx context.Context, region string) ([]string, error)
}

// CollegesHandler serves the stateless listing and the details page.
type CollegesHandler struct {
	deps CollegeDependencies
}

// NewCollegesHandler creates a new colleges handler.
func NewCollegesHandler(deps CollegeDependencies) *CollegesHandler {
	return &CollegesHandler{deps: deps}
}

// listResponse is one listing page.
type listResponse struct {
	query.View
	Summary string       `json:"summary"`
	State   *query.State `json:"state"`
}

func newListResponse(v query.View, s *query.State) listResponse {
	return listResponse{View: v, Summary: v.Summary(), State: s}
}

// HandleList handles GET /colleges with the filters as query parameters.
func (h *CollegesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_colleges"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	s, err := h.stateFromQuery(r.Context(), r.URL.Query())
	if err != nil {
		writeFailure(r, w, WrapKind(op, ErrBadRequest, err))
		return
	}
	v, err := h.deps.Query(r.Context(), s)
	if err != nil {
		writeFailure(r, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(v, s))
}

// boundParams maps query parameters onto range bounds.
var boundParams = []struct { //nolint:gochecknoglobals // fixed lookup table
	name  string
	field query.Field
	edge  query.Edge
}{
	{"quality_min", query.FieldQuality, query.Min},
	{"quality_max", query.FieldQuality, query.Max},
	{"rank_min", query.FieldRank, query.Min},
	{"rank_max", query.FieldRank, query.Max},
	{"placement_min", query.FieldPlacement, query.Min},
	{"placement_max", query.FieldPlacement, query.Max},
}

// stateFromQuery builds a query state the same way the listing controls do:
// an unparsable bound keeps the default and a city outside the region is dropped.
func (h *CollegesHandler) stateFromQuery(ctx context.Context, q url.Values) (*query.State, error) {
	s := query.NewState()
	s.SetSearch(q.Get("search"))

	c, err := model.ParseCategory(q.Get("category"))
	if err != nil {
		return nil, err
	}
	s.SetCategory(c)

	s.SetRegion(q.Get("region"))
	if city := q.Get("city"); city != "" && s.Region != "" {
		cities, err := h.deps.Cities(ctx, s.Region)
		if err != nil {
			return nil, err
		}
		if slices.Contains(cities, city) {
			s.City = city
		}
	}

	for _, p := range boundParams {
		if text, ok := q[p.name]; ok && len(text) > 0 {
			s.EditBound(p.field, p.edge, text[0])
		}
	}

	if key := q.Get("sort"); key != "" {
		k, ok := query.ParseSortKey(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", query.ErrUnknownSortKey, key)
		}
		s.SortKey = k
	}
	if order := q.Get("order"); order != "" {
		d, ok := query.ParseDirection(order)
		if !ok {
			return nil, fmt.Errorf("unknown order %q", order)
		}
		s.Direction = d
	}
	if page := q.Get("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", page)
		}
		s.Page = max(n, 1)
	}
	return s, nil
}

// HandleGet handles GET /colleges/{id}: the details page.
func (h *CollegesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_college"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	d, err := h.deps.Profile(r.Context(), id)
	if err != nil {
		writeFailure(r, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, d)
}
