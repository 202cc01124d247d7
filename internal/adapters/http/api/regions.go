package api

import (
	"context"
	"net/http"
)

// RegionDependencies exposes the filter option lists.
type RegionDependencies interface {
	Regions(ctx context.Context) ([]string, error)
	Cities(ctx context.Context, region string) ([]string, error)
}

// RegionsHandler serves the region and city dropdown values.
type RegionsHandler struct {
	deps RegionDependencies
}

// NewRegionsHandler creates a new regions handler.
func NewRegionsHandler(deps RegionDependencies) *RegionsHandler {
	return &RegionsHandler{deps: deps}
}

// HandleRegions handles GET /regions.
func (h *RegionsHandler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	regions, err := h.deps.Regions(r.Context())
	if err != nil {
		writeFailure(r, w, Wrap("api.get_regions", err))
		return
	}
	writeJSON(w, http.StatusOK, regions)
}

// HandleCities handles GET /regions/{region}/cities. An unknown region has no cities.
func (h *RegionsHandler) HandleCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cities, err := h.deps.Cities(r.Context(), r.PathValue("region"))
	if err != nil {
		writeFailure(r, w, Wrap("api.get_cities", err))
		return
	}
	writeJSON(w, http.StatusOK, cities)
}
