package query

import (
	"fmt"

	"github.com/okian/collegerank/internal/domain/model"
)

// ActionType names a user input event on the listing view.
type ActionType string

// Action types.
const (
	ActionSearch   ActionType = "search"
	ActionCategory ActionType = "category"
	ActionRegion   ActionType = "region"
	ActionCity     ActionType = "city"
	ActionBound    ActionType = "bound"
	ActionSort     ActionType = "sort"
	ActionSelect   ActionType = "select"
	ActionReset    ActionType = "reset"
	ActionPage     ActionType = "page"
	ActionNext     ActionType = "next"
	ActionPrev     ActionType = "prev"
)

// Action is one input event. Only the fields relevant to Type are read.
type Action struct {
	Type  ActionType `json:"type"`
	Value string     `json:"value,omitempty"` // search text, category, region, city, bound text
	Field string     `json:"field,omitempty"` // bound: quality|rank|placement
	Edge  string     `json:"edge,omitempty"`  // bound: min|max
	Key   string     `json:"key,omitempty"`   // sort key
	ID    int        `json:"id,omitempty"`    // select
	Page  int        `json:"page,omitempty"`  // page
}

// Outcome tells whether an action changed the state.
type Outcome string

// Outcomes. Ignored covers the silent no-ops: a full selection, an unparsable
// bound, a city outside the selected region.
const (
	Applied Outcome = "applied"
	Ignored Outcome = "ignored"
)

// Apply runs a on s. Errors are only returned for actions that cannot be
// decoded; the state is left unchanged in that case.
func Apply(entities []model.College, s *State, a Action) (Outcome, error) {
	switch a.Type {
	case ActionSearch:
		s.SetSearch(a.Value)
	case ActionCategory:
		c, err := model.ParseCategory(a.Value)
		if err != nil {
			return "", err
		}
		s.SetCategory(c)
	case ActionRegion:
		s.SetRegion(a.Value)
	case ActionCity:
		if !s.SetCity(entities, a.Value) {
			return Ignored, nil
		}
	case ActionBound:
		f, ok := ParseField(a.Field)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownField, a.Field)
		}
		e := Edge(a.Edge)
		if e != Min && e != Max {
			return "", fmt.Errorf("%w: %q", ErrUnknownEdge, a.Edge)
		}
		if !s.EditBound(f, e, a.Value) {
			return Ignored, nil
		}
	case ActionSort:
		k, ok := ParseSortKey(a.Key)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, a.Key)
		}
		s.ToggleSort(k)
	case ActionSelect:
		if s.ToggleSelection(a.ID) == Rejected {
			return Ignored, nil
		}
	case ActionReset:
		s.ResetFilters()
	case ActionPage:
		s.GoToPage(a.Page, pagesFor(entities, s))
	case ActionNext:
		s.NextPage(pagesFor(entities, s))
	case ActionPrev:
		s.PrevPage()
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	return Applied, nil
}

func pagesFor(entities []model.College, s *State) int {
	return PageCount(len(Filter(entities, s)))
}
