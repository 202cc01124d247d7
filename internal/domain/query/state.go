// Package query implements the roster query engine: a mutable per-view query
// state and the pure derivation of a displayable page from it.
package query

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/okian/collegerank/internal/domain/model"
)

// Fixed engine limits.
const (
	PageSize          = 10
	SelectionCapacity = 3
)

// SortKey names a numeric field the roster can be ordered by.
type SortKey string

// Sortable fields.
const (
	SortOverallScore  SortKey = "overallScore"
	SortNationalRank  SortKey = "nationalRank"
	SortPlacementRate SortKey = "placementRate"
	SortQualityScore  SortKey = "qualityScore"
)

// SortKeys lists the sortable fields in toolbar order.
func SortKeys() []SortKey {
	return []SortKey{SortOverallScore, SortNationalRank, SortPlacementRate, SortQualityScore}
}

// ParseSortKey accepts camelCase or snake_case names, case-insensitively.
func ParseSortKey(s string) (SortKey, bool) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for _, k := range SortKeys() {
		if strings.ToLower(string(k)) == norm {
			return k, true
		}
	}
	return "", false
}

// Direction is the sort direction.
type Direction string

// Directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts "asc"/"ascending" and "desc"/"descending".
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, true
	case "desc", "descending":
		return Descending, true
	}
	return "", false
}

// Field names a range-filtered metric.
type Field string

// Range-filtered fields.
const (
	FieldQuality   Field = "quality"
	FieldRank      Field = "rank"
	FieldPlacement Field = "placement"
)

// ParseField resolves a range field name.
func ParseField(s string) (Field, bool) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldQuality, FieldRank, FieldPlacement:
		return f, true
	}
	return "", false
}

// Edge selects one end of a range.
type Edge string

// Range edges.
const (
	Min Edge = "min"
	Max Edge = "max"
)

// Range is a closed interval. A value passes iff Min <= v <= Max.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FullRange returns the whole domain of a field.
func FullRange(f Field) Range {
	switch f {
	case FieldQuality:
		return Range{Min: model.MinQuality, Max: model.MaxQuality}
	case FieldRank:
		return Range{Min: model.MinRank, Max: model.MaxRank}
	case FieldPlacement:
		return Range{Min: model.MinPlacement, Max: model.MaxPlacement}
	}
	return Range{}
}

// State is the user-adjustable query of one listing view.
// The zero value is not ready for use; start from NewState.
type State struct {
	Search    string         `json:"search"`
	Category  model.Category `json:"category,omitempty"`
	Region    string         `json:"region,omitempty"`
	City      string         `json:"city,omitempty"`
	Quality   Range          `json:"quality"`
	Rank      Range          `json:"rank"`
	Placement Range          `json:"placement"`
	SortKey   SortKey        `json:"sort_key"`
	Direction Direction      `json:"direction"`
	Selection []int          `json:"selection"`
	Page      int            `json:"page"`
}

// NewState returns the default query: no filters, full ranges, overall score
// descending, first page, empty selection.
func NewState() *State {
	s := &State{
		SortKey:   SortOverallScore,
		Direction: Descending,
		Selection: []int{},
	}
	s.ResetFilters()
	return s
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := *s
	c.Selection = slices.Clone(s.Selection)
	if c.Selection == nil {
		c.Selection = []int{}
	}
	return &c
}

// ResetFilters clears every filter and returns to the first page.
// Sort and selection are left as they are.
func (s *State) ResetFilters() {
	s.Search = ""
	s.Category = ""
	s.Region = ""
	s.City = ""
	s.Quality = FullRange(FieldQuality)
	s.Rank = FullRange(FieldRank)
	s.Placement = FullRange(FieldPlacement)
	s.Page = 1
}

// SetSearch replaces the free-text name filter.
func (s *State) SetSearch(text string) {
	s.Search = text
	s.Page = 1
}

// SetCategory restricts the roster to one category; empty clears it.
func (s *State) SetCategory(c model.Category) {
	s.Category = c
	s.Page = 1
}

// SetRegion sets the region filter and always clears the city, which has to
// be chosen again from the new region's cities.
func (s *State) SetRegion(region string) {
	s.Region = region
	s.City = ""
	s.Page = 1
}

// SetCity sets the city filter. The city must be one of the cities of the
// current region; otherwise the state is left unchanged and false is returned.
// An empty city clears the filter.
func (s *State) SetCity(entities []model.College, city string) bool {
	if city == "" {
		s.City = ""
		s.Page = 1
		return true
	}
	if s.Region == "" || !slices.Contains(Cities(entities, s.Region), city) {
		return false
	}
	s.City = city
	s.Page = 1
	return true
}

// SetRange replaces a whole range.
func (s *State) SetRange(f Field, r Range) {
	if p := s.rangeOf(f); p != nil {
		*p = r
		s.Page = 1
	}
}

// EditBound parses text as a new bound of one range. Text that does not parse
// as a finite number leaves the previous bound in place and returns false.
// Rank bounds drop any fractional part, so "5.0" and "5.7" both mean 5.
func (s *State) EditBound(f Field, e Edge, text string) bool {
	p := s.rangeOf(f)
	if p == nil {
		return false
	}
	v, ok := parseBound(f, text)
	if !ok {
		return false
	}
	switch e {
	case Min:
		p.Min = v
	case Max:
		p.Max = v
	default:
		return false
	}
	s.Page = 1
	return true
}

func parseBound(f Field, text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if f == FieldRank {
		v = math.Trunc(v)
	}
	return v, true
}

func (s *State) rangeOf(f Field) *Range {
	switch f {
	case FieldQuality:
		return &s.Quality
	case FieldRank:
		return &s.Rank
	case FieldPlacement:
		return &s.Placement
	}
	return nil
}

// ToggleSort flips the direction when key is already active; otherwise it
// switches to key in descending order.
func (s *State) ToggleSort(key SortKey) {
	if s.SortKey == key {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.SortKey = key
	s.Direction = Descending
}

// SelectionOutcome reports what ToggleSelection did.
type SelectionOutcome int

// Selection outcomes.
const (
	Added SelectionOutcome = iota
	Removed
	Rejected
)

func (o SelectionOutcome) String() string {
	switch o {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "rejected"
	}
}

// ToggleSelection removes id if selected, adds it if there is room, and
// otherwise leaves the selection untouched.
func (s *State) ToggleSelection(id int) SelectionOutcome {
	if i := slices.Index(s.Selection, id); i >= 0 {
		s.Selection = slices.Delete(s.Selection, i, i+1)
		return Removed
	}
	if len(s.Selection) >= SelectionCapacity {
		return Rejected
	}
	s.Selection = append(s.Selection, id)
	return Added
}

// Selected reports whether id is in the selection.
func (s *State) Selected(id int) bool {
	return slices.Contains(s.Selection, id)
}

// SelectionFull reports whether another id can no longer be added.
func (s *State) SelectionFull() bool {
	return len(s.Selection) >= SelectionCapacity
}

// GoToPage moves to page n clamped into [1, pages].
func (s *State) GoToPage(n, pages int) {
	s.Page = clampPage(n, pages)
}

// NextPage advances one page, stopping at the last one.
func (s *State) NextPage(pages int) {
	s.Page = clampPage(s.Page+1, pages)
}

// PrevPage goes back one page, stopping at the first one.
func (s *State) PrevPage() {
	s.Page = clampPage(s.Page-1, math.MaxInt)
}

func clampPage(n, pages int) int {
	if pages < 1 {
		pages = 1
	}
	return max(1, min(n, pages))
}
