package query

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/okian/collegerank/internal/domain/model"
)

// View is one displayable page of the roster.
type View struct {
	Items []model.College `json:"items"`
	// Total counts every match before pagination.
	Total int `json:"total"`
	Pages int `json:"pages"`
	// Page is the page actually shown, after clamping the requested one.
	Page int `json:"page"`
	// From and To are the 1-based positions of the first and last item shown,
	// both zero when nothing matched.
	From int `json:"from"`
	To   int `json:"to"`
}

// Empty reports whether nothing matched.
func (v View) Empty() bool { return v.Total == 0 }

// HasPrev reports whether a previous page exists.
func (v View) HasPrev() bool { return v.Page > 1 }

// HasNext reports whether a next page exists.
func (v View) HasNext() bool { return v.Page < v.Pages }

// Summary renders the "Showing X to Y of Z colleges" line.
func (v View) Summary() string {
	p := message.NewPrinter(language.English)
	if v.Empty() {
		return p.Sprintf("No colleges found")
	}
	return p.Sprintf("Showing %d to %d of %d colleges", v.From, v.To, v.Total)
}

// ComputeView filters, sorts and paginates entities according to s.
// Neither argument is modified.
func ComputeView(entities []model.College, s *State) View {
	matched := Filter(entities, s)
	Sort(matched, s.SortKey, s.Direction)

	total := len(matched)
	pages := PageCount(total)
	page := clampPage(s.Page, pages)

	start := min((page-1)*PageSize, total)
	end := min(page*PageSize, total)

	v := View{
		Items: matched[start:end:end],
		Total: total,
		Pages: pages,
		Page:  page,
	}
	if end > start {
		v.From = start + 1
		v.To = end
	}
	return v
}

// PageCount returns ceil(total/PageSize), at least 1.
func PageCount(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

// Filter returns, in collection order, the entities passing every filter of s.
func Filter(entities []model.College, s *State) []model.College {
	lower := cases.Lower(language.Und)
	needle := lower.String(s.Search)

	out := make([]model.College, 0, len(entities))
	for _, c := range entities {
		if needle != "" && !strings.Contains(lower.String(c.Name), needle) {
			continue
		}
		if s.Category != "" && c.Category != s.Category {
			continue
		}
		if s.Region != "" && c.Region != s.Region {
			continue
		}
		if s.City != "" && c.City != s.City {
			continue
		}
		if !s.Quality.Contains(c.QualityScore) ||
			!s.Rank.Contains(float64(c.NationalRank)) ||
			!s.Placement.Contains(c.PlacementRate) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Sort orders entities in place by key. Equal keys fall back to ID in the
// same direction, so reversing the direction reverses the whole order.
func Sort(entities []model.College, key SortKey, dir Direction) {
	slices.SortFunc(entities, func(a, b model.College) int {
		c := cmp.Compare(sortValue(a, key), sortValue(b, key))
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if dir == Descending {
			return -c
		}
		return c
	})
}

func sortValue(c model.College, key SortKey) float64 {
	switch key {
	case SortNationalRank:
		return float64(c.NationalRank)
	case SortPlacementRate:
		return c.PlacementRate
	case SortQualityScore:
		return c.QualityScore
	default:
		return c.OverallScore
	}
}
