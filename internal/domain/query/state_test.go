package query_test

import (
	"errors"
	"testing"

	"github.com/okian/collegerank/internal/adapters/seed"
	"github.com/okian/collegerank/internal/domain/model"
	"github.com/okian/collegerank/internal/domain/query"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewState(t *testing.T) {
	Convey("Given a new state", t, func() {
		s := query.NewState()

		Convey("Then it has no filters and default sort", func() {
			So(s.Search, ShouldEqual, "")
			So(s.Category, ShouldEqual, model.Category(""))
			So(s.Region, ShouldEqual, "")
			So(s.City, ShouldEqual, "")
			So(s.Quality, ShouldResemble, query.Range{Min: 0, Max: 4})
			So(s.Rank, ShouldResemble, query.Range{Min: 1, Max: 500})
			So(s.Placement, ShouldResemble, query.Range{Min: 0, Max: 100})
			So(s.SortKey, ShouldEqual, query.SortOverallScore)
			So(s.Direction, ShouldEqual, query.Descending)
			So(s.Selection, ShouldBeEmpty)
			So(s.Page, ShouldEqual, 1)
		})
	})
}

func TestToggleSort(t *testing.T) {
	Convey("Given a state sorted by overall score descending", t, func() {
		s := query.NewState()

		Convey("When toggling the same key", func() {
			s.ToggleSort(query.SortOverallScore)

			Convey("Then the direction flips", func() {
				So(s.SortKey, ShouldEqual, query.SortOverallScore)
				So(s.Direction, ShouldEqual, query.Ascending)
				s.ToggleSort(query.SortOverallScore)
				So(s.Direction, ShouldEqual, query.Descending)
			})
		})

		Convey("When switching to another key from ascending", func() {
			s.ToggleSort(query.SortOverallScore)
			s.ToggleSort(query.SortPlacementRate)

			Convey("Then the new key starts descending", func() {
				So(s.SortKey, ShouldEqual, query.SortPlacementRate)
				So(s.Direction, ShouldEqual, query.Descending)
			})
		})
	})
}

func TestToggleSelection(t *testing.T) {
	Convey("Given an empty selection", t, func() {
		s := query.NewState()

		Convey("When selecting three colleges", func() {
			So(s.ToggleSelection(1), ShouldEqual, query.Added)
			So(s.ToggleSelection(2), ShouldEqual, query.Added)
			So(s.ToggleSelection(3), ShouldEqual, query.Added)

			Convey("Then a fourth is rejected and the selection is unchanged", func() {
				So(s.SelectionFull(), ShouldBeTrue)
				So(s.ToggleSelection(4), ShouldEqual, query.Rejected)
				So(s.Selection, ShouldResemble, []int{1, 2, 3})
				So(s.Selected(4), ShouldBeFalse)
			})

			Convey("Then deselecting frees a slot", func() {
				So(s.ToggleSelection(2), ShouldEqual, query.Removed)
				So(s.Selection, ShouldResemble, []int{1, 3})
				So(s.ToggleSelection(4), ShouldEqual, query.Added)
				So(s.Selection, ShouldResemble, []int{1, 3, 4})
			})
		})

		Convey("When toggling many ids", func() {
			for i := 0; i < 100; i++ {
				s.ToggleSelection(i % 7)
				So(len(s.Selection), ShouldBeLessThanOrEqualTo, query.SelectionCapacity)
			}
		})
	})
}

func TestResetFilters(t *testing.T) {
	Convey("Given a state with every filter set", t, func() {
		s := query.NewState()
		s.SetSearch("IIT")
		s.SetCategory(model.Private)
		s.SetRegion("Tamil Nadu")
		s.City = "Vellore"
		s.SetRange(query.FieldQuality, query.Range{Min: 3, Max: 3.5})
		s.SetRange(query.FieldRank, query.Range{Min: 10, Max: 20})
		s.SetRange(query.FieldPlacement, query.Range{Min: 50, Max: 60})
		s.ToggleSort(query.SortNationalRank)
		s.ToggleSelection(7)
		s.Page = 2

		Convey("When resetting", func() {
			s.ResetFilters()
			once := s.Clone()
			s.ResetFilters()

			Convey("Then filters and page return to defaults", func() {
				def := query.NewState()
				So(s.Search, ShouldEqual, def.Search)
				So(s.Category, ShouldEqual, def.Category)
				So(s.Region, ShouldEqual, def.Region)
				So(s.City, ShouldEqual, def.City)
				So(s.Quality, ShouldResemble, def.Quality)
				So(s.Rank, ShouldResemble, def.Rank)
				So(s.Placement, ShouldResemble, def.Placement)
				So(s.Page, ShouldEqual, 1)
			})

			Convey("Then sort and selection are kept", func() {
				So(s.SortKey, ShouldEqual, query.SortNationalRank)
				So(s.Selection, ShouldResemble, []int{7})
			})

			Convey("Then resetting again changes nothing", func() {
				So(s, ShouldResemble, once)
			})
		})
	})
}

func TestRegionAndCity(t *testing.T) {
	Convey("Given a state filtered to a city", t, func() {
		entities := seed.Default()
		s := query.NewState()
		s.SetRegion("Tamil Nadu")
		So(s.SetCity(entities, "Chennai"), ShouldBeTrue)

		Convey("When changing the region", func() {
			s.SetRegion("Delhi")

			Convey("Then the city is cleared", func() {
				So(s.Region, ShouldEqual, "Delhi")
				So(s.City, ShouldEqual, "")
			})
		})

		Convey("When re-selecting the same region", func() {
			s.SetRegion("Tamil Nadu")

			Convey("Then the city is still cleared", func() {
				So(s.City, ShouldEqual, "")
			})
		})

		Convey("When choosing a city outside the region", func() {
			ok := s.SetCity(entities, "Mumbai")

			Convey("Then it is rejected and the old city stays", func() {
				So(ok, ShouldBeFalse)
				So(s.City, ShouldEqual, "Chennai")
			})
		})

		Convey("When clearing the region", func() {
			s.SetRegion("")

			Convey("Then no city can be chosen", func() {
				So(s.SetCity(entities, "Chennai"), ShouldBeFalse)
				So(s.City, ShouldEqual, "")
			})
		})
	})
}

func TestEditBound(t *testing.T) {
	Convey("Given a default state", t, func() {
		s := query.NewState()

		Convey("When editing bounds with numbers", func() {
			So(s.EditBound(query.FieldQuality, query.Min, "3.2"), ShouldBeTrue)
			So(s.EditBound(query.FieldRank, query.Max, " 50 "), ShouldBeTrue)
			So(s.EditBound(query.FieldPlacement, query.Min, "80"), ShouldBeTrue)

			Convey("Then the bounds are adopted", func() {
				So(s.Quality, ShouldResemble, query.Range{Min: 3.2, Max: 4})
				So(s.Rank, ShouldResemble, query.Range{Min: 1, Max: 50})
				So(s.Placement, ShouldResemble, query.Range{Min: 80, Max: 100})
			})
		})

		Convey("When a rank bound is written as a decimal", func() {
			Convey("Then its integer part is adopted", func() {
				for text, want := range map[string]float64{"5.0": 5, "10.": 10, "1e1": 10, "7.9": 7} {
					So(s.EditBound(query.FieldRank, query.Max, text), ShouldBeTrue)
					So(s.Rank.Max, ShouldEqual, want)
				}
				So(s.EditBound(query.FieldRank, query.Max, "abc"), ShouldBeFalse)
				So(s.Rank.Max, ShouldEqual, 7)
			})
		})

		Convey("When a bound does not parse", func() {
			s.EditBound(query.FieldRank, query.Min, "5")
			s.Page = 2

			Convey("Then the previous valid bound is kept", func() {
				So(s.EditBound(query.FieldRank, query.Min, "abc"), ShouldBeFalse)
				So(s.EditBound(query.FieldRank, query.Min, "1/2"), ShouldBeFalse)
				So(s.EditBound(query.FieldQuality, query.Max, ""), ShouldBeFalse)
				So(s.EditBound(query.FieldQuality, query.Max, "NaN"), ShouldBeFalse)
				So(s.EditBound(query.FieldPlacement, query.Max, "Inf"), ShouldBeFalse)
				So(s.Rank.Min, ShouldEqual, 5)
				So(s.Quality.Max, ShouldEqual, 4)
				So(s.Placement.Max, ShouldEqual, 100)
				So(s.Page, ShouldEqual, 2)
			})
		})
	})
}

func TestPaging(t *testing.T) {
	Convey("Given a state on page one of two", t, func() {
		s := query.NewState()

		Convey("Then paging stays inside the range", func() {
			s.PrevPage()
			So(s.Page, ShouldEqual, 1)
			s.NextPage(2)
			So(s.Page, ShouldEqual, 2)
			s.NextPage(2)
			So(s.Page, ShouldEqual, 2)
			s.GoToPage(7, 2)
			So(s.Page, ShouldEqual, 2)
			s.GoToPage(0, 2)
			So(s.Page, ShouldEqual, 1)
			s.GoToPage(3, 0)
			So(s.Page, ShouldEqual, 1)
		})

		Convey("When a filter changes on page two", func() {
			s.GoToPage(2, 2)
			s.SetSearch("IIT")

			Convey("Then the page resets to one", func() {
				So(s.Page, ShouldEqual, 1)
			})
		})
	})
}

func TestApply(t *testing.T) {
	Convey("Given the seed catalog and a default state", t, func() {
		entities := seed.Default()
		s := query.NewState()

		Convey("When applying a sequence of actions", func() {
			steps := []query.Action{
				{Type: query.ActionRegion, Value: "Tamil Nadu"},
				{Type: query.ActionCity, Value: "Chennai"},
				{Type: query.ActionCategory, Value: "government"},
				{Type: query.ActionSort, Key: "national_rank"},
				{Type: query.ActionBound, Field: "placement", Edge: "min", Value: "86"},
				{Type: query.ActionSelect, ID: 3},
			}
			for _, a := range steps {
				out, err := query.Apply(entities, s, a)
				So(err, ShouldBeNil)
				So(out, ShouldEqual, query.Applied)
			}
			v := query.ComputeView(entities, s)

			Convey("Then the view reflects every step", func() {
				So(names(v.Items), ShouldResemble, []string{"IIT Madras"})
				So(s.SortKey, ShouldEqual, query.SortNationalRank)
				So(s.Selection, ShouldResemble, []int{3})
			})
		})

		Convey("When an action is a silent no-op", func() {
			s.ToggleSelection(1)
			s.ToggleSelection(2)
			s.ToggleSelection(3)

			out1, err1 := query.Apply(entities, s, query.Action{Type: query.ActionSelect, ID: 4})
			out2, err2 := query.Apply(entities, s, query.Action{Type: query.ActionBound, Field: "rank", Edge: "max", Value: "x"})
			out3, err3 := query.Apply(entities, s, query.Action{Type: query.ActionCity, Value: "Chennai"})

			Convey("Then it is reported as ignored without error", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(err3, ShouldBeNil)
				So(out1, ShouldEqual, query.Ignored)
				So(out2, ShouldEqual, query.Ignored)
				So(out3, ShouldEqual, query.Ignored)
				So(s.Rank.Max, ShouldEqual, 500)
			})
		})

		Convey("When paging through actions", func() {
			_, _ = query.Apply(entities, s, query.Action{Type: query.ActionNext})
			So(s.Page, ShouldEqual, 2)
			_, _ = query.Apply(entities, s, query.Action{Type: query.ActionNext})
			So(s.Page, ShouldEqual, 2)
			_, _ = query.Apply(entities, s, query.Action{Type: query.ActionPrev})
			So(s.Page, ShouldEqual, 1)
			_, _ = query.Apply(entities, s, query.Action{Type: query.ActionPage, Page: 5})
			So(s.Page, ShouldEqual, 2)
			_, _ = query.Apply(entities, s, query.Action{Type: query.ActionReset})
			So(s.Page, ShouldEqual, 1)
		})

		Convey("When an action cannot be decoded", func() {
			before := s.Clone()
			_, errType := query.Apply(entities, s, query.Action{Type: "explode"})
			_, errKey := query.Apply(entities, s, query.Action{Type: query.ActionSort, Key: "name"})
			_, errField := query.Apply(entities, s, query.Action{Type: query.ActionBound, Field: "fees", Edge: "min", Value: "1"})
			_, errEdge := query.Apply(entities, s, query.Action{Type: query.ActionBound, Field: "rank", Edge: "mid", Value: "1"})
			_, errCat := query.Apply(entities, s, query.Action{Type: query.ActionCategory, Value: "Deemed"})

			Convey("Then a typed error is returned and the state is unchanged", func() {
				So(errors.Is(errType, query.ErrUnknownAction), ShouldBeTrue)
				So(errors.Is(errKey, query.ErrUnknownSortKey), ShouldBeTrue)
				So(errors.Is(errField, query.ErrUnknownField), ShouldBeTrue)
				So(errors.Is(errEdge, query.ErrUnknownEdge), ShouldBeTrue)
				So(errors.Is(errCat, model.ErrUnknownCategory), ShouldBeTrue)
				So(s, ShouldResemble, before)
			})
		})
	})
}

func TestParsers(t *testing.T) {
	Convey("Given textual enum values", t, func() {
		Convey("Then sort keys accept camel and snake case", func() {
			k, ok := query.ParseSortKey("placement_rate")
			So(ok, ShouldBeTrue)
			So(k, ShouldEqual, query.SortPlacementRate)
			k, ok = query.ParseSortKey("QualityScore")
			So(ok, ShouldBeTrue)
			So(k, ShouldEqual, query.SortQualityScore)
			_, ok = query.ParseSortKey("name")
			So(ok, ShouldBeFalse)
		})

		Convey("Then directions accept short and long forms", func() {
			d, ok := query.ParseDirection("ASC")
			So(ok, ShouldBeTrue)
			So(d, ShouldEqual, query.Ascending)
			d, ok = query.ParseDirection("descending")
			So(ok, ShouldBeTrue)
			So(d, ShouldEqual, query.Descending)
			_, ok = query.ParseDirection("up")
			So(ok, ShouldBeFalse)
		})
	})
}
