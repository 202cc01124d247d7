package profile_test

import (
	"testing"

	"github.com/okian/collegerank/internal/adapters/seed"
	"github.com/okian/collegerank/internal/domain/model"
	"github.com/okian/collegerank/internal/domain/profile"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQualityLevel(t *testing.T) {
	Convey("Given accreditation scores", t, func() {
		So(profile.QualityLevel(4.0), ShouldEqual, profile.LevelExcellent)
		So(profile.QualityLevel(3.7), ShouldEqual, profile.LevelExcellent)
		So(profile.QualityLevel(3.5), ShouldEqual, profile.LevelVeryGood)
		So(profile.QualityLevel(3.0), ShouldEqual, profile.LevelGood)
		So(profile.QualityLevel(2.9), ShouldEqual, profile.LevelAverage)
	})
}

func TestReputationScore(t *testing.T) {
	Convey("Given a top ranked, highly accredited college", t, func() {
		So(profile.ReputationScore(3.9, 1), ShouldEqual, 5.9)
		So(profile.ReputationScore(3.8, 1), ShouldEqual, 5.8)
	})
}

func TestDerive(t *testing.T) {
	Convey("Given the profile of IIT Madras", t, func() {
		madras := seed.Default()[2]
		p := profile.For(madras)
		d := profile.Derive(p)

		Convey("Then the header comes from the catalog record", func() {
			So(d.CollegeID, ShouldEqual, 3)
			So(d.Name, ShouldEqual, "IIT Madras")
			So(d.Location, ShouldEqual, "Chennai, Tamil Nadu")
			So(d.Category, ShouldEqual, model.Government)
			So(d.Ranking.Rank, ShouldEqual, 1)
			So(d.Accreditation.Score, ShouldEqual, 3.8)
			So(d.Accreditation.Grade, ShouldEqual, "A++")
		})

		Convey("Then the composite indices are computed", func() {
			So(d.AcademicIndex, ShouldEqual, 3.9)
			So(d.CareerScore, ShouldEqual, 3.87)
			So(d.ReputationScore, ShouldEqual, 5.8)
			So(d.AcademicLevel, ShouldEqual, profile.LevelExcellent)
			So(d.InfrastructureLevel, ShouldEqual, profile.LevelExcellent)
		})

		Convey("When academic and campus scores diverge from accreditation", func() {
			p.Accreditation.Score = 4.0
			p.Accreditation.Criteria[0].Score = 3.0
			p.Accreditation.Criteria[2].Score = 3.0
			p.Accreditation.Criteria[4].Score = 3.3
			p.Infrastructure.Score = 2.5
			d := profile.Derive(p)

			Convey("Then each level grades its own score", func() {
				So(d.AcademicIndex, ShouldEqual, 3.1)
				So(d.AcademicLevel, ShouldEqual, profile.LevelGood)
				So(d.InfrastructureLevel, ShouldEqual, profile.LevelAverage)
			})
		})

		Convey("Then the strongest criterion is flagged", func() {
			So(profile.Strongest(d), ShouldResemble, []string{"Research & Innovation"})
			So(d.Criteria, ShouldHaveLength, 6)
			So(d.Criteria[2].Percentage, ShouldEqual, 100.0)
			So(d.Criteria[0].Percentage, ShouldEqual, 95.0)
		})

		Convey("Then cutoffs carry demand and bar width", func() {
			So(d.CutoffViews, ShouldHaveLength, 4)
			So(d.CutoffViews[0].HighDemand, ShouldBeTrue)
			So(d.CutoffViews[1].HighDemand, ShouldBeTrue)
			So(d.CutoffViews[2].HighDemand, ShouldBeFalse)
			So(d.CutoffViews[0].BarWidth, ShouldEqual, 11.2)
			So(d.CutoffViews[3].BarWidth, ShouldEqual, 100.0)
		})
	})

	Convey("Given a profile with an incomplete breakdown", t, func() {
		p := model.Profile{Accreditation: model.Accreditation{Criteria: []model.Criterion{{Name: "x", Score: 3}}}}
		d := profile.Derive(p)

		Convey("Then the indices are zero and nothing panics", func() {
			So(d.AcademicIndex, ShouldEqual, 0)
			So(d.CareerScore, ShouldEqual, 0)
			So(d.CutoffViews, ShouldBeEmpty)
		})
	})

	Convey("Given two profiles built from the template", t, func() {
		a := profile.For(seed.Default()[0])
		b := profile.For(seed.Default()[1])
		a.Infrastructure.Facilities["sports"] = "changed"
		a.Accreditation.Criteria[0].Score = 0

		Convey("Then they share no state", func() {
			So(b.Infrastructure.Facilities["sports"], ShouldEqual, "Advanced")
			So(b.Accreditation.Criteria[0].Score, ShouldEqual, 3.8)
		})
	})
}
