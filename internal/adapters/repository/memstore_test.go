package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/collegerank/internal/adapters/repository"
	"github.com/okian/collegerank/internal/adapters/seed"
	"github.com/okian/collegerank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore(t *testing.T) {
	Convey("Given a store over the seed catalog", t, func() {
		ctx := context.Background()
		store, err := repository.NewMemStore(ctx, seed.Default())
		So(err, ShouldBeNil)

		Convey("When counting", func() {
			So(store.Count(ctx), ShouldEqual, 12)
		})

		Convey("When getting a known college", func() {
			c, err := store.Get(ctx, 8)

			Convey("Then it is returned", func() {
				So(err, ShouldBeNil)
				So(c.Name, ShouldEqual, "NIT Trichy")
			})
		})

		Convey("When getting an unknown college", func() {
			_, err := store.Get(ctx, 99)

			Convey("Then ErrNotFound is returned", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When asking for the top five", func() {
			top, err := store.TopN(ctx, 5)

			Convey("Then the landing board is returned", func() {
				So(err, ShouldBeNil)
				So(top, ShouldHaveLength, 5)
				want := []string{"IIT Bombay", "IIT Delhi", "IIT Madras", "BITS Pilani", "IIT Kanpur"}
				for i, e := range top {
					So(e.Rank, ShouldEqual, i+1)
					So(e.Name, ShouldEqual, want[i])
				}
				So(top[0].Score, ShouldEqual, 98.5)
				So(top[0].Location(), ShouldEqual, "Mumbai, Maharashtra")
			})
		})

		Convey("When asking for more than the catalog holds", func() {
			top, err := store.TopN(ctx, 100)
			So(err, ShouldBeNil)
			So(top, ShouldHaveLength, 12)
		})

		Convey("When asking for a non-positive limit", func() {
			_, err := store.TopN(ctx, 0)
			So(errors.Is(err, repository.ErrInvalidLimit), ShouldBeTrue)
		})

		Convey("When the caller modifies returned slices", func() {
			all := store.All(ctx)
			all[0].Name = "changed"
			top, _ := store.TopN(ctx, 1)
			top[0].Name = "changed"

			Convey("Then the store is unaffected", func() {
				c, _ := store.Get(ctx, 1)
				So(c.Name, ShouldEqual, "IIT Bombay")
				again, _ := store.TopN(ctx, 1)
				So(again[0].Name, ShouldEqual, "IIT Bombay")
			})
		})
	})

	Convey("Given colleges sharing an overall score", t, func() {
		ctx := context.Background()
		a := seed.Default()[0]
		b := seed.Default()[1]
		a.ID, b.ID = 20, 10
		b.OverallScore = a.OverallScore
		store, err := repository.NewMemStore(ctx, []model.College{a, b}, repository.WithMetrics(false))
		So(err, ShouldBeNil)

		Convey("Then the lower id ranks first", func() {
			top, _ := store.TopN(ctx, 2)
			So(top[0].ID, ShouldEqual, 10)
			So(top[1].ID, ShouldEqual, 20)
		})
	})

	Convey("Given an invalid catalog", t, func() {
		ctx := context.Background()

		Convey("When an id repeats", func() {
			colleges := seed.Default()
			colleges[1].ID = colleges[0].ID
			_, err := repository.NewMemStore(ctx, colleges)
			So(errors.Is(err, repository.ErrDuplicateID), ShouldBeTrue)
		})

		Convey("When a record is out of range", func() {
			colleges := seed.Default()
			colleges[3].PlacementRate = 140
			_, err := repository.NewMemStore(ctx, colleges)
			So(errors.Is(err, repository.ErrInvalidRecord), ShouldBeTrue)
		})
	})
}
