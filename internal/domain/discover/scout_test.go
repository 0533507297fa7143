package discover_test

import (
	"context"
	"testing"

	store "github.com/okian/varsity/internal/adapters/store"
	discover "github.com/okian/varsity/internal/domain/discover"
	"github.com/okian/varsity/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWatchlist(t *testing.T) {
	Convey("Given a recruiter with a seed default watchlist", t, func() {
		ctx := context.Background()
		st := store.New(store.NewMemDriver())
		recruiter := model.Recruiter{ID: "r1", Name: "Sam Whitaker", DefaultWatchlist: []string{"a1", "a3"}}
		scout := discover.NewScout(st, recruiter)

		Convey("When the watchlist was never stored", func() {
			Convey("Then the seed default applies", func() {
				So(scout.Watchlist(ctx), ShouldResemble, []string{"a1", "a3"})
				So(scout.Watching(ctx, "a1"), ShouldBeTrue)
			})
		})

		Convey("When toggling an unwatched athlete", func() {
			watched := scout.Toggle(ctx, "a2")

			Convey("Then it is added and persisted", func() {
				So(watched, ShouldBeTrue)
				So(scout.Watchlist(ctx), ShouldContain, "a2")
			})
		})

		Convey("When toggling a watched athlete", func() {
			watched := scout.Toggle(ctx, "a1")

			Convey("Then it is removed", func() {
				So(watched, ShouldBeFalse)
				So(scout.Watchlist(ctx), ShouldNotContain, "a1")
			})
		})

		Convey("When toggling twice", func() {
			_ = scout.Toggle(ctx, "a2")
			_ = scout.Toggle(ctx, "a2")

			Convey("Then membership is back where it started", func() {
				So(scout.Watching(ctx, "a2"), ShouldBeFalse)
			})
		})

		Convey("When the watchlist is emptied explicitly", func() {
			_ = scout.Toggle(ctx, "a1")
			_ = scout.Toggle(ctx, "a3")

			Convey("Then it stays empty rather than re-applying defaults", func() {
				So(scout.Watchlist(ctx), ShouldBeEmpty)
			})

			Convey("Then a different recruiter still gets their own default", func() {
				other := discover.NewScout(st, model.Recruiter{ID: "r2", DefaultWatchlist: []string{"a2"}})
				So(other.Watchlist(ctx), ShouldResemble, []string{"a2"})
			})
		})
	})
}

func TestNotes(t *testing.T) {
	Convey("Given a recruiter's scout state", t, func() {
		ctx := context.Background()
		st := store.New(store.NewMemDriver())
		scout := discover.NewScout(st, model.Recruiter{ID: "r1"})

		Convey("When no note exists", func() {
			So(scout.Note(ctx, "a1"), ShouldEqual, "")
		})

		Convey("When setting a note", func() {
			scout.SetNote(ctx, "a1", "Quick release, needs footwork")

			Convey("Then it round-trips", func() {
				So(scout.Note(ctx, "a1"), ShouldEqual, "Quick release, needs footwork")
			})

			Convey("Then it is scoped to the recruiter", func() {
				other := discover.NewScout(st, model.Recruiter{ID: "r2"})
				So(other.Note(ctx, "a1"), ShouldEqual, "")
			})
		})

		Convey("When overwriting a note", func() {
			scout.SetNote(ctx, "a1", "first")
			scout.SetNote(ctx, "a1", "second")
			So(scout.Note(ctx, "a1"), ShouldEqual, "second")
		})
	})
}
