package discover_test

import (
	"testing"

	discover "github.com/okian/varsity/internal/domain/discover"
	"github.com/okian/varsity/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func roster() []model.Athlete {
	return []model.Athlete{
		{
			ID: "a1", Name: "Marcus Reed", Position: "QB", School: "Lincoln High",
			GradYear: 2027, ReliabilityScore: 92,
			Stats:    map[string]model.StatValue{"forty_yard": {Value: 4.72, Unit: "s"}},
			Workouts: []model.Workout{{ID: "s1", Verified: true}},
		},
		{
			ID: "a2", Name: "Devon Carter", Position: "QB", School: "Roosevelt Prep",
			GradYear: 2026, ReliabilityScore: 85,
			Stats:    map[string]model.StatValue{"forty_yard": {Value: 4.81, Unit: "s"}},
			Workouts: []model.Workout{{ID: "s2", Verified: false}},
		},
		{
			ID: "a3", Name: "Jalen Brooks", Position: "WR", School: "Lincoln High",
			GradYear: 2027, ReliabilityScore: 88,
			Stats:    map[string]model.StatValue{"forty_yard": {Value: 4.48, Unit: "s"}},
			Workouts: []model.Workout{{ID: "s3", Verified: true}},
		},
	}
}

func seedOnly(a model.Athlete) []model.Workout { return a.Workouts }

func TestFilter(t *testing.T) {
	Convey("Given the athlete roster", t, func() {
		athletes := roster()

		Convey("When filtering by position and minimum score", func() {
			got := discover.Filter(athletes, seedOnly, discover.Query{Position: "QB", MinScore: 90})

			Convey("Then only the score-92 QB survives", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].ID, ShouldEqual, "a1")
			})
		})

		Convey("When filtering by free text", func() {
			Convey("Then name substrings match case-insensitively", func() {
				got := discover.Filter(athletes, seedOnly, discover.Query{Text: "marcus"})
				So(got, ShouldHaveLength, 1)
				So(got[0].ID, ShouldEqual, "a1")
			})

			Convey("Then school substrings match too", func() {
				got := discover.Filter(athletes, seedOnly, discover.Query{Text: "lincoln"})
				So(got, ShouldHaveLength, 2)
			})

			Convey("Then position text matches as a third field", func() {
				got := discover.Filter(athletes, seedOnly, discover.Query{Text: "wr"})
				So(got, ShouldHaveLength, 1)
				So(got[0].ID, ShouldEqual, "a3")
			})
		})

		Convey("When filtering by graduation year", func() {
			got := discover.Filter(athletes, seedOnly, discover.Query{GradYear: 2026})
			So(got, ShouldHaveLength, 1)
			So(got[0].ID, ShouldEqual, "a2")
		})

		Convey("When filtering verified-only", func() {
			got := discover.Filter(athletes, seedOnly, discover.Query{VerifiedOnly: true})

			Convey("Then athletes without a verified workout drop out", func() {
				So(got, ShouldHaveLength, 2)
				for _, a := range got {
					So(a.ID, ShouldNotEqual, "a2")
				}
			})
		})

		Convey("When combining predicates", func() {
			got := discover.Filter(athletes, seedOnly, discover.Query{Text: "lincoln", Position: "QB"})

			Convey("Then filtering is conjunctive across predicates", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].ID, ShouldEqual, "a1")
			})
		})

		Convey("When the query is empty", func() {
			got := discover.Filter(athletes, seedOnly, discover.Query{})
			So(got, ShouldHaveLength, 3)
		})
	})
}

func TestRank(t *testing.T) {
	Convey("Given the athlete roster", t, func() {
		athletes := roster()

		Convey("When ranking by reliability", func() {
			got := discover.Rank(athletes, discover.SortSpec{Key: discover.ByReliability})

			Convey("Then order is score descending", func() {
				So(got[0].ID, ShouldEqual, "a1")
				So(got[1].ID, ShouldEqual, "a3")
				So(got[2].ID, ShouldEqual, "a2")
			})

			Convey("Then the input slice is left untouched", func() {
				So(athletes[0].ID, ShouldEqual, "a1")
				So(athletes[2].ID, ShouldEqual, "a3")
			})
		})

		Convey("When ranking by an elapsed-time stat ascending", func() {
			got := discover.Rank(athletes, discover.SortSpec{Key: discover.ByStat, Stat: "forty_yard"})

			Convey("Then the fastest time ranks first", func() {
				So(got[0].ID, ShouldEqual, "a3")
				So(got[2].ID, ShouldEqual, "a2")
			})
		})

		Convey("When ranking by a stat descending", func() {
			got := discover.Rank(athletes, discover.SortSpec{Key: discover.ByStat, Stat: "forty_yard", Descending: true})
			So(got[0].ID, ShouldEqual, "a2")
		})

		Convey("When ranking by a stat some athletes lack", func() {
			extra := append(roster(), model.Athlete{ID: "a9", Name: "Aaron Blank", ReliabilityScore: 99})
			got := discover.Rank(extra, discover.SortSpec{Key: discover.ByStat, Stat: "forty_yard"})

			Convey("Then athletes missing the stat sink to the bottom", func() {
				So(got[len(got)-1].ID, ShouldEqual, "a9")
			})
		})

		Convey("When ranking by name", func() {
			got := discover.Rank(athletes, discover.SortSpec{Key: discover.ByName})
			So(got[0].Name, ShouldEqual, "Devon Carter")
			So(got[2].Name, ShouldEqual, "Marcus Reed")
		})
	})
}
