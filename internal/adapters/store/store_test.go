package store_test

import (
	"context"
	"testing"

	store "github.com/okian/varsity/internal/adapters/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStoreRoundTrip(t *testing.T) {
	Convey("Given a store over an in-memory driver", t, func() {
		ctx := context.Background()
		st := store.New(store.NewMemDriver())

		Convey("When setting and getting a scalar", func() {
			store.Set(ctx, st, "k1", 42)

			Convey("Then the round-trip returns the value", func() {
				So(store.Get(ctx, st, "k1", 0), ShouldEqual, 42)
			})
		})

		Convey("When setting and getting a slice", func() {
			store.Set(ctx, st, "list", []string{"a", "b"})

			Convey("Then the round-trip returns the value", func() {
				got := store.Get(ctx, st, "list", []string(nil))
				So(got, ShouldResemble, []string{"a", "b"})
			})
		})

		Convey("When setting and getting a map", func() {
			store.Set(ctx, st, "m", map[string]bool{"x": true})

			Convey("Then the round-trip returns the value", func() {
				got := store.Get(ctx, st, "m", map[string]bool(nil))
				So(got["x"], ShouldBeTrue)
			})
		})

		Convey("When getting an unknown key", func() {
			Convey("Then the fallback is returned unmodified", func() {
				So(store.Get(ctx, st, "missing", 7), ShouldEqual, 7)
				So(store.Get(ctx, st, "missing", "default"), ShouldEqual, "default")
			})
		})
	})
}

func TestStoreCorruptionTolerance(t *testing.T) {
	Convey("Given a store whose underlying value is corrupt", t, func() {
		ctx := context.Background()
		driver := store.NewMemDriver()
		st := store.New(driver, store.WithNamespace("ns"))

		// Write garbage through the raw driver, bypassing the codec.
		So(driver.Put(ctx, "ns:broken", "{not json"), ShouldBeNil)

		Convey("When reading the corrupt key", func() {
			got := store.Get(ctx, st, "broken", 99)

			Convey("Then the fallback is returned and no error surfaces", func() {
				So(got, ShouldEqual, 99)
			})
		})
	})
}

func TestStoreNeverRaises(t *testing.T) {
	Convey("Given a store over a closed driver", t, func() {
		ctx := context.Background()
		driver := store.NewMemDriver()
		st := store.New(driver)
		So(driver.Close(), ShouldBeNil)

		Convey("When getting", func() {
			Convey("Then the fallback is returned", func() {
				So(store.Get(ctx, st, "k", "fb"), ShouldEqual, "fb")
			})
		})

		Convey("When setting", func() {
			Convey("Then the failure is swallowed", func() {
				So(func() { store.Set(ctx, st, "k", "v") }, ShouldNotPanic)
			})
		})

		Convey("When checking presence", func() {
			Convey("Then the key reads as never stored", func() {
				So(store.Exists(ctx, st, "k"), ShouldBeFalse)
			})
		})
	})
}

func TestStoreExists(t *testing.T) {
	Convey("Given a fresh store", t, func() {
		ctx := context.Background()
		st := store.New(store.NewMemDriver())

		Convey("When no value was ever stored", func() {
			Convey("Then Exists is false", func() {
				So(store.Exists(ctx, st, "watchlist_r1"), ShouldBeFalse)
			})
		})

		Convey("When an empty collection is explicitly stored", func() {
			store.Set(ctx, st, "watchlist_r1", []string{})

			Convey("Then Exists is true even though Get would look fresh", func() {
				So(store.Exists(ctx, st, "watchlist_r1"), ShouldBeTrue)
				So(store.Get(ctx, st, "watchlist_r1", []string(nil)), ShouldBeEmpty)
			})
		})
	})
}

func TestStoreNamespacing(t *testing.T) {
	Convey("Given two stores with different namespaces over one driver", t, func() {
		ctx := context.Background()
		driver := store.NewMemDriver()
		a := store.New(driver, store.WithNamespace("a"))
		b := store.New(driver, store.WithNamespace("b"))

		Convey("When writing under one namespace", func() {
			store.Set(ctx, a, "k", "va")

			Convey("Then the other namespace does not see it", func() {
				So(store.Get(ctx, b, "k", ""), ShouldEqual, "")
				So(store.Get(ctx, a, "k", ""), ShouldEqual, "va")
			})
		})
	})
}

func TestKeyComposition(t *testing.T) {
	Convey("Given the scope key helper", t, func() {
		Convey("Then keys compose as purpose_scopeId", func() {
			So(store.Key("settings", "trainer"), ShouldEqual, "settings_trainer")
			So(store.Key("logged_workouts", "a1"), ShouldEqual, "logged_workouts_a1")
			So(store.Key("review", "t1"), ShouldEqual, "review_t1")
		})
	})
}
