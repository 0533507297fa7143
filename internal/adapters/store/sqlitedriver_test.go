package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	store "github.com/okian/varsity/internal/adapters/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSQLiteDriver(t *testing.T) {
	Convey("Given a sqlite driver on a temp database", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "varsity.db")
		driver, err := store.NewSQLiteDriver(ctx, path)
		So(err, ShouldBeNil)
		defer func() { _ = driver.Close() }()

		Convey("When putting and getting a value", func() {
			So(driver.Put(ctx, "k1", "v1"), ShouldBeNil)

			Convey("Then the value round-trips", func() {
				v, err := driver.Get(ctx, "k1")
				So(err, ShouldBeNil)
				So(v, ShouldEqual, "v1")
			})
		})

		Convey("When overwriting a value", func() {
			So(driver.Put(ctx, "k1", "v1"), ShouldBeNil)
			So(driver.Put(ctx, "k1", "v2"), ShouldBeNil)

			Convey("Then the latest value wins", func() {
				v, err := driver.Get(ctx, "k1")
				So(err, ShouldBeNil)
				So(v, ShouldEqual, "v2")
			})
		})

		Convey("When getting a missing key", func() {
			_, err := driver.Get(ctx, "nope")

			Convey("Then ErrKeyNotFound is returned", func() {
				So(errors.Is(err, store.ErrKeyNotFound), ShouldBeTrue)
			})
		})

		Convey("When checking presence", func() {
			So(driver.Put(ctx, "here", "x"), ShouldBeNil)

			ok, err := driver.Exists(ctx, "here")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)

			ok, err = driver.Exists(ctx, "absent")
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("When listing keys", func() {
			So(driver.Put(ctx, "a", "1"), ShouldBeNil)
			So(driver.Put(ctx, "b", "2"), ShouldBeNil)

			keys, err := driver.Keys(ctx)
			So(err, ShouldBeNil)
			So(len(keys), ShouldEqual, 2)
		})
	})
}

func TestSQLiteDriverSurvivesReopen(t *testing.T) {
	Convey("Given a value written to a sqlite database", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "varsity.db")

		driver, err := store.NewSQLiteDriver(ctx, path)
		So(err, ShouldBeNil)
		So(driver.Put(ctx, "durable", "yes"), ShouldBeNil)
		So(driver.Close(), ShouldBeNil)

		Convey("When reopening the same file", func() {
			reopened, err := store.NewSQLiteDriver(ctx, path)
			So(err, ShouldBeNil)
			defer func() { _ = reopened.Close() }()

			Convey("Then the value survives", func() {
				v, err := reopened.Get(ctx, "durable")
				So(err, ShouldBeNil)
				So(v, ShouldEqual, "yes")
			})
		})
	})
}
