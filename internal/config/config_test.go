package config_test

import (
	"context"
	"testing"

	"github.com/okian/varsity/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a fresh Config", t, func() {
		cfg := config.New(context.Background())

		Convey("Then defaults are sensible", func() {
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.StoreDriver, ShouldEqual, config.StoreDriverMemory)
			So(cfg.StoreNamespace, ShouldEqual, "varsity")
			So(cfg.MaxRosterLimit, ShouldEqual, 100)
			So(cfg.ActivityFeedSize, ShouldEqual, 50)
		})

		Convey("Then the default retention weights are valid", func() {
			So(cfg.RetentionWeights.Valid(), ShouldBeTrue)
		})
	})
}
