package lapstats_test

import (
	"testing"

	"github.com/alecappe-boss/OpenF1/internal/domain/lapstats"
	"github.com/alecappe-boss/OpenF1/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func durp(v float64) *float64 { return &v }

func TestDescribe(t *testing.T) {
	Convey("Given a stint with timed and untimed laps", t, func() {
		laps := []model.Lap{
			{LapNumber: 1, LapDuration: nil}, // out lap
			{LapNumber: 2, LapDuration: durp(92.0)},
			{LapNumber: 3, LapDuration: durp(90.0)},
			{LapNumber: 4, LapDuration: durp(91.0)},
			{LapNumber: 5, LapDuration: durp(93.0)},
			{LapNumber: 6, LapDuration: durp(94.0)},
		}

		Convey("When describing it", func() {
			s, ok := lapstats.Describe(laps)

			Convey("Then untimed laps are excluded from the count", func() {
				So(ok, ShouldBeTrue)
				So(s.Count, ShouldEqual, 5)
			})

			Convey("Then the central moments are computed over timed laps", func() {
				So(s.Mean, ShouldAlmostEqual, 92.0)
				So(s.Min, ShouldEqual, 90.0)
				So(s.Max, ShouldEqual, 94.0)
				So(s.Median, ShouldEqual, 92.0)
				So(s.P25, ShouldEqual, 91.0)
				So(s.P75, ShouldEqual, 93.0)
				So(s.Std, ShouldAlmostEqual, 1.5811, 0.0001)
			})
		})
	})

	Convey("Given a single timed lap", t, func() {
		laps := []model.Lap{{LapNumber: 1, LapDuration: durp(88.5)}}

		Convey("When describing it", func() {
			s, ok := lapstats.Describe(laps)

			Convey("Then every statistic collapses to that lap", func() {
				So(ok, ShouldBeTrue)
				So(s.Count, ShouldEqual, 1)
				So(s.Mean, ShouldEqual, 88.5)
				So(s.Std, ShouldEqual, 0)
				So(s.Min, ShouldEqual, 88.5)
				So(s.Max, ShouldEqual, 88.5)
				So(s.Median, ShouldEqual, 88.5)
			})
		})
	})

	Convey("Given no timed laps at all", t, func() {
		laps := []model.Lap{
			{LapNumber: 1},
			{LapNumber: 2},
		}

		Convey("When describing", func() {
			_, ok := lapstats.Describe(laps)

			Convey("Then it reports no data", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}
