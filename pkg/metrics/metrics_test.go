package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When creating a manager with defaults", func() {
			m := NewManager(WithPrometheusRegistry(reg))

			Convey("Then it should be configured with the openf1 namespace", func() {
				So(m, ShouldNotBeNil)
				So(m.namespace, ShouldEqual, "openf1")
				So(m.subsystem, ShouldEqual, "console")
			})
		})

		Convey("When creating a manager with custom options", func() {
			m := NewManager(
				WithPrometheusRegistry(reg),
				WithNamespace("custom"),
				WithSubsystem("tool"),
				WithHistogramBuckets([]float64{0.1, 1, 10}),
			)

			Convey("Then the options should be applied", func() {
				So(m.namespace, ShouldEqual, "custom")
				So(m.subsystem, ShouldEqual, "tool")
				So(m.histogramBuckets, ShouldResemble, []float64{0.1, 1, 10})
			})
		})

		Convey("When empty option values are supplied", func() {
			m := NewManager(
				WithPrometheusRegistry(reg),
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
			)

			Convey("Then defaults should be kept", func() {
				So(m.namespace, ShouldEqual, "openf1")
				So(m.subsystem, ShouldEqual, "console")
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording API activity", func() {
			RecordAPIRequest("position", 0.2)
			RecordAPIError("position")
			RecordEmptyFeed("drivers")

			Convey("Then the counters should be gathered without error", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When recording a resolution", func() {
			RecordResolution(20)
			RecordResolution(0)
			RecordUnmatchedRoster()
			RecordExport("csv")

			Convey("Then gathering should still succeed", func() {
				_, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestHandler(t *testing.T) {
	Convey("Given the metrics handler", t, func() {
		RecordAPIRequest("sessions", 0.05)

		Convey("When scraping it", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/metrics", nil)
			Handler().ServeHTTP(rec, req)

			Convey("Then it should expose the api request counter", func() {
				So(rec.Code, ShouldEqual, 200)
				So(rec.Body.String(), ShouldContainSubstring, "openf1_console_api_requests_total")
			})
		})
	})
}
