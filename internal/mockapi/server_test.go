package mockapi_test

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/alecappe-boss/OpenF1/internal/adapters/openf1"
	service "github.com/alecappe-boss/OpenF1/internal/app"
	"github.com/alecappe-boss/OpenF1/internal/domain/model"
	"github.com/alecappe-boss/OpenF1/internal/mockapi"
	"github.com/alecappe-boss/OpenF1/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// newStack spins up the fixture server and a service wired through the
// real HTTP client against it.
func newStack(t *testing.T) *service.Service {
	t.Helper()
	srv := httptest.NewServer(mockapi.NewServer().Router())
	t.Cleanup(srv.Close)

	client := openf1.New(openf1.WithBaseURL(srv.URL + "/v1"))
	return service.New(service.WithDataSource(client))
}

func TestFixtureResolution(t *testing.T) {
	Convey("Given the fixture stack", t, func() {
		svc := newStack(t)
		ctx := context.Background()

		Convey("When resolving the race finishing order", func() {
			rows, err := svc.FinishingOrder(ctx, 9158)

			Convey("Then the classification follows the latest positions", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 4)
				So(rows[0].DriverNumber, ShouldEqual, 1)
				So(rows[0].GapToLeader, ShouldEqual, "Leader")
				So(rows[1].DriverNumber, ShouldEqual, 55)
				So(rows[1].GapToLeader, ShouldEqual, "6.064")
				So(rows[2].DriverNumber, ShouldEqual, 16)
				So(rows[2].GapToLeader, ShouldEqual, "11.064")
			})

			Convey("Then the unrostered driver still classifies, gap degraded", func() {
				So(rows[3].DriverNumber, ShouldEqual, 81)
				So(rows[3].FullName, ShouldBeNil)
				So(rows[3].TeamName, ShouldBeNil)
				So(rows[3].GapToLeader, ShouldEqual, "N/A")
			})
		})

		Convey("When resolving the qualifying order", func() {
			rows, err := svc.FinishingOrder(ctx, 9159)

			Convey("Then lap ordering and the interval column drive the result", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
				So(rows[0].DriverNumber, ShouldEqual, 1)
				So(rows[0].GapToLeader, ShouldEqual, "Leader")
				So(rows[1].DriverNumber, ShouldEqual, 4)
				So(rows[1].Position, ShouldEqual, 2)
				So(rows[1].GapToLeader, ShouldEqual, "+0.089")
			})
		})

		Convey("When resolving the practice session without gap columns", func() {
			rows, err := svc.FinishingOrder(ctx, 9160)

			Convey("Then the single row is the leader", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].GapToLeader, ShouldEqual, "Leader")
			})
		})

		Convey("When resolving an unknown session", func() {
			rows, err := svc.FinishingOrder(ctx, 4242)

			Convey("Then the result is empty, not an error", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldBeEmpty)
			})
		})

		Convey("When listing sessions for 2023", func() {
			sessions := svc.SessionsByYear(ctx, 2023)

			Convey("Then all fixture sessions appear", func() {
				So(sessions, ShouldHaveLength, 3)
				So(sessions[0].SessionName, ShouldEqual, "Race")
			})
		})

		Convey("When listing the race roster", func() {
			drivers, err := svc.DriversBySession(ctx, 9158)

			Convey("Then it is distinct and sorted by number", func() {
				So(err, ShouldBeNil)
				So(drivers, ShouldHaveLength, 3)
				So(drivers[0].DriverNumber, ShouldEqual, 1)
				So(drivers[2].DriverNumber, ShouldEqual, 55)
			})
		})

		Convey("When fetching laps for the race winner", func() {
			laps := svc.LapsForDriver(ctx, 9158, 1)

			Convey("Then the stint includes the untimed out lap", func() {
				So(laps, ShouldHaveLength, 4)
				So(laps[0].LapDuration, ShouldBeNil)
			})
		})

		Convey("When building the track trace", func() {
			points := svc.TrackTrace(ctx, 9158)

			Convey("Then filler samples are filtered out", func() {
				So(points, ShouldHaveLength, 3)
				for _, p := range points {
					So(p, ShouldNotResemble, model.Point{})
				}
			})
		})
	})
}
