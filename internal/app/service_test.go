package service_test

import (
	"context"
	"errors"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	service "github.com/alecappe-boss/OpenF1/internal/app"
	"github.com/alecappe-boss/OpenF1/internal/domain/model"
	"github.com/alecappe-boss/OpenF1/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

// fakeSource is a canned DataSource for service tests.
type fakeSource struct {
	sessions  []model.Session
	roster    []model.Driver
	rosterErr error
	events    []model.PositionEvent
	schema    model.Schema
	eventsErr error
	laps      []model.Lap
	points    []model.Point
}

func (f *fakeSource) Sessions(ctx context.Context, year int) []model.Session { return f.sessions }

func (f *fakeSource) Session(ctx context.Context, sessionKey int) (model.Session, bool) {
	if len(f.sessions) == 0 {
		return model.Session{}, false
	}
	return f.sessions[0], true
}

func (f *fakeSource) Roster(ctx context.Context, sessionKey int) ([]model.Driver, error) {
	return f.roster, f.rosterErr
}

func (f *fakeSource) Positions(ctx context.Context, sessionKey int) ([]model.PositionEvent, model.Schema, error) {
	return f.events, f.schema, f.eventsErr
}

func (f *fakeSource) Laps(ctx context.Context, sessionKey, driverNumber int) []model.Lap {
	return f.laps
}

func (f *fakeSource) Locations(ctx context.Context, sessionKey, driverNumber int) []model.Point {
	return f.points
}

func TestFinishingOrder(t *testing.T) {
	Convey("Given a session with positions and a roster", t, func() {
		source := &fakeSource{
			schema: model.Schema{Order: model.OrderByDate, Gap: model.GapColumn},
			roster: []model.Driver{
				{DriverNumber: 1, FullName: "Max Verstappen", TeamName: "Red Bull Racing"},
			},
			events: []model.PositionEvent{
				{DriverNumber: 1, Position: intp(2), Date: strp("2024-05-26T14:00:00.000Z")},
				{DriverNumber: 1, Position: intp(1), Date: strp("2024-05-26T16:00:00.000Z")},
				{DriverNumber: 63, Position: intp(2), Date: strp("2024-05-26T16:00:00.000Z"), Gap: strp("+7.6")},
			},
		}
		svc := service.New(service.WithDataSource(source), service.WithLogger(logger.Get()))

		Convey("When resolving the finishing order", func() {
			rows, err := svc.FinishingOrder(context.Background(), 9158)

			Convey("Then the classification reflects the latest positions", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
				So(rows[0].Position, ShouldEqual, 1)
				So(rows[0].DriverNumber, ShouldEqual, 1)
				So(*rows[0].FullName, ShouldEqual, "Max Verstappen")
				So(rows[0].GapToLeader, ShouldEqual, "Leader")
			})

			Convey("Then the unrostered driver keeps its row with nil identity", func() {
				So(rows[1].DriverNumber, ShouldEqual, 63)
				So(rows[1].FullName, ShouldBeNil)
				So(rows[1].TeamName, ShouldBeNil)
				So(rows[1].GapToLeader, ShouldEqual, "+7.6")
			})
		})
	})

	Convey("Given an upstream failure that degraded to an empty feed", t, func() {
		source := &fakeSource{}
		svc := service.New(service.WithDataSource(source), service.WithLogger(logger.Get()))

		Convey("When resolving", func() {
			rows, err := svc.FinishingOrder(context.Background(), 9158)

			Convey("Then the result is empty, not an error", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a feed violating the driver-number contract", t, func() {
		source := &fakeSource{eventsErr: errors.New("record missing driver_number: position record 3")}
		svc := service.New(service.WithDataSource(source), service.WithLogger(logger.Get()))

		Convey("When resolving", func() {
			rows, err := svc.FinishingOrder(context.Background(), 9158)

			Convey("Then the violation surfaces as an error", func() {
				So(err, ShouldNotBeNil)
				So(rows, ShouldBeEmpty)
			})
		})
	})
}

func TestDriversBySession(t *testing.T) {
	Convey("Given a roster with duplicates and unsorted numbers", t, func() {
		source := &fakeSource{
			roster: []model.Driver{
				{DriverNumber: 44, FullName: "Lewis Hamilton", TeamName: "Mercedes"},
				{DriverNumber: 4, FullName: "Lando Norris", TeamName: "McLaren"},
				{DriverNumber: 44, FullName: "Lewis Hamilton", TeamName: "Mercedes"},
			},
		}
		svc := service.New(service.WithDataSource(source), service.WithLogger(logger.Get()))

		Convey("When listing drivers", func() {
			drivers, err := svc.DriversBySession(context.Background(), 9158)

			Convey("Then duplicates collapse and output sorts by number", func() {
				So(err, ShouldBeNil)
				So(drivers, ShouldHaveLength, 2)
				So(drivers[0].DriverNumber, ShouldEqual, 4)
				So(drivers[1].DriverNumber, ShouldEqual, 44)
			})
		})
	})
}

func TestTrackTrace(t *testing.T) {
	Convey("Given a car location feed with filler samples", t, func() {
		source := &fakeSource{
			roster: []model.Driver{{DriverNumber: 16}},
			points: []model.Point{
				{X: 0, Y: 0},
				{X: 120.5, Y: -88.0},
				{X: 0, Y: 0},
				{X: 121.0, Y: -90.2},
			},
		}
		svc := service.New(service.WithDataSource(source), service.WithLogger(logger.Get()))

		Convey("When building the track trace", func() {
			points := svc.TrackTrace(context.Background(), 9158)

			Convey("Then zero-zero samples are gone", func() {
				So(points, ShouldHaveLength, 2)
			})
		})
	})

	Convey("Given a session with no rostered drivers", t, func() {
		svc := service.New(service.WithDataSource(&fakeSource{}), service.WithLogger(logger.Get()))

		Convey("When building the track trace", func() {
			points := svc.TrackTrace(context.Background(), 9158)

			Convey("Then there is nothing to draw", func() {
				So(points, ShouldBeEmpty)
			})
		})
	})
}

func TestAnyDriverNumber(t *testing.T) {
	Convey("Given a populated roster", t, func() {
		source := &fakeSource{roster: []model.Driver{{DriverNumber: 55}, {DriverNumber: 16}}}
		svc := service.New(service.WithDataSource(source), service.WithLogger(logger.Get()))

		Convey("When asking for any driver number", func() {
			number, ok := svc.AnyDriverNumber(context.Background(), 9158)

			Convey("Then the first roster entry is returned", func() {
				So(ok, ShouldBeTrue)
				So(number, ShouldEqual, 55)
			})
		})
	})
}
