// Package service provides the core business service behind the console
// menu: session and roster views, lap analysis inputs, and the finishing
// order resolution.
package service

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/alecappe-boss/OpenF1/internal/domain/model"
	"github.com/alecappe-boss/OpenF1/internal/domain/resolve"
	"github.com/alecappe-boss/OpenF1/pkg/logger"
	"github.com/alecappe-boss/OpenF1/pkg/metrics"
)

// DataSource is the upstream feed contract. Projection methods degrade to
// empty slices on upstream failure; only a feed that violates the
// driver-number contract produces an error.
type DataSource interface {
	Sessions(ctx context.Context, year int) []model.Session
	Session(ctx context.Context, sessionKey int) (model.Session, bool)
	Roster(ctx context.Context, sessionKey int) ([]model.Driver, error)
	Positions(ctx context.Context, sessionKey int) ([]model.PositionEvent, model.Schema, error)
	Laps(ctx context.Context, sessionKey, driverNumber int) []model.Lap
	Locations(ctx context.Context, sessionKey, driverNumber int) []model.Point
}

// Service implements the console views over a DataSource.
type Service struct {
	source DataSource
	log    logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataSource sets the upstream feed.
func WithDataSource(source DataSource) Option {
	return func(s *Service) {
		if source != nil {
			s.source = source
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a new Service.
func New(opts ...Option) *Service {
	s := &Service{}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get()
	}

	return s
}

// SessionsByYear lists the sessions held in a year.
func (s *Service) SessionsByYear(ctx context.Context, year int) []model.Session {
	return s.source.Sessions(ctx, year)
}

// SessionByKey looks up one session.
func (s *Service) SessionByKey(ctx context.Context, sessionKey int) (model.Session, bool) {
	return s.source.Session(ctx, sessionKey)
}

// DriversBySession returns the roster with duplicate records collapsed,
// sorted by driver number.
func (s *Service) DriversBySession(ctx context.Context, sessionKey int) ([]model.Driver, error) {
	roster, err := s.source.Roster(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	seen := make(map[model.Driver]struct{}, len(roster))
	distinct := make([]model.Driver, 0, len(roster))
	for _, d := range roster {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		distinct = append(distinct, d)
	}

	sort.SliceStable(distinct, func(i, j int) bool {
		return distinct[i].DriverNumber < distinct[j].DriverNumber
	})
	return distinct, nil
}

// AnyDriverNumber returns the first rostered driver number of a session,
// used to pick a car for the track map.
func (s *Service) AnyDriverNumber(ctx context.Context, sessionKey int) (int, bool) {
	roster, err := s.source.Roster(ctx, sessionKey)
	if err != nil || len(roster) == 0 {
		return 0, false
	}
	return roster[0].DriverNumber, true
}

// LapsForDriver returns one driver's laps in a session.
func (s *Service) LapsForDriver(ctx context.Context, sessionKey, driverNumber int) []model.Lap {
	return s.source.Laps(ctx, sessionKey, driverNumber)
}

// TrackTrace returns the location trace for any car in the session, with
// the (0,0) filler samples the feed emits before live data removed.
func (s *Service) TrackTrace(ctx context.Context, sessionKey int) []model.Point {
	number, ok := s.AnyDriverNumber(ctx, sessionKey)
	if !ok {
		return nil
	}

	points := s.source.Locations(ctx, sessionKey, number)
	trace := make([]model.Point, 0, len(points))
	for _, p := range points {
		if p.X != 0 || p.Y != 0 {
			trace = append(trace, p)
		}
	}
	return trace
}

// FinishingOrder resolves the final classification of a session: positions
// and roster are fetched in parallel, the position stream is reduced to the
// latest event per driver, and the classification is assembled with the
// gap-to-leader field. An empty result means "no data", not a failure.
func (s *Service) FinishingOrder(ctx context.Context, sessionKey int) ([]model.ClassificationRow, error) {
	var (
		events []model.PositionEvent
		sc     model.Schema
		roster []model.Driver
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, sc, err = s.source.Positions(gctx, sessionKey)
		return err
	})
	g.Go(func() error {
		var err error
		roster, err = s.source.Roster(gctx, sessionKey)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := resolve.Resolve(events, roster, sc)

	metrics.RecordResolution(len(rows))
	for _, row := range rows {
		if row.FullName == nil {
			metrics.RecordUnmatchedRoster()
		}
	}

	s.log.Debug(ctx, "resolved finishing order",
		logger.Int("sessionKey", sessionKey),
		logger.Int("rows", len(rows)),
		logger.String("orderKey", sc.Order.String()),
		logger.String("gapKey", sc.Gap.String()),
	)
	return rows, nil
}
