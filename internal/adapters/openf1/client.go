// Package openf1 is the HTTP data source for the OpenF1 public API.
package openf1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/alecappe-boss/OpenF1/internal/domain/model"
	"github.com/alecappe-boss/OpenF1/pkg/logger"
	"github.com/alecappe-boss/OpenF1/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL = "https://api.openf1.org/v1"
	defaultTimeout = 15 * time.Second
)

// API endpoints.
const (
	endpointSessions = "sessions"
	endpointDrivers  = "drivers"
	endpointPosition = "position"
	endpointLaps     = "laps"
	endpointLocation = "location"
)

// Client fetches raw records from the OpenF1 API. Transport and decoding
// failures degrade to an empty record set: callers see "no results" and
// cannot (and must not) distinguish an upstream failure from an empty
// session. Only a record violating the driver-number contract surfaces as
// an error from the typed accessors.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     logger.Logger
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpc.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New constructs a Client with default configuration.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = logger.Get()
	}

	return c
}

// Fetch performs one GET against an endpoint and decodes the JSON array of
// records. Any failure is logged, counted, and reported as an empty feed.
func (c *Client) Fetch(ctx context.Context, endpoint string, params map[string]string) []Record {
	correlation := uuid.NewString()
	start := time.Now()

	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	target := c.baseURL + "/" + endpoint
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.fail(ctx, endpoint, correlation, err)
		return nil
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.fail(ctx, endpoint, correlation, err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.fail(ctx, endpoint, correlation, fmt.Errorf("unexpected status %d", resp.StatusCode))
		return nil
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		c.fail(ctx, endpoint, correlation, err)
		return nil
	}

	metrics.RecordAPIRequest(endpoint, time.Since(start).Seconds())
	if len(records) == 0 {
		metrics.RecordEmptyFeed(endpoint)
	}
	c.log.Debug(ctx, "fetched records",
		logger.String("endpoint", endpoint),
		logger.String("correlation", correlation),
		logger.Int("count", len(records)),
	)
	return records
}

// fail logs and counts an upstream failure; the caller returns empty.
func (c *Client) fail(ctx context.Context, endpoint, correlation string, err error) {
	metrics.RecordAPIError(endpoint)
	c.log.Error(ctx, "API error",
		logger.String("endpoint", endpoint),
		logger.String("correlation", correlation),
		logger.Error(err),
	)
}

// Sessions returns the sessions held in a year.
func (c *Client) Sessions(ctx context.Context, year int) []model.Session {
	records := c.Fetch(ctx, endpointSessions, map[string]string{"year": strconv.Itoa(year)})
	return toSessions(records)
}

// Session returns one session by key; ok is false when it is unknown.
func (c *Client) Session(ctx context.Context, sessionKey int) (model.Session, bool) {
	records := c.Fetch(ctx, endpointSessions, map[string]string{"session_key": strconv.Itoa(sessionKey)})
	sessions := toSessions(records)
	if len(sessions) == 0 {
		return model.Session{}, false
	}
	return sessions[0], true
}

// Roster returns the raw driver roster of a session.
func (c *Client) Roster(ctx context.Context, sessionKey int) ([]model.Driver, error) {
	records := c.Fetch(ctx, endpointDrivers, map[string]string{"session_key": strconv.Itoa(sessionKey)})
	return toDrivers(records)
}

// Positions returns the typed position-event feed of a session along with
// the schema descriptor resolved from the raw columns.
func (c *Client) Positions(ctx context.Context, sessionKey int) ([]model.PositionEvent, model.Schema, error) {
	records := c.Fetch(ctx, endpointPosition, map[string]string{"session_key": strconv.Itoa(sessionKey)})
	sc := ResolveSchema(records)
	events, err := toPositionEvents(records, sc)
	if err != nil {
		return nil, sc, err
	}
	return events, sc, nil
}

// Laps returns one driver's laps in a session.
func (c *Client) Laps(ctx context.Context, sessionKey, driverNumber int) []model.Lap {
	records := c.Fetch(ctx, endpointLaps, map[string]string{
		"session_key":   strconv.Itoa(sessionKey),
		"driver_number": strconv.Itoa(driverNumber),
	})
	return toLaps(records)
}

// Locations returns one driver's car location trace in a session.
func (c *Client) Locations(ctx context.Context, sessionKey, driverNumber int) []model.Point {
	records := c.Fetch(ctx, endpointLocation, map[string]string{
		"session_key":   strconv.Itoa(sessionKey),
		"driver_number": strconv.Itoa(driverNumber),
	})
	return toPoints(records)
}
