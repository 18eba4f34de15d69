// Package model contains domain models passed between layers.
package model

// PositionEvent is one observation of a driver's race position at a point
// in competition time. Pointer fields are absent upstream when nil; the
// upstream column set varies per session, so absence is a normal state,
// not an error.
type PositionEvent struct {
	DriverNumber int     // groups events by driver; always present
	Position     *int    // rank, 1 = leading; nil events are discarded before reduction
	Date         *string // upstream ISO-8601 timestamp; lexicographic order matches wall clock
	LapNumber    *int    // monotonic lap counter, fallback ordering key
	Gap          *string // raw gap-to-leader token under the session's active gap column
}

// Driver is one roster entry for a session.
type Driver struct {
	DriverNumber int
	FullName     string
	TeamName     string
}

// ClassificationRow is one driver's final standing. FullName and TeamName
// are nil when the roster has no entry for the driver; the row is still part
// of the classification.
type ClassificationRow struct {
	Position     int
	DriverNumber int
	FullName     *string
	TeamName     *string
	GapToLeader  string
}

// Session is the projection of one entry from the sessions endpoint.
type Session struct {
	SessionKey  int
	CountryName string
	SessionName string
	DateStart   string
}

// Lap is the projection of one entry from the laps endpoint.
type Lap struct {
	LapNumber   int
	LapDuration *float64 // seconds; nil for in/out laps without a time
}

// Point is one car location sample.
type Point struct {
	X float64
	Y float64
}
