package openf1

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecappe-boss/OpenF1/internal/domain/model"
)

// Record is one raw row from an OpenF1 endpoint. Values stay as raw JSON so
// that "column absent" and "value null" remain two distinct observable
// states after decoding; the upstream column set varies per session.
type Record map[string]json.RawMessage

// Raw column names as served by the API.
const (
	colDriverNumber = "driver_number"
	colPosition     = "position"
	colDate         = "date"
	colLapNumber    = "lap_number"
	colGap          = "gap"
	colInterval     = "interval"
	colSessionKey   = "session_key"
	colCountryName  = "country_name"
	colSessionName  = "session_name"
	colDateStart    = "date_start"
	colFullName     = "full_name"
	colTeamName     = "team_name"
	colLapDuration  = "lap_duration"
	colX            = "x"
	colY            = "y"
)

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// intField reads a numeric column as an int. The API serves most integers
// as plain numbers but a joined feed may widen them to floats.
func (r Record) intField(key string) *int {
	raw, ok := r[key]
	if !ok || isNull(raw) {
		return nil
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return nil
	}
	v := int(f)
	return &v
}

func (r Record) floatField(key string) *float64 {
	raw, ok := r[key]
	if !ok || isNull(raw) {
		return nil
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return nil
	}
	return &f
}

// stringField reads a column as display text. JSON strings are unquoted;
// numbers keep their literal form so gap values pass through unformatted.
func (r Record) stringField(key string) *string {
	raw, ok := r[key]
	if !ok || isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	s = strings.TrimSpace(string(raw))
	return &s
}

// hasColumn reports whether a column exists anywhere in the feed. A key
// present with a null value still counts: the column exists, the value is
// absent at the row level.
func hasColumn(records []Record, key string) bool {
	for _, r := range records {
		if _, ok := r[key]; ok {
			return true
		}
	}
	return false
}

// ResolveSchema inspects the raw position feed once and fixes the active
// ordering and gap columns for the whole session. date wins over
// lap_number; gap wins over interval.
func ResolveSchema(records []Record) model.Schema {
	sc := model.Schema{Order: model.OrderArrival, Gap: model.GapNone}
	switch {
	case hasColumn(records, colDate):
		sc.Order = model.OrderByDate
	case hasColumn(records, colLapNumber):
		sc.Order = model.OrderByLap
	}
	switch {
	case hasColumn(records, colGap):
		sc.Gap = model.GapColumn
	case hasColumn(records, colInterval):
		sc.Gap = model.IntervalColumn
	}
	return sc
}

// toPositionEvents converts the raw feed into typed events under a resolved
// schema. A record without a driver number violates the data contract and
// aborts the conversion.
func toPositionEvents(records []Record, sc model.Schema) ([]model.PositionEvent, error) {
	events := make([]model.PositionEvent, 0, len(records))
	for i, r := range records {
		number := r.intField(colDriverNumber)
		if number == nil {
			return nil, fmt.Errorf("%w: position record %d", ErrMissingDriverNumber, i)
		}
		ev := model.PositionEvent{
			DriverNumber: *number,
			Position:     r.intField(colPosition),
			Date:         r.stringField(colDate),
			LapNumber:    r.intField(colLapNumber),
		}
		switch sc.Gap {
		case model.GapColumn:
			ev.Gap = r.stringField(colGap)
		case model.IntervalColumn:
			ev.Gap = r.stringField(colInterval)
		case model.GapNone:
			// No gap data for this session.
		}
		events = append(events, ev)
	}
	return events, nil
}

func toDrivers(records []Record) ([]model.Driver, error) {
	drivers := make([]model.Driver, 0, len(records))
	for i, r := range records {
		number := r.intField(colDriverNumber)
		if number == nil {
			return nil, fmt.Errorf("%w: roster record %d", ErrMissingDriverNumber, i)
		}
		d := model.Driver{DriverNumber: *number}
		if name := r.stringField(colFullName); name != nil {
			d.FullName = *name
		}
		if team := r.stringField(colTeamName); team != nil {
			d.TeamName = *team
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

func toSessions(records []Record) []model.Session {
	sessions := make([]model.Session, 0, len(records))
	for _, r := range records {
		key := r.intField(colSessionKey)
		if key == nil {
			continue
		}
		s := model.Session{SessionKey: *key}
		if v := r.stringField(colCountryName); v != nil {
			s.CountryName = *v
		}
		if v := r.stringField(colSessionName); v != nil {
			s.SessionName = *v
		}
		if v := r.stringField(colDateStart); v != nil {
			s.DateStart = *v
		}
		sessions = append(sessions, s)
	}
	return sessions
}

func toLaps(records []Record) []model.Lap {
	laps := make([]model.Lap, 0, len(records))
	for _, r := range records {
		number := r.intField(colLapNumber)
		if number == nil {
			continue
		}
		laps = append(laps, model.Lap{
			LapNumber:   *number,
			LapDuration: r.floatField(colLapDuration),
		})
	}
	return laps
}

func toPoints(records []Record) []model.Point {
	points := make([]model.Point, 0, len(records))
	for _, r := range records {
		x := r.floatField(colX)
		y := r.floatField(colY)
		if x == nil || y == nil {
			continue
		}
		points = append(points, model.Point{X: *x, Y: *y})
	}
	return points
}
