// Package resolve implements the result resolution engine: it collapses a
// raw stream of position events into one latest-known position per driver
// and assembles the final classification against the driver roster.
package resolve

import (
	"sort"

	"github.com/alecappe-boss/OpenF1/internal/domain/model"
)

// Reduce collapses an unordered position-event set into at most one event
// per driver number: the temporally latest one under the schema's ordering
// key. Events without a rank are discarded first, so a rank-less event can
// never win the latest slot. Empty input yields empty output; already
// reduced input is a fixed point.
func Reduce(events []model.PositionEvent, sc model.Schema) []model.PositionEvent {
	ranked := make([]model.PositionEvent, 0, len(events))
	for _, ev := range events {
		if ev.Position != nil {
			ranked = append(ranked, ev)
		}
	}
	if len(ranked) == 0 {
		return nil
	}

	sortByOrderKey(ranked, sc.Order)

	// Later events overwrite earlier ones; the stable sort above keeps
	// arrival order for equal keys, so on a tie the later arrival wins.
	latest := make(map[int]model.PositionEvent, len(ranked))
	for _, ev := range ranked {
		latest[ev.DriverNumber] = ev
	}

	out := make([]model.PositionEvent, 0, len(latest))
	for _, ev := range latest {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DriverNumber < out[j].DriverNumber })
	return out
}

// sortByOrderKey stable-sorts events by the active ordering column.
// Events missing the ordering value sort after events that have it.
// OrderArrival leaves the feed untouched.
func sortByOrderKey(events []model.PositionEvent, key model.OrderKey) {
	switch key {
	case model.OrderByDate:
		sort.SliceStable(events, func(i, j int) bool {
			a, b := events[i].Date, events[j].Date
			if a == nil || b == nil {
				return a != nil && b == nil
			}
			return *a < *b
		})
	case model.OrderByLap:
		sort.SliceStable(events, func(i, j int) bool {
			a, b := events[i].LapNumber, events[j].LapNumber
			if a == nil || b == nil {
				return a != nil && b == nil
			}
			return *a < *b
		})
	case model.OrderArrival:
		// Feed is already in arrival order.
	}
}
