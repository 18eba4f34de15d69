package model

// OrderKey identifies which upstream column orders position events in time.
type OrderKey int

const (
	// OrderArrival means neither date nor lap_number exists in the feed;
	// events stay in arrival order.
	OrderArrival OrderKey = iota
	// OrderByDate orders by the date column.
	OrderByDate
	// OrderByLap orders by the lap_number column.
	OrderByLap
)

// GapKey identifies which upstream column carries the gap-to-leader value.
type GapKey int

const (
	// GapNone means the session reports no gap data at all.
	GapNone GapKey = iota
	// GapColumn uses the gap column.
	GapColumn
	// IntervalColumn uses the interval column.
	IntervalColumn
)

// Schema is the session-level column descriptor, resolved once per feed and
// passed through the resolution pipeline. It distinguishes "column absent
// for the whole session" from "value absent on one row".
type Schema struct {
	Order OrderKey
	Gap   GapKey
}

func (k OrderKey) String() string {
	switch k {
	case OrderByDate:
		return "date"
	case OrderByLap:
		return "lap_number"
	default:
		return "arrival"
	}
}

func (k GapKey) String() string {
	switch k {
	case GapColumn:
		return "gap"
	case IntervalColumn:
		return "interval"
	default:
		return "none"
	}
}
