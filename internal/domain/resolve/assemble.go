package resolve

import (
	"sort"

	"github.com/alecappe-boss/OpenF1/internal/domain/model"
)

// Gap labels emitted by the gap formatting rule.
const (
	GapLeader      = "Leader"
	GapUnavailable = "N/A"
)

// Assemble orders the reduced position set into the finishing order,
// left-joins the roster, and derives the gap-to-leader display value.
// Every reduced row produces exactly one classification row; a missing
// roster entry leaves the identity fields nil, it never drops the driver.
// Empty input yields an empty classification, not an error.
func Assemble(reduced []model.PositionEvent, roster []model.Driver, sc model.Schema) []model.ClassificationRow {
	if len(reduced) == 0 {
		return nil
	}

	order := make([]model.PositionEvent, len(reduced))
	copy(order, reduced)
	sort.SliceStable(order, func(i, j int) bool { return *order[i].Position < *order[j].Position })

	byNumber := rosterIndex(roster)

	rows := make([]model.ClassificationRow, 0, len(order))
	for _, ev := range order {
		row := model.ClassificationRow{
			Position:     *ev.Position,
			DriverNumber: ev.DriverNumber,
			GapToLeader:  formatGap(ev, sc),
		}
		if d, ok := byNumber[ev.DriverNumber]; ok {
			name, team := d.FullName, d.TeamName
			row.FullName = &name
			row.TeamName = &team
		}
		rows = append(rows, row)
	}
	return rows
}

// Resolve runs the full pipeline: Reduce then Assemble.
func Resolve(events []model.PositionEvent, roster []model.Driver, sc model.Schema) []model.ClassificationRow {
	return Assemble(Reduce(events, sc), roster, sc)
}

// rosterIndex collapses the roster into a set keyed by driver number.
// The first record for a number wins.
func rosterIndex(roster []model.Driver) map[int]model.Driver {
	idx := make(map[int]model.Driver, len(roster))
	for _, d := range roster {
		if _, ok := idx[d.DriverNumber]; !ok {
			idx[d.DriverNumber] = d
		}
	}
	return idx
}

// formatGap applies the gap formatting rule. The two "N/A" branches are
// distinct conditions: the session may carry no gap column at all, or the
// column may exist while this row's value is absent.
func formatGap(ev model.PositionEvent, sc model.Schema) string {
	switch {
	case *ev.Position == 1:
		return GapLeader
	case sc.Gap == model.GapNone:
		return GapUnavailable
	case ev.Gap == nil:
		return GapUnavailable
	default:
		return *ev.Gap
	}
}
