// Package render is the presentation sink: console tables, file exports,
// and charts over resolved views.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/alecappe-boss/OpenF1/internal/domain/lapstats"
	"github.com/alecappe-boss/OpenF1/internal/domain/model"
)

// Table is a rendered tabular view: a header row plus data rows, all cells
// already formatted as display text.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Empty reports whether the table carries no data rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// optional renders a nullable identity field; absent values print blank.
func optional(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// ClassificationTable projects the finishing order into the five-column
// display shape: position, driver number, name, team, gap to leader.
func ClassificationTable(rows []model.ClassificationRow) Table {
	t := Table{Headers: []string{"position", "driver_number", "full_name", "team_name", "gap_to_leader"}}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(row.Position),
			strconv.Itoa(row.DriverNumber),
			optional(row.FullName),
			optional(row.TeamName),
			row.GapToLeader,
		})
	}
	return t
}

// SessionsTable projects the session list for one year.
func SessionsTable(sessions []model.Session) Table {
	t := Table{Headers: []string{"session_key", "country_name", "session_name", "date_start"}}
	for _, s := range sessions {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(s.SessionKey),
			s.CountryName,
			s.SessionName,
			s.DateStart,
		})
	}
	return t
}

// DriversTable projects the roster of one session.
func DriversTable(drivers []model.Driver) Table {
	t := Table{Headers: []string{"driver_number", "full_name", "team_name"}}
	for _, d := range drivers {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(d.DriverNumber),
			d.FullName,
			d.TeamName,
		})
	}
	return t
}

// LapsTable projects one driver's laps; untimed laps print blank.
func LapsTable(laps []model.Lap) Table {
	t := Table{Headers: []string{"lap_number", "lap_duration"}}
	for _, lap := range laps {
		duration := ""
		if lap.LapDuration != nil {
			duration = strconv.FormatFloat(*lap.LapDuration, 'f', 3, 64)
		}
		t.Rows = append(t.Rows, []string{strconv.Itoa(lap.LapNumber), duration})
	}
	return t
}

// StatsTable projects a lap-time summary.
func StatsTable(s lapstats.Summary) Table {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
	return Table{
		Headers: []string{"stat", "lap_duration"},
		Rows: [][]string{
			{"count", strconv.Itoa(s.Count)},
			{"mean", f(s.Mean)},
			{"std", f(s.Std)},
			{"min", f(s.Min)},
			{"25%", f(s.P25)},
			{"50%", f(s.Median)},
			{"75%", f(s.P75)},
			{"max", f(s.Max)},
		},
	}
}

// Printer writes tables to the console in a psql-like format.
type Printer struct {
	out     io.Writer
	maxRows int
}

// PrinterOption applies a configuration option to the Printer.
type PrinterOption func(*Printer)

// WithOutput redirects the printer, mostly for tests.
func WithOutput(out io.Writer) PrinterOption {
	return func(p *Printer) {
		if out != nil {
			p.out = out
		}
	}
}

// WithMaxRows caps printed rows; 0 prints everything.
func WithMaxRows(maxRows int) PrinterOption {
	return func(p *Printer) {
		if maxRows >= 0 {
			p.maxRows = maxRows
		}
	}
}

// NewPrinter constructs a Printer writing to stdout by default.
func NewPrinter(opts ...PrinterOption) *Printer {
	p := &Printer{out: os.Stdout}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Print renders the table. Rows beyond the cap are elided with a note.
func (p *Printer) Print(t Table) {
	rows := t.Rows
	truncated := 0
	if p.maxRows > 0 && len(rows) > p.maxRows {
		truncated = len(rows) - p.maxRows
		rows = rows[:p.maxRows]
	}

	w := tablewriter.NewWriter(p.out)
	w.SetHeader(t.Headers)
	w.SetAutoFormatHeaders(false)
	w.SetAutoWrapText(false)
	w.SetAlignment(tablewriter.ALIGN_LEFT)
	w.AppendBulk(rows)
	w.Render()

	if truncated > 0 {
		fmt.Fprintf(p.out, "... %d more rows\n", truncated)
	}
}
