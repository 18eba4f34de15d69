// Package console implements the interactive analysis menu. It reads
// numbered choices from the terminal, dispatches to the application
// service and renders the results as tables, files and charts.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecappe-boss/OpenF1/internal/adapters/render"
	service "github.com/alecappe-boss/OpenF1/internal/app"
	"github.com/alecappe-boss/OpenF1/internal/domain/lapstats"
	"github.com/alecappe-boss/OpenF1/pkg/logger"
)

const banner = `
=====================================
 OPENF1 PROFESSIONAL ANALYSIS TOOL
=====================================
1. Sessions by year
2. Drivers of a session
3. Driver lap analysis (RACE ONLY)
4. Track map
6. Finishing order + gap to leader
0. Exit
`

// Console is the read-eval-print loop around the service.
type Console struct {
	svc      *service.Service
	printer  *render.Printer
	exporter *render.Exporter
	in       *bufio.Reader
	out      io.Writer
	log      logger.Logger
}

// Option configures the console.
type Option func(*Console)

// WithService sets the application service the menu dispatches to.
func WithService(svc *service.Service) Option {
	return func(c *Console) {
		c.svc = svc
	}
}

// WithPrinter sets the table printer.
func WithPrinter(p *render.Printer) Option {
	return func(c *Console) {
		c.printer = p
	}
}

// WithExporter sets the file exporter used for CSV, XLSX and charts.
func WithExporter(e *render.Exporter) Option {
	return func(c *Console) {
		c.exporter = e
	}
}

// WithInput sets the reader menu choices are read from.
func WithInput(in io.Reader) Option {
	return func(c *Console) {
		c.in = bufio.NewReader(in)
	}
}

// WithOutput sets the writer prompts and messages are written to.
func WithOutput(out io.Writer) Option {
	return func(c *Console) {
		c.out = out
	}
}

// WithLogger sets a custom logger for the console.
func WithLogger(log logger.Logger) Option {
	return func(c *Console) {
		c.log = log
	}
}

// New creates a console bound to stdin and stdout unless overridden.
func New(opts ...Option) *Console {
	c := &Console{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
		log: logger.Named("console"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.svc == nil {
		c.svc = service.New()
	}
	if c.printer == nil {
		c.printer = render.NewPrinter(render.WithOutput(c.out))
	}
	if c.exporter == nil {
		c.exporter = render.NewExporter("exports")
	}
	return c
}

// Run drives the menu until the user exits, input ends or the context
// is cancelled.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, banner)
		choice, ok := c.promptString("Select option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.showSessions(ctx)
		case "2":
			c.showDrivers(ctx)
		case "3":
			c.analyzeLaps(ctx)
		case "4":
			c.showTrack(ctx)
		case "6":
			c.showResults(ctx)
		case "0":
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice")
		}
	}
}

func (c *Console) showSessions(ctx context.Context) {
	year, ok := c.promptInt("Year (e.g. 2025): ")
	if !ok {
		return
	}

	sessions := c.svc.SessionsByYear(ctx, year)
	if len(sessions) == 0 {
		fmt.Fprintln(c.out, "No sessions found for the selected year")
		return
	}
	c.printer.Print(render.SessionsTable(sessions))
}

func (c *Console) showDrivers(ctx context.Context) {
	sessionKey, ok := c.promptInt("Session key: ")
	if !ok {
		return
	}

	drivers, err := c.svc.DriversBySession(ctx, sessionKey)
	if err != nil {
		c.log.Error(ctx, "roster lookup failed", logger.Error(err))
		fmt.Fprintln(c.out, "Driver feed is malformed, see logs")
		return
	}
	if len(drivers) == 0 {
		fmt.Fprintln(c.out, "No drivers found for this session")
		return
	}
	c.printer.Print(render.DriversTable(drivers))
}

func (c *Console) analyzeLaps(ctx context.Context) {
	sessionKey, ok := c.promptInt("Session key: ")
	if !ok {
		return
	}

	session, found := c.svc.SessionByKey(ctx, sessionKey)
	if !found || !strings.Contains(session.SessionName, "Race") {
		fmt.Fprintln(c.out, "Race sessions only")
		return
	}

	driverNumber, ok := c.promptInt("Driver number: ")
	if !ok {
		return
	}

	laps := c.svc.LapsForDriver(ctx, sessionKey, driverNumber)
	stats, timed := lapstats.Describe(laps)
	if !timed {
		fmt.Fprintln(c.out, "No data available")
		return
	}

	fmt.Fprintln(c.out, "\nLap time statistics:")
	c.printer.Print(render.StatsTable(stats))

	chartName := fmt.Sprintf("laps_%d_%d.png", driverNumber, sessionKey)
	chartTitle := fmt.Sprintf("Lap Times - Driver %d", driverNumber)
	path, err := c.exporter.LapChart(ctx, chartName, chartTitle, laps)
	if err != nil {
		c.log.Error(ctx, "lap chart failed", logger.Error(err))
	} else {
		fmt.Fprintf(c.out, "Chart saved: %s\n", path)
	}

	answer, ok := c.promptString("Export CSV? (y/n): ")
	if ok && strings.EqualFold(answer, "y") {
		name := fmt.Sprintf("laps_%d_%d.csv", driverNumber, sessionKey)
		c.export(ctx, name, "", render.LapsTable(laps))
	}
}

func (c *Console) showTrack(ctx context.Context) {
	sessionKey, ok := c.promptInt("Session key: ")
	if !ok {
		return
	}

	points := c.svc.TrackTrace(ctx, sessionKey)
	if len(points) == 0 {
		fmt.Fprintln(c.out, "No location data for this session")
		return
	}

	name := fmt.Sprintf("track_%d.png", sessionKey)
	path, err := c.exporter.TrackMap(ctx, name, "Track Map", points)
	if err != nil {
		c.log.Error(ctx, "track map failed", logger.Error(err))
		fmt.Fprintln(c.out, "Track map rendering failed, see logs")
		return
	}
	fmt.Fprintf(c.out, "Track map saved: %s\n", path)
}

func (c *Console) showResults(ctx context.Context) {
	sessionKey, ok := c.promptInt("Session key: ")
	if !ok {
		return
	}

	rows, err := c.svc.FinishingOrder(ctx, sessionKey)
	if err != nil {
		c.log.Error(ctx, "resolution failed", logger.Error(err))
		fmt.Fprintln(c.out, "Position feed is malformed, see logs")
		return
	}
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "No results available")
		return
	}

	table := render.ClassificationTable(rows)
	c.printer.Print(table)

	answer, ok := c.promptString("Export results? (csv/xlsx/n): ")
	if !ok {
		return
	}
	switch strings.ToLower(answer) {
	case "csv":
		c.export(ctx, fmt.Sprintf("results_%d.csv", sessionKey), "", table)
	case "xlsx":
		c.export(ctx, fmt.Sprintf("results_%d.xlsx", sessionKey), "Classification", table)
	}
}

func (c *Console) export(ctx context.Context, name, sheet string, t render.Table) {
	var (
		path string
		err  error
	)
	if sheet != "" {
		path, err = c.exporter.XLSX(ctx, name, sheet, t)
	} else {
		path, err = c.exporter.CSV(ctx, name, t)
	}
	if err != nil {
		c.log.Error(ctx, "export failed", logger.String("file", name), logger.Error(err))
		fmt.Fprintln(c.out, "Export failed, see logs")
		return
	}
	fmt.Fprintf(c.out, "File exported: %s\n", path)
}
