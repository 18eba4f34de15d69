package render

import (
	"context"
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/alecappe-boss/OpenF1/internal/domain/model"
	"github.com/alecappe-boss/OpenF1/pkg/logger"
	"github.com/alecappe-boss/OpenF1/pkg/metrics"
)

// Chart dimension constants.
const (
	lapChartWidth   = 1000
	lapChartHeight  = 500
	trackMapWidth   = 800
	trackMapHeight  = 600
	trackMapDotSize = 1.5
)

// LapChart renders a lap-time line chart to a PNG and returns the path.
// Untimed laps are skipped. Returns ErrNoChartData when nothing is timed.
func (e *Exporter) LapChart(ctx context.Context, filename, title string, laps []model.Lap) (string, error) {
	var xs, ys []float64
	for _, lap := range laps {
		if lap.LapDuration == nil {
			continue
		}
		xs = append(xs, float64(lap.LapNumber))
		ys = append(ys, *lap.LapDuration)
	}
	if len(xs) == 0 {
		return "", ErrNoChartData
	}

	graph := chart.Chart{
		Title:  title,
		Width:  lapChartWidth,
		Height: lapChartHeight,
		XAxis:  chart.XAxis{Name: "Lap"},
		YAxis:  chart.YAxis{Name: "Lap Time (s)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return e.renderPNG(ctx, filename, graph)
}

// TrackMap renders the car location trace as a scatter PNG.
// Returns ErrNoChartData when no points remain.
func (e *Exporter) TrackMap(ctx context.Context, filename, title string, points []model.Point) (string, error) {
	if len(points) == 0 {
		return "", ErrNoChartData
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	graph := chart.Chart{
		Title:  title,
		Width:  trackMapWidth,
		Height: trackMapHeight,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    trackMapDotSize,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return e.renderPNG(ctx, filename, graph)
}

func (e *Exporter) renderPNG(ctx context.Context, filename string, graph chart.Chart) (string, error) {
	path, err := e.path(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	defer func() { _ = f.Close() }()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	metrics.RecordExport("png")
	e.log.Info(ctx, "exported file", logger.String("path", path))
	return path, nil
}
