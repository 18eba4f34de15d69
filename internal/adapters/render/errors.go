package render

import "errors"

// Sentinel kinds for presentation errors.
var (
	ErrExportFailed = errors.New("export failed")
	ErrNoChartData  = errors.New("no chart data")
)
