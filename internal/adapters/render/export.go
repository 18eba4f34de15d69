package render

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/alecappe-boss/OpenF1/pkg/logger"
	"github.com/alecappe-boss/OpenF1/pkg/metrics"
)

// File permission constants.
const (
	exportDirPermission = 0o755
)

// Exporter writes tables and charts under the configured export directory.
type Exporter struct {
	dir string
	log logger.Logger
}

// ExporterOption applies a configuration option to the Exporter.
type ExporterOption func(*Exporter)

// WithExportLogger sets a custom logger for the exporter.
func WithExportLogger(log logger.Logger) ExporterOption {
	return func(e *Exporter) {
		if log != nil {
			e.log = log
		}
	}
}

// NewExporter constructs an Exporter rooted at dir.
func NewExporter(dir string, opts ...ExporterOption) *Exporter {
	e := &Exporter{dir: dir}

	for _, opt := range opts {
		opt(e)
	}

	if e.log == nil {
		e.log = logger.Get()
	}

	return e
}

// path ensures the export directory exists and resolves a filename in it.
func (e *Exporter) path(filename string) (string, error) {
	if err := os.MkdirAll(e.dir, exportDirPermission); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return filepath.Join(e.dir, filename), nil
}

// CSV writes a table as a CSV file and returns the written path.
func (e *Exporter) CSV(ctx context.Context, filename string, t Table) (string, error) {
	path, err := e.path(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(t.Headers); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	metrics.RecordExport("csv")
	e.log.Info(ctx, "exported file", logger.String("path", path))
	return path, nil
}

// XLSX writes a table as a one-sheet workbook with a styled header row,
// the way timing protocols are usually passed around.
func (e *Exporter) XLSX(ctx context.Context, filename, sheet string, t Table) (string, error) {
	path, err := e.path(filename)
	if err != nil {
		return "", err
	}

	book := excelize.NewFile()
	defer func() { _ = book.Close() }()

	if err := book.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	headerStyle, err := book.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"1c399e"},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Font: &excelize.Font{
			Color: "ffffff",
			Bold:  true,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	for col, header := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = book.SetCellValue(sheet, cell, header)
		_ = book.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	for row, cells := range t.Rows {
		for col, value := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = book.SetCellValue(sheet, cell, value)
		}
	}

	if err := book.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	metrics.RecordExport("xlsx")
	e.log.Info(ctx, "exported file", logger.String("path", path))
	return path, nil
}
