package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"hstin/csvgrid/internal/colormap"
	"hstin/csvgrid/internal/config"
	"hstin/csvgrid/parser"
)

// Stats summarises one Generate run.
type Stats struct {
	Width   int
	Height  int
	Rows    int
	Painted int
	Skipped int
	// Fallbacks counts fields read as 0 because they did not parse.
	Fallbacks int
}

// Generate reads cfg.InputFile and writes the rasterized PNG to cfg.OutputFile.
func Generate(cfg *config.Config, logger *slog.Logger) (Stats, error) {
	startTime := time.Now()

	f, err := os.Open(cfg.InputFile)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open file '%s': %w", cfg.InputFile, err)
	}
	defer f.Close()

	canvas, stats, err := Rasterize(cfg.Grid, f, logger)
	if err != nil {
		return stats, err
	}

	outputDir := filepath.Dir(cfg.OutputFile)
	if outputDir != "." && outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return stats, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := canvas.SavePNG(cfg.OutputFile); err != nil {
		return stats, fmt.Errorf("failed to write image '%s': %w", cfg.OutputFile, err)
	}

	logger.Info("image saved",
		"path", cfg.OutputFile,
		"rows", stats.Rows,
		"painted", stats.Painted,
		"skipped", stats.Skipped,
		"elapsed", time.Since(startTime))

	return stats, nil
}

// Rasterize paints every row of r onto a new canvas sized from grid.
// Rows are painted in input order, so a later row overwrites an earlier
// one on the same pixel.
func Rasterize(grid config.GridSpec, r io.Reader, logger *slog.Logger) (*Canvas, Stats, error) {
	if err := grid.Validate(); err != nil {
		return nil, Stats{}, err
	}

	width, height, err := grid.Dimensions()
	if err != nil {
		return nil, Stats{}, err
	}
	stats := Stats{Width: width, Height: height}

	logger.Debug("grid", "lon_west_adjusted", grid.AdjustedLonWest(), "d_lon", grid.DLon, "d_lat", grid.DLat)
	logger.Info("creating image", "width", width, "height", height)
	canvas := NewCanvas(width, height)

	rows := parser.NewReader(r)
	for {
		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			stats.Fallbacks = rows.Fallbacks
			return nil, stats, err
		}
		stats.Rows++

		x, y, ok := Pixel(grid, height, row)
		if ok && canvas.Set(x, y, colormap.GetColor(row.Value)) {
			stats.Painted++
			continue
		}
		stats.Skipped++
		logger.Debug("row outside canvas", "line", row.Line, "x", x, "y", y)
	}
	stats.Fallbacks = rows.Fallbacks

	if stats.Fallbacks > 0 {
		logger.Debug("unparsable fields read as 0", "count", stats.Fallbacks)
	}

	return canvas, stats, nil
}
