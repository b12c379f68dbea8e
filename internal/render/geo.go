package render

import (
	"math"

	"hstin/csvgrid/internal/config"
	"hstin/csvgrid/parser"
)

// Pixel maps a row to canvas coordinates. The result may lie outside the
// canvas; ok is false only when the coordinates are not finite.
func Pixel(grid config.GridSpec, height int, row parser.SampleRow) (x, y int, ok bool) {
	fx := math.Floor((row.Lon - grid.AdjustedLonWest()) / grid.DLon)
	fy := math.Floor((row.Lat - grid.LatSouth) / grid.DLat)

	if !finiteInt(fx) || !finiteInt(fy) {
		return 0, 0, false
	}

	return int(fx), height - int(fy), true
}

func finiteInt(f float64) bool {
	return !math.IsNaN(f) && f > math.MinInt32 && f < math.MaxInt32
}
