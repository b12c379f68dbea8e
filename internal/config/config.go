package config

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrZeroStep     = errors.New("longitude and latitude steps must be nonzero")
	ErrEmptyGrid    = errors.New("grid has no pixels")
	ErrGridTooLarge = errors.New("grid exceeds pixel limit")
)

type Config struct {
	InputFile  string
	OutputFile string
	Grid       GridSpec
	Verbose    bool
}

// GridSpec is the bounding box and per-axis step of the output raster.
// LonWest is the value given on the command line; see AdjustedLonWest.
type GridSpec struct {
	LonWest  float64
	LonEast  float64
	LatSouth float64
	LatNorth float64
	DLon     float64
	DLat     float64
}

const (
	// Input coordinates are stored as [0, 360) / [0, 180).
	LonOffset = 180.0
	LatOffset = 90.0

	// A value of ValueScale maps to ChannelScale on the red channel.
	ValueScale   = 40.0
	ChannelScale = 256.0

	// MaxPixels bounds width*height of the canvas (4 bytes per pixel).
	MaxPixels = 1 << 28
)

func (g GridSpec) Validate() error {
	for _, v := range []float64{g.LonWest, g.LonEast, g.LatSouth, g.LatNorth, g.DLon, g.DLat} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("grid parameters must be finite")
		}
	}
	if g.DLon == 0 || g.DLat == 0 {
		return ErrZeroStep
	}
	return nil
}

// AdjustedLonWest shifts the west edge by one longitude step. Both the
// image width and pixel columns are computed from the shifted edge.
func (g GridSpec) AdjustedLonWest() float64 {
	return g.LonWest + g.DLon
}

// Dimensions returns the pixel size of the canvas, truncated toward zero.
// Grids narrower than one pixel on either axis return ErrEmptyGrid and grids
// over MaxPixels return ErrGridTooLarge.
func (g GridSpec) Dimensions() (width, height int, err error) {
	fw := (g.LonEast-g.AdjustedLonWest())/g.DLon + 1
	fh := (g.LatNorth-g.LatSouth)/g.DLat + 1

	if !(fw >= 1 && fh >= 1) {
		return 0, 0, fmt.Errorf("%w: %.6gx%.6g", ErrEmptyGrid, fw, fh)
	}
	if fw*fh > MaxPixels {
		return 0, 0, fmt.Errorf("%w: %.6gx%.6g > %d", ErrGridTooLarge, fw, fh, MaxPixels)
	}

	return int(fw), int(fh), nil
}
