package colormap

import (
	"image/color"
	"math"

	"hstin/csvgrid/internal/config"
)

// Intensity is the unclamped red level for value. 0 maps to 0 and
// config.ValueScale maps to config.ChannelScale.
func Intensity(value float64) float64 {
	return value / config.ValueScale * config.ChannelScale
}

// Red clamps Intensity into a channel byte. NaN reads as 0.
func Red(value float64) uint8 {
	i := Intensity(value)
	switch {
	case math.IsNaN(i), i <= 0:
		return 0
	case i >= 255:
		return 255
	}
	return uint8(i)
}

func GetColor(value float64) color.RGBA {
	return color.RGBA{R: Red(value), A: 255}
}
