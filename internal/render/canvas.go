package render

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Canvas is the output raster. Unpainted pixels stay transparent black.
type Canvas struct {
	pix *gg.Pixmap
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{pix: gg.NewPixmap(width, height)}
}

func (c *Canvas) Width() int  { return c.pix.Width() }
func (c *Canvas) Height() int { return c.pix.Height() }

// Set paints one pixel and reports whether it was inside the canvas.
func (c *Canvas) Set(x, y int, col color.RGBA) bool {
	if x < 0 || x >= c.pix.Width() || y < 0 || y >= c.pix.Height() {
		return false
	}

	idx := (y*c.pix.Width() + x) * 4
	data := c.pix.Data()
	data[idx] = col.R
	data[idx+1] = col.G
	data[idx+2] = col.B
	data[idx+3] = col.A
	return true
}

func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.pix.Width() || y < 0 || y >= c.pix.Height() {
		return color.RGBA{}
	}
	idx := (y*c.pix.Width() + x) * 4
	data := c.pix.Data()
	return color.RGBA{data[idx], data[idx+1], data[idx+2], data[idx+3]}
}

func (c *Canvas) SavePNG(path string) error {
	return c.pix.SavePNG(path)
}
