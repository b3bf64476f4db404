package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/san-kum/hexfield/internal/geom"
)

var ErrEmptyImage = errors.New("render: image has no pixels")

// Image rasterises onto a gg drawing context, one viewport unit per pixel.
// A zero-sized image accepts every call and paints nothing.
type Image struct {
	dc            *gg.Context
	width, height int
}

func NewImage(width, height int) *Image {
	m := &Image{width: max(width, 0), height: max(height, 0)}
	if m.width > 0 && m.height > 0 {
		m.dc = gg.NewContext(m.width, m.height)
	}
	return m
}

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

func (m *Image) FillRect(x, y, w, h float64, c geom.Color) {
	if m.dc == nil || w <= 0 || h <= 0 {
		return
	}
	m.dc.SetColor(c)
	m.dc.DrawRectangle(x, y, w, h)
	m.dc.Fill()
}

func (m *Image) FillCircle(cx, cy, r float64, c geom.Color) {
	if m.dc == nil || r <= 0 {
		return
	}
	m.dc.SetColor(c)
	m.dc.DrawCircle(cx, cy, r)
	m.dc.Fill()
}

// Snapshot returns the current pixels.
func (m *Image) Snapshot() image.Image {
	if m.dc == nil {
		return image.NewRGBA(m.Bounds())
	}
	return m.dc.Image()
}

// At is a convenience for tests and exporters.
func (m *Image) At(x, y int) color.RGBA {
	return color.RGBAModel.Convert(m.Snapshot().At(x, y)).(color.RGBA)
}

// SavePNG writes the current pixels to path.
func (m *Image) SavePNG(path string) error {
	if m.dc == nil {
		return ErrEmptyImage
	}
	return m.dc.SavePNG(path)
}
