package geom

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGB colour with a fractional alpha.
type Color struct {
	R, G, B uint8
	A       float64
}

var _ color.Color = Color{}

// ParseHex parses a "#rrggbb" or "#rgb" string into an opaque Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("geom: parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: 1}, nil
}

// MustHex is ParseHex for package-level constants.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String formats the colour the way a 2D canvas fill style expects it.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.alpha())
}

// Hex drops alpha.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA implements color.Color with alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.Alpha8()}.RGBA()
}

// Alpha8 returns alpha scaled to [0, 255].
func (c Color) Alpha8() uint8 {
	return uint8(c.alpha()*255 + 0.5)
}

func (c Color) alpha() float64 {
	switch {
	case c.A < 0:
		return 0
	case c.A > 1:
		return 1
	}
	return c.A
}
