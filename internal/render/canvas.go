package render

import (
	"math"
	"strings"

	"github.com/san-kum/hexfield/internal/geom"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a monochrome Braille surface. Scale is the number of viewport
// units per sub-pixel; colours are left to whoever styles String().
type Canvas struct {
	Width, Height int
	Scale         float64
	Grid          [][]rune
}

func NewCanvas(w, h int, scale float64) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Scale:  scale,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// Viewport returns the canvas size in viewport units.
func (c *Canvas) Viewport() (w, h float64) {
	return float64(c.Width*2) * c.Scale, float64(c.Height*4) * c.Scale
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// FillRect clears the covered sub-pixels: the background is whatever the
// terminal style paints behind the glyphs.
func (c *Canvas) FillRect(x, y, w, h float64, _ geom.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vw, vh := c.Viewport()
	if x <= 0 && y <= 0 && x+w >= vw && y+h >= vh {
		c.Clear()
		return
	}

	x0 := clampIndex(math.Floor(x/c.Scale), c.Width*2)
	y0 := clampIndex(math.Floor(y/c.Scale), c.Height*4)
	x1 := clampIndex(math.Ceil((x+w)/c.Scale), c.Width*2)
	y1 := clampIndex(math.Ceil((y+h)/c.Scale), c.Height*4)
	for sy := y0; sy < y1; sy++ {
		for sx := x0; sx < x1; sx++ {
			c.Unset(sx, sy)
		}
	}
}

// FillCircle sets every sub-pixel within r of the centre. Circles smaller
// than a sub-pixel still light the one they fall in.
func (c *Canvas) FillCircle(cx, cy, r float64, _ geom.Color) {
	if r <= 0 {
		return
	}
	rs := r / c.Scale
	sx, sy := cx/c.Scale, cy/c.Scale

	if rs < 1 {
		c.Set(c.sub(cx), c.sub(cy))
		return
	}

	minX, maxX := clampIndex(math.Floor(sx-rs), c.Width*2), clampIndex(math.Ceil(sx+rs), c.Width*2-1)
	minY, maxY := clampIndex(math.Floor(sy-rs), c.Height*4), clampIndex(math.Ceil(sy+rs), c.Height*4-1)
	for y := minY; y <= maxY; y++ {
		dy := float64(y) + 0.5 - sy
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - sx
			if dx*dx+dy*dy <= rs*rs {
				c.Set(x, y)
			}
		}
	}
}

func (c *Canvas) sub(v float64) int {
	return int(math.Floor(v / c.Scale))
}

// clampIndex converts a whole-valued sub-pixel coordinate to an int in
// [0, limit]. NaN maps to 0.
func clampIndex(v float64, limit int) int {
	if !(v > 0) {
		return 0
	}
	if v > float64(limit) {
		return limit
	}
	return int(v)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		b.WriteString(string(row))
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
