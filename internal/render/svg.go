package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/hexfield/internal/geom"
)

// svgUnits is the number of user units per viewport unit. svgo works in
// integers, so coordinates are scaled up and the viewBox scales them back.
const svgUnits = 10

// SVG streams shapes into an SVG document. Call Close to finish it.
type SVG struct {
	canvas *svg.SVG
}

func NewSVG(w io.Writer, width, height float64, title string) *SVG {
	s := &SVG{canvas: svg.New(w)}
	vw, vh := int(math.Ceil(width)), int(math.Ceil(height))
	if vw < 0 {
		vw = 0
	}
	if vh < 0 {
		vh = 0
	}
	s.canvas.Startview(vw, vh, 0, 0, vw*svgUnits, vh*svgUnits)
	if title != "" {
		s.canvas.Title(title)
	}
	return s
}

func (s *SVG) FillRect(x, y, w, h float64, c geom.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.canvas.Rect(units(x), units(y), units(w), units(h), fillStyle(c))
}

func (s *SVG) FillCircle(cx, cy, r float64, c geom.Color) {
	if r <= 0 {
		return
	}
	s.canvas.Circle(units(cx), units(cy), units(r), fillStyle(c))
}

func (s *SVG) Close() {
	s.canvas.End()
}

func units(v float64) int {
	return int(math.Round(v * svgUnits))
}

func fillStyle(c geom.Color) string {
	if c.Alpha8() == 0xff {
		return "fill:" + c.Hex()
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f", c.Hex(), float64(c.Alpha8())/255)
}
