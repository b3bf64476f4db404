// Package grid maps a rectangular viewport onto hexagon-centre sample points.
package grid

import (
	"math"

	"github.com/san-kum/hexfield/internal/geom"
)

const DefaultHexSize = 10.0

// Dims returns the width and height of a flat-topped hexagon of the given size.
func Dims(hexSize float64) (hexW, hexH float64) {
	return 2 * hexSize, math.Sqrt(3) * hexSize
}

// ColumnType is the column index modulo 6. Types 2 and 5 emit no points.
func ColumnType(col int) int {
	return col % 6
}

// ColumnStart returns the first y sampled in column col. Columns of type 2
// and 5 start at h, which leaves them empty.
func ColumnStart(col int, h, hexH float64) float64 {
	switch ColumnType(col) {
	case 0, 4:
		return 0
	case 1, 3:
		return hexH / 2
	default:
		return h
	}
}

// Generate walks x across [0, w) in steps of a quarter hex width and, per
// column, y across [start, h) in steps of a hex height. Points come out
// column by column. Non-positive dimensions yield an empty grid.
func Generate(w, h, hexSize float64) []geom.Point {
	if !valid(w, h, hexSize) {
		return []geom.Point{}
	}
	hexW, hexH := Dims(hexSize)

	grid := make([]geom.Point, 0, estimate(w, h, hexW, hexH))
	col := 0
	for x := 0.0; x < w; x += hexW / 4 {
		for y := ColumnStart(col, h, hexH); y < h; y += hexH {
			grid = append(grid, geom.Point{X: x, Y: y})
		}
		col++
	}
	return grid
}

// Column summarises one vertical strip of the lattice.
type Column struct {
	Index int
	X     float64
	Type  int
	Start float64
	Count int
}

// Columns reports the per-column layout Generate would produce.
func Columns(w, h, hexSize float64) []Column {
	if !valid(w, h, hexSize) {
		return nil
	}
	hexW, hexH := Dims(hexSize)

	var cols []Column
	col := 0
	for x := 0.0; x < w; x += hexW / 4 {
		c := Column{Index: col, X: x, Type: ColumnType(col), Start: ColumnStart(col, h, hexH)}
		for y := c.Start; y < h; y += hexH {
			c.Count++
		}
		cols = append(cols, c)
		col++
	}
	return cols
}

func valid(w, h, hexSize float64) bool {
	if hexSize <= 0 || math.IsNaN(hexSize) || math.IsInf(hexSize, 0) {
		return false
	}
	if math.IsInf(w, 0) || math.IsInf(h, 0) || math.IsNaN(w) || math.IsNaN(h) {
		return false
	}
	return w > 0 && h > 0
}

// estimate over-approximates the point count: four of every six columns
// carry about h/hexH points.
func estimate(w, h, hexW, hexH float64) int {
	cols := math.Ceil(w / (hexW / 4))
	rows := math.Ceil(h/hexH) + 1
	return int(cols*rows*4/6) + 1
}
