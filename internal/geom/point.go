package geom

import "math"

const (
	HalfPi = math.Pi / 2
	TwoPi  = math.Pi * 2
)

type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// IsClose reports whether a and b differ by strictly less than diff.
func IsClose(a, b, diff float64) bool {
	return math.Abs(a-b) < diff
}
