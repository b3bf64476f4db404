package world

import (
	"time"

	"github.com/san-kum/hexfield/internal/geom"
	"github.com/san-kum/hexfield/internal/grid"
)

const (
	DefaultDotRatio  = 0.3
	DefaultDotRadius = 1.0
	DefaultInterval  = 180 * time.Millisecond
)

var (
	DefaultBackground = geom.MustHex("#14307a")
	DefaultDotColor   = geom.MustHex("#1876a8")
)

// Params holds everything a World needs besides its surface and size.
type Params struct {
	HexSize    float64
	DotRatio   float64
	DotRadius  float64
	Interval   time.Duration
	Background geom.Color
	DotColor   geom.Color
	Seed       int64
}

func DefaultParams() Params {
	return Params{
		HexSize:    grid.DefaultHexSize,
		DotRatio:   DefaultDotRatio,
		DotRadius:  DefaultDotRadius,
		Interval:   DefaultInterval,
		Background: DefaultBackground,
		DotColor:   DefaultDotColor,
		Seed:       1,
	}
}
