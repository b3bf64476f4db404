package world

import "github.com/san-kum/hexfield/internal/geom"

// Surface is the drawing target a World paints onto.
type Surface interface {
	FillRect(x, y, w, h float64, c geom.Color)
	FillCircle(cx, cy, r float64, c geom.Color)
}

// Observer is notified after every completed tick.
type Observer interface {
	OnTick(tick int, dots []Dot)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(tick int, dots []Dot)

func (f ObserverFunc) OnTick(tick int, dots []Dot) { f(tick, dots) }
