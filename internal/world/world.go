package world

import (
	"context"
	"slices"
	"time"

	"github.com/san-kum/hexfield/internal/geom"
	"github.com/san-kum/hexfield/internal/grid"
)

type World struct {
	surface       Surface
	width, height float64
	params        Params
	rng           *geom.Rand
	grid          []geom.Point
	dots          []Dot
	ticks         int
	observers     []Observer
}

func New(surface Surface, width, height float64, params Params) *World {
	return &World{
		surface:   surface,
		width:     width,
		height:    height,
		params:    params,
		rng:       geom.NewRand(params.Seed),
		dots:      make([]Dot, 0),
		observers: make([]Observer, 0),
	}
}

func (w *World) AddObserver(o Observer) { w.observers = append(w.observers, o) }

// Init builds the lattice, samples the first dot set and paints it.
func (w *World) Init() {
	w.grid = grid.Generate(w.width, w.height, w.params.HexSize)
	w.sampleDots()
	w.drawBackground()
	w.drawDots()
}

// Animate runs one tick: repaint, resample from the same lattice, redraw.
func (w *World) Animate() {
	w.drawBackground()
	w.sampleDots()
	w.drawDots()
	w.ticks++

	for _, o := range w.observers {
		o.OnTick(w.ticks, w.dots)
	}
}

// Run animates immediately and then once per interval, measured from the
// end of the previous tick, until ctx is done.
func (w *World) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if w.grid == nil {
		w.Init()
	}

	timer := time.NewTimer(w.params.Interval)
	defer timer.Stop()

	for {
		w.Animate()
		timer.Reset(w.params.Interval)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (w *World) sampleDots() {
	n := geom.SubsetCount(len(w.grid), w.params.DotRatio)
	subset := geom.Subset(w.rng, w.grid, n)

	w.dots = make([]Dot, len(subset))
	for i, p := range subset {
		w.dots[i] = Dot{Index: i, Pos: p, world: w}
	}
}

func (w *World) drawBackground() {
	w.surface.FillRect(0, 0, w.width, w.height, w.params.Background)
}

func (w *World) drawDots() {
	for _, d := range w.dots {
		d.Draw()
	}
}

// Grid returns a copy of the lattice.
func (w *World) Grid() []geom.Point { return slices.Clone(w.grid) }

// Dots returns a copy of the current dot set.
func (w *World) Dots() []Dot { return slices.Clone(w.dots) }

func (w *World) Ticks() int                    { return w.ticks }
func (w *World) Size() (width, height float64) { return w.width, w.height }
func (w *World) Params() Params                { return w.params }
