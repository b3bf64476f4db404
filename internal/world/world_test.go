package world_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hexfield/internal/geom"
	"github.com/san-kum/hexfield/internal/grid"
	"github.com/san-kum/hexfield/internal/world"
)

type rect struct {
	x, y, w, h float64
	c          geom.Color
}

type circle struct {
	cx, cy, r float64
	c         geom.Color
}

// recorder is a Surface that remembers every call.
type recorder struct {
	rects   []rect
	circles []circle
}

func (r *recorder) FillRect(x, y, w, h float64, c geom.Color) {
	r.rects = append(r.rects, rect{x, y, w, h, c})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c geom.Color) {
	r.circles = append(r.circles, circle{cx, cy, rad, c})
}

func (r *recorder) reset() {
	r.rects = nil
	r.circles = nil
}

func positions(dots []world.Dot) []geom.Point {
	out := make([]geom.Point, len(dots))
	for i, d := range dots {
		out[i] = d.Pos
	}
	return out
}

var _ = Describe("World", func() {
	var (
		surface *recorder
		params  world.Params
	)

	BeforeEach(func() {
		surface = &recorder{}
		params = world.DefaultParams()
		params.Seed = 42
	})

	Describe("Init", func() {
		It("builds the lattice for the viewport", func() {
			w := world.New(surface, 400, 300, params)
			w.Init()

			Expect(w.Grid()).To(Equal(grid.Generate(400, 300, params.HexSize)))
		})

		It("samples floor(|grid| * ratio) dots with sequential indices", func() {
			w := world.New(surface, 400, 300, params)
			w.Init()

			g := w.Grid()
			dots := w.Dots()
			Expect(dots).To(HaveLen(geom.SubsetCount(len(g), params.DotRatio)))
			for i, d := range dots {
				Expect(d.Index).To(Equal(i))
				Expect(g).To(ContainElement(d.Pos))
			}
		})

		It("paints the background and every dot", func() {
			w := world.New(surface, 400, 300, params)
			w.Init()

			Expect(surface.rects).To(HaveLen(1))
			Expect(surface.rects[0]).To(Equal(rect{0, 0, 400, 300, world.DefaultBackground}))
			Expect(surface.circles).To(HaveLen(len(w.Dots())))
			for _, c := range surface.circles {
				Expect(c.r).To(Equal(world.DefaultDotRadius))
				Expect(c.c).To(Equal(world.DefaultDotColor))
			}
		})

		It("handles a zero-sized viewport without failing", func() {
			w := world.New(surface, 0, 0, params)
			Expect(w.Init).NotTo(Panic())

			Expect(w.Grid()).To(BeEmpty())
			Expect(w.Dots()).To(BeEmpty())
			Expect(surface.circles).To(BeEmpty())
		})
	})

	Describe("Animate", func() {
		It("resamples from the same lattice every tick", func() {
			w := world.New(surface, 640, 480, params)
			w.Init()
			before := w.Grid()
			want := geom.SubsetCount(len(before), params.DotRatio)

			w.Animate()
			first := positions(w.Dots())
			w.Animate()
			second := positions(w.Dots())

			Expect(w.Grid()).To(Equal(before))
			for _, set := range [][]geom.Point{first, second} {
				Expect(set).To(HaveLen(want))
				Expect(before).To(ContainElements(set))
			}
			Expect(w.Ticks()).To(Equal(2))
		})

		It("repaints on every tick", func() {
			w := world.New(surface, 200, 200, params)
			w.Init()
			surface.reset()

			w.Animate()

			Expect(surface.rects).To(HaveLen(1))
			Expect(surface.circles).To(HaveLen(len(w.Dots())))
		})

		It("notifies observers after each tick", func() {
			w := world.New(surface, 200, 200, params)
			var seen []int
			w.AddObserver(world.ObserverFunc(func(tick int, dots []world.Dot) {
				seen = append(seen, tick)
				Expect(dots).To(HaveLen(len(w.Dots())))
			}))
			w.Init()

			w.Animate()
			w.Animate()
			w.Animate()

			Expect(seen).To(Equal([]int{1, 2, 3}))
		})

		It("never alters the dots handed out earlier", func() {
			w := world.New(surface, 300, 300, params)
			w.Init()
			snapshot := w.Dots()
			copied := positions(snapshot)

			w.Animate()

			Expect(positions(snapshot)).To(Equal(copied))
		})
	})

	Describe("Dot", func() {
		It("draws nothing when it does not belong to a world", func() {
			Expect(func() { world.Dot{}.Draw() }).NotTo(Panic())
			Expect(surface.circles).To(BeEmpty())
		})

		It("draws with the world's radius and colour", func() {
			w := world.New(surface, 400, 300, params)
			w.Init()
			surface.reset()

			d := w.Dots()[0]
			d.Draw()
			Expect(surface.circles).To(Equal([]circle{{d.Pos.X, d.Pos.Y, params.DotRadius, params.DotColor}}))
		})
	})

	Describe("Run", func() {
		It("ticks immediately and stops when the context is cancelled", func() {
			params.Interval = 5 * time.Millisecond
			w := world.New(surface, 100, 100, params)

			ctx, cancel := context.WithCancel(context.Background())
			ticks := 0
			w.AddObserver(world.ObserverFunc(func(tick int, _ []world.Dot) {
				ticks = tick
				if tick == 3 {
					cancel()
				}
			}))

			err := w.Run(ctx)
			Expect(err).To(MatchError(context.Canceled))
			Expect(ticks).To(Equal(3))
			Expect(w.Ticks()).To(Equal(3))
		})

		It("returns at once for an already-cancelled context", func() {
			w := world.New(surface, 100, 100, params)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			Expect(w.Run(ctx)).To(MatchError(context.Canceled))
			Expect(w.Ticks()).To(BeZero())
			Expect(w.Grid()).To(BeEmpty())
			Expect(surface.rects).To(BeEmpty())
			Expect(surface.circles).To(BeEmpty())
		})

		It("waits the interval between ticks", func() {
			params.Interval = 20 * time.Millisecond
			w := world.New(surface, 100, 100, params)

			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			Expect(w.Run(ctx)).To(MatchError(context.DeadlineExceeded))
			Expect(w.Ticks()).To(BeNumerically(">=", 1))
			Expect(w.Ticks()).To(BeNumerically("<=", 4))
		})
	})
})
