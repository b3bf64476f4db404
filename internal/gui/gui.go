// Package gui shows the hex field in a desktop window.
package gui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/hexfield/internal/geom"
	"github.com/san-kum/hexfield/internal/world"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 600
)

// surface paints onto an offscreen ebiten image.
type surface struct {
	img *ebiten.Image
}

func (s surface) FillRect(x, y, w, h float64, c geom.Color) {
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s surface) FillCircle(cx, cy, r float64, c geom.Color) {
	vector.FillCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

// Game implements ebiten.Game. Update runs at the engine's tick rate and
// animates the world whenever the interval has elapsed since the last
// completed tick.
type Game struct {
	params        world.Params
	width, height int
	frame         *ebiten.Image
	world         *world.World
	last          time.Time
}

func NewGame(params world.Params, width, height int) *Game {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Game{params: params, width: width, height: height}
}

func (g *Game) Update() error {
	if g.world == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
		g.world = world.New(surface{img: g.frame}, float64(g.width), float64(g.height), g.params)
		g.world.Init()
		g.last = time.Now()
		return nil
	}
	if time.Since(g.last) >= g.params.Interval {
		g.frame.Clear()
		g.world.Animate()
		g.last = time.Now()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(params world.Params, width, height int) error {
	g := NewGame(params, width, height)
	ebiten.SetWindowTitle("hexfield")
	ebiten.SetWindowSize(g.width, g.height)
	return ebiten.RunGame(g)
}
