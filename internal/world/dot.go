package world

import "github.com/san-kum/hexfield/internal/geom"

// Dot is one visible lattice point for a single tick.
type Dot struct {
	Index int
	Pos   geom.Point
	world *World
}

// Draw fills a circle at the dot's position on its world's surface. Only a
// World hands out drawable dots; a Dot built elsewhere draws nothing.
func (d Dot) Draw() {
	if d.world == nil {
		return
	}
	p := d.world.params
	d.world.surface.FillCircle(d.Pos.X, d.Pos.Y, p.DotRadius, p.DotColor)
}
