// Package world drives the twinkling hex field.
//
// A [World] owns a drawing [Surface], a fixed viewport, the lattice produced
// by the grid package, and the [Dot] set currently on screen. It moves
// through two phases:
//
//   - Init: build the lattice once, sample the first dot set, paint
//   - Running: every tick repaint the background, draw a fresh random
//     subset of the same lattice, and notify observers
//
// Dots never move. Each tick is an independent sample, which is what makes
// the field appear to flicker.
//
// # Example
//
//	w := world.New(surface, 800, 600, world.DefaultParams())
//	w.Init()
//	err := w.Run(ctx) // returns ctx.Err() once ctx is done
//
// # Thread Safety
//
// World instances are NOT thread-safe. Run, Animate and the accessors must
// be called from a single goroutine.
package world
