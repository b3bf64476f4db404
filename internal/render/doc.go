// Package render provides the drawing surfaces a World can paint onto.
//
//   - [Canvas]: Braille-pattern terminal canvas, 2x4 sub-pixels per cell
//   - [Image]: in-memory RGBA raster for PNG and GIF output
//   - [SVG]: streaming SVG document writer
//
// All surfaces clip to their own bounds and treat degenerate shapes as
// no-ops.
package render
