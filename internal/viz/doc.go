// Package viz provides the terminal view of the hex field.
//
// The view is a Bubble Tea program:
//
//   - [Model]: sizes a Braille canvas from the first window-size message,
//     then animates the world once per tick
//   - [Theme]: colour scheme for the side panel
//
// Each tick is scheduled only after the previous update returns, so ticks
// never overlap. The only key handled is quit (q, esc, ctrl+c).
package viz
