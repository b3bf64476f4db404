// Package geom provides the small geometry and randomness primitives the
// hex field is built from.
//
//   - [Point]: an immutable 2D position
//   - [Color]: an RGBA colour value that formats as a CSS rgba() string
//   - [Rand]: a seeded source of uniform ints, floats, booleans and colours
//   - [Subset]: unweighted random selection without replacement
//
// # Thread Safety
//
// A [Rand] is NOT safe for concurrent use. Each World owns its own.
package geom
