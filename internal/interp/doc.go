// Package interp provides 2-D interpolation over precomputed rectangular grids.
//
// The package defines two cooperating types:
//
//   - [Table]: a bilinear interpolation table over an (x, y) grid with
//     row-major values
//   - [Accel]: a cached bracketing search that speeds up repeated lookups
//     against the same axis
//
// # Thread Safety
//
// An [Accel] mutates its cached index on every lookup, so a Table paired with
// its accelerators must NOT be shared across goroutines. Parallel evaluation
// should give each worker its own Table (see field.ParallelGrid).
package interp
