// Package potential provides axisymmetric gravitational potential components
// and the registry that assembles them from wire-format specs.
//
// Each component implements the [Component] interface, evaluating the
// potential at a cylindrical coordinate pair (R, z):
//
//   - [PointMass]: Kepler point-mass potential
//   - [MiyamotoNagai]: flattened disk potential
//   - [LogHalo]: logarithmic halo potential
//   - [NFW]: Navarro-Frenk-White halo potential
//   - [Interp]: bilinear interpolation over a precomputed potential grid
//
// Components are reconstructed from a flat spec (an ordered list of integer
// type tags plus one packed parameter buffer consumed positionally) via
// [Build], and torn down via [Release]. Components that own lookup state
// (currently only [Interp]) release it through their own Close.
//
// # Thread Safety
//
// A built component slice is NOT safe for concurrent evaluation because
// interpolating components mutate cached search state on every lookup. For
// parallel evaluation, build one slice per goroutine from the same spec.
package potential
