// Package field evaluates summed potential fields over sampling grids and
// point lists.
//
// Two access patterns are supported:
//
//   - grid mode: the full Cartesian product of an R axis and a z axis,
//     written row-major by R ([CalcPotential], [EvaluateGrid])
//   - paired mode: element-wise over two equal-length coordinate slices
//     ([EvalPotential], [EvaluatePoints])
//
// The top-level entry points build components from a flat spec, evaluate, and
// release the components on every exit path. Construction failures surface
// before anything is written to the output buffer.
//
// # Thread Safety
//
// A single component slice must not be evaluated concurrently (interpolating
// components cache lookup state). [ParallelGrid] parallelizes by giving each
// worker its own components built from the same spec.
package field
