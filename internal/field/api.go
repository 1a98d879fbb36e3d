package field

import (
	"github.com/san-kum/galpot/internal/potential"
)

// CalcPotential computes the summed potential over the full Rs x zs grid into
// out (row-major by R, len(out) == len(Rs)*len(zs)). Components are built
// from the flat spec, shared read-only across the whole grid, and released on
// every exit path. On a construction error, out is never written.
func CalcPotential(Rs, zs []float64, types []int, params []float64, out []float64) error {
	comps, err := potential.Build(types, params)
	if err != nil {
		return err
	}
	defer potential.Release(comps)

	EvaluateGrid(comps, Rs, zs, out)
	return nil
}

// EvalPotential computes the summed potential at each (Rs[i], zs[i]) pair
// into out. Rs, zs, and out must have equal length (caller contract). On a
// construction error, out is never written.
func EvalPotential(Rs, zs []float64, types []int, params []float64, out []float64) error {
	comps, err := potential.Build(types, params)
	if err != nil {
		return err
	}
	defer potential.Release(comps)

	EvaluatePoints(comps, Rs, zs, out)
	return nil
}
