package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrMirrorAxis indicates a half axis that does not start at z=0.
	ErrMirrorAxis = errors.New("grid: mirror axis must start at z=0")

	// ErrMirrorShape indicates a value buffer that does not match nR x len(zs).
	ErrMirrorShape = errors.New("grid: mirrored values do not match axes")
)

// MirrorZ expands a row-major half-grid computed on a z >= 0 axis into the
// full grid symmetric about the midplane: Phi(R, -z) = Phi(R, z). The half
// axis must start at exactly 0; the z=0 column is shared, so the full axis
// has 2*len(zs)-1 samples. Evaluating only the upper half and reflecting
// halves the work for the symmetric potentials in this package.
func MirrorZ(zs, vals []float64, nR int) (fullZs, fullVals []float64, err error) {
	if len(zs) < 2 {
		return nil, nil, fmt.Errorf("%w: n=%d", ErrAxisSize, len(zs))
	}
	if zs[0] != 0 {
		return nil, nil, fmt.Errorf("%w: got %g", ErrMirrorAxis, zs[0])
	}
	if nR < 1 || len(vals) != nR*len(zs) {
		return nil, nil, fmt.Errorf("%w: %d values for %dx%d half-grid", ErrMirrorShape, len(vals), nR, len(zs))
	}

	nz := len(zs)
	fullNz := 2*nz - 1
	fullZs = make([]float64, fullNz)
	fullVals = make([]float64, nR*fullNz)

	for j, z := range zs {
		fullZs[nz-1+j] = z
		fullZs[nz-1-j] = -z
	}
	for r := 0; r < nR; r++ {
		for j := 0; j < nz; j++ {
			v := vals[r*nz+j]
			fullVals[r*fullNz+nz-1+j] = v
			fullVals[r*fullNz+nz-1-j] = v
		}
	}
	return fullZs, fullVals, nil
}
