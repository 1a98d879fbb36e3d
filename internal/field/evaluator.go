package field

import (
	"github.com/san-kum/galpot/internal/potential"
)

// Sum accumulates the potential of every component at (R, z), left to right
// in component order. NaN and Inf propagate per IEEE 754.
func Sum(comps []potential.Component, R, z float64) float64 {
	total := 0.0
	for _, c := range comps {
		total += c.Evaluate(R, z)
	}
	return total
}

// EvaluateGrid fills out with the summed potential over the Cartesian product
// of Rs and zs, row-major by R: out[r*len(zs)+c] = Phi(Rs[r], zs[c]). Rows are
// computed one at a time and emitted in increasing row order.
//
// Precondition: len(out) == len(Rs)*len(zs). This is a caller contract, not a
// checked error.
func EvaluateGrid(comps []potential.Component, Rs, zs []float64, out []float64) {
	row := make([]float64, len(zs))
	for r, R := range Rs {
		for c, z := range zs {
			row[c] = Sum(comps, R, z)
		}
		WriteRow(out, r, row)
	}
}

// EvaluatePoints fills out element-wise: out[i] = Phi(Rs[i], zs[i]).
//
// Precondition: len(Rs) == len(zs) == len(out). Equal lengths are a caller
// contract, not a checked error.
func EvaluatePoints(comps []potential.Component, Rs, zs []float64, out []float64) {
	for i := range Rs {
		out[i] = Sum(comps, Rs[i], zs[i])
	}
}

// WriteRow copies one computed row into the row-major output buffer at row
// index r. The offset arithmetic here is the layout contract downstream
// consumers rely on.
func WriteRow(out []float64, r int, row []float64) {
	copy(out[r*len(row):(r+1)*len(row)], row)
}
