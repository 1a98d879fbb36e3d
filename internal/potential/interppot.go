package potential

import (
	"github.com/san-kum/galpot/internal/interp"
)

// Interp evaluates a potential that was precomputed on an (R, z) grid, using
// bilinear interpolation. It owns the interpolation table and its lookup
// accelerators; both are released by Close.
//
// Wire format (tag TypeInterp): nR, nz, R axis (nR values), z axis (nz
// values), then nR*nz grid values row-major by R.
type Interp struct {
	table *interp.Table
}

// NewInterp builds the interpolating component from its grid.
func NewInterp(rAxis, zAxis, vals []float64) (*Interp, error) {
	table, err := interp.NewTable(rAxis, zAxis, vals)
	if err != nil {
		return nil, err
	}
	return &Interp{table: table}, nil
}

func (p *Interp) Evaluate(R, z float64) float64 {
	return p.table.Eval(R, z)
}

// Close releases the owned table and accelerators.
func (p *Interp) Close() error {
	return p.table.Close()
}
