package interp

import (
	"errors"
	"fmt"
)

// Domain errors for table construction and lifecycle.
var (
	// ErrAxisTooShort indicates an axis with fewer than two knots.
	ErrAxisTooShort = errors.New("interp: axis needs at least two knots")

	// ErrAxisNotIncreasing indicates an axis that is not strictly increasing.
	ErrAxisNotIncreasing = errors.New("interp: axis must be strictly increasing")

	// ErrGridShape indicates a value grid whose length is not len(x)*len(y).
	ErrGridShape = errors.New("interp: grid length does not match axes")

	// ErrClosed indicates use or double-release of a closed resource.
	ErrClosed = errors.New("interp: resource already closed")
)

// Table interpolates bilinearly over a rectangular grid. vals is row-major:
// vals[i*len(y)+j] is the sample at (x[i], y[j]).
//
// Eval mutates the embedded accelerators, so a Table must not be shared
// across goroutines; build one per worker instead.
type Table struct {
	x, y   []float64
	vals   []float64
	xacc   *Accel
	yacc   *Accel
	closed bool
}

// NewTable validates the axes and grid shape and builds a table. The input
// slices are retained, not copied; the caller must not mutate them while the
// table is live.
func NewTable(x, y, vals []float64) (*Table, error) {
	for _, axis := range [][]float64{x, y} {
		if len(axis) < 2 {
			return nil, fmt.Errorf("%w: got %d", ErrAxisTooShort, len(axis))
		}
		for i := 1; i < len(axis); i++ {
			if axis[i] <= axis[i-1] {
				return nil, fmt.Errorf("%w: knot %d", ErrAxisNotIncreasing, i)
			}
		}
	}
	if len(vals) != len(x)*len(y) {
		return nil, fmt.Errorf("%w: %d values for %dx%d grid", ErrGridShape, len(vals), len(x), len(y))
	}
	trackAlloc()
	return &Table{
		x:    x,
		y:    y,
		vals: vals,
		xacc: NewAccel(),
		yacc: NewAccel(),
	}, nil
}

// Eval returns the bilinear interpolant at (px, py). Points outside the grid
// are extrapolated from the nearest boundary cell.
func (t *Table) Eval(px, py float64) float64 {
	i := t.xacc.Find(t.x, px)
	j := t.yacc.Find(t.y, py)

	ny := len(t.y)
	v00 := t.vals[i*ny+j]
	v01 := t.vals[i*ny+j+1]
	v10 := t.vals[(i+1)*ny+j]
	v11 := t.vals[(i+1)*ny+j+1]

	u := (px - t.x[i]) / (t.x[i+1] - t.x[i])
	w := (py - t.y[j]) / (t.y[j+1] - t.y[j])

	return (1-u)*(1-w)*v00 + (1-u)*w*v01 + u*(1-w)*v10 + u*w*v11
}

// Bounds returns the axis extents of the table.
func (t *Table) Bounds() (xmin, xmax, ymin, ymax float64) {
	return t.x[0], t.x[len(t.x)-1], t.y[0], t.y[len(t.y)-1]
}

// Close releases the table and its accelerators exactly once.
func (t *Table) Close() error {
	if t.closed {
		return ErrClosed
	}
	t.closed = true
	if err := t.xacc.Close(); err != nil {
		return err
	}
	if err := t.yacc.Close(); err != nil {
		return err
	}
	t.x, t.y, t.vals = nil, nil, nil
	trackRelease()
	return nil
}
