package potential

import "fmt"

// paramCounts declares how many packed parameters each closed-form tag
// consumes. TypeInterp is absent: its length is header-driven (see Interp).
var paramCounts = map[int]int{
	TypePointMass:     1,
	TypeMiyamotoNagai: 3,
	TypeLogHalo:       3,
	TypeNFW:           2,
}

// Build reconstructs live components from a flat spec: one type tag per
// component plus a single packed parameter buffer consumed positionally in
// tag order.
//
// Build fails with ErrUnknownType for an unrecognized tag and with
// ErrMalformedParams when the buffer is shorter than the tags require or has
// values left over after the last component. On any failure, every component
// already constructed is closed before returning; nothing partial escapes.
func Build(types []int, params []float64) ([]Component, error) {
	comps := make([]Component, 0, len(types))
	fail := func(err error) ([]Component, error) {
		Release(comps)
		return nil, err
	}

	pos := 0
	take := func(n int) ([]float64, bool) {
		if pos+n > len(params) {
			return nil, false
		}
		p := params[pos : pos+n]
		pos += n
		return p, true
	}

	for i, tag := range types {
		var (
			c   Component
			err error
		)
		switch tag {
		case TypePointMass, TypeMiyamotoNagai, TypeLogHalo, TypeNFW:
			p, ok := take(paramCounts[tag])
			if !ok {
				return fail(fmt.Errorf("%w: component %d (%s) needs %d params, %d left",
					ErrMalformedParams, i, NameFor(tag), paramCounts[tag], len(params)-pos))
			}
			switch tag {
			case TypePointMass:
				c = NewPointMass(p[0])
			case TypeMiyamotoNagai:
				c = NewMiyamotoNagai(p[0], p[1], p[2])
			case TypeLogHalo:
				c = NewLogHalo(p[0], p[1], p[2])
			case TypeNFW:
				c = NewNFW(p[0], p[1])
			}
		case TypeInterp:
			c, err = buildInterp(i, take, func() int { return len(params) - pos })
			if err != nil {
				return fail(err)
			}
		default:
			return fail(fmt.Errorf("%w: tag %d at component %d", ErrUnknownType, tag, i))
		}
		comps = append(comps, c)
	}

	if pos != len(params) {
		return fail(fmt.Errorf("%w: %d unconsumed parameter values", ErrMalformedParams, len(params)-pos))
	}
	return comps, nil
}

// buildInterp consumes the header-driven interp payload: nR, nz, R axis,
// z axis, row-major grid values. left reports how many packed values remain.
func buildInterp(idx int, take func(int) ([]float64, bool), left func() int) (Component, error) {
	header, ok := take(2)
	if !ok {
		return nil, fmt.Errorf("%w: component %d (interp) missing grid header", ErrMalformedParams, idx)
	}
	nR, nz := int(header[0]), int(header[1])
	if nR < 2 || nz < 2 || float64(nR) != header[0] || float64(nz) != header[1] {
		return nil, fmt.Errorf("%w: component %d (interp) bad grid header %gx%g", ErrMalformedParams, idx, header[0], header[1])
	}
	// Bound the dimensions by the remaining buffer before any size
	// arithmetic, so nR+nz+nR*nz cannot overflow on a hostile header.
	if rem := left(); nR > rem || nz > rem/nR {
		return nil, fmt.Errorf("%w: component %d (interp) declares %dx%d grid with %d values left", ErrMalformedParams, idx, nR, nz, rem)
	}
	payload, ok := take(nR + nz + nR*nz)
	if !ok {
		return nil, fmt.Errorf("%w: component %d (interp) needs %d grid values", ErrMalformedParams, idx, nR+nz+nR*nz)
	}
	c, err := NewInterp(payload[:nR], payload[nR:nR+nz], payload[nR+nz:])
	if err != nil {
		return nil, fmt.Errorf("%w: component %d (interp): %v", ErrMalformedParams, idx, err)
	}
	return c, nil
}

// Release closes every component exactly once. Safe on a nil or empty slice.
// Callers must not use the components afterwards.
func Release(comps []Component) {
	for _, c := range comps {
		// Close errors on teardown have no caller-visible remedy; the
		// instrumented counters in package interp surface lifecycle bugs.
		_ = c.Close()
	}
}
