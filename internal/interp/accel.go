package interp

// Accel caches the interval index of the most recent lookup on one axis.
// Repeated queries at nearby coordinates (the common case when sweeping a
// grid) then resolve in O(1) instead of a fresh binary search.
//
// Find mutates the cache, so an Accel must not be shared across goroutines.
type Accel struct {
	cache  int
	hits   int
	misses int
	closed bool
}

func NewAccel() *Accel {
	trackAlloc()
	return &Accel{}
}

// Find returns i such that axis[i] <= x < axis[i+1], clamping to the first or
// last interval when x lies outside the axis range. axis must be strictly
// increasing with at least two entries.
func (a *Accel) Find(axis []float64, x float64) int {
	last := len(axis) - 2

	if a.cache > last {
		a.cache = last
	}

	// Fast path: still inside the cached interval.
	if x >= axis[a.cache] && x < axis[a.cache+1] {
		a.hits++
		return a.cache
	}
	a.misses++

	lo, hi := 0, last
	switch {
	case x < axis[0]:
		a.cache = 0
	case x >= axis[len(axis)-1]:
		a.cache = last
	default:
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if x < axis[mid] {
				hi = mid - 1
			} else {
				lo = mid
			}
		}
		a.cache = lo
	}
	return a.cache
}

// Stats reports cache hits and misses since creation.
func (a *Accel) Stats() (hits, misses int) {
	return a.hits, a.misses
}

// Close releases the accelerator. Closing twice is an error surfaced through
// ErrClosed so lifecycle bugs show up in tests rather than as silent reuse.
func (a *Accel) Close() error {
	if a.closed {
		return ErrClosed
	}
	a.closed = true
	trackRelease()
	return nil
}
