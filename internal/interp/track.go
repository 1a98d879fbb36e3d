package interp

import "sync/atomic"

// Allocation accounting for tables and accelerators. Tests compare the two
// counters to prove every acquired resource is released exactly once,
// including on failed construction paths.
var (
	allocCount   atomic.Int64
	releaseCount atomic.Int64
)

func trackAlloc()   { allocCount.Add(1) }
func trackRelease() { releaseCount.Add(1) }

// TrackCounts returns the cumulative allocation and release counts.
func TrackCounts() (allocs, releases int64) {
	return allocCount.Load(), releaseCount.Load()
}

// ResetTrackCounts zeroes both counters. Intended for test setup.
func ResetTrackCounts() {
	allocCount.Store(0)
	releaseCount.Store(0)
}
