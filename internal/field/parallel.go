package field

import (
	"context"
	"runtime"
	"sync"

	"github.com/san-kum/galpot/internal/potential"
)

// ParallelGrid computes the same result as CalcPotential, splitting grid rows
// across workers. Each worker builds its own components from the spec, since
// a component slice cannot be shared across goroutines. Workers write to
// disjoint row ranges of out, so no synchronization of the buffer is needed.
//
// workers <= 0 selects GOMAXPROCS. A canceled context abandons remaining rows
// and returns ctx.Err(); already-written rows are left in out.
func ParallelGrid(ctx context.Context, Rs, zs []float64, types []int, params []float64, out []float64, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(Rs) {
		workers = len(Rs)
	}
	if workers <= 1 {
		return CalcPotential(Rs, zs, types, params, out)
	}

	// Validate the spec once up front so a malformed spec fails before any
	// worker writes output.
	probe, err := potential.Build(types, params)
	if err != nil {
		return err
	}
	potential.Release(probe)

	errs := make([]error, workers)
	var wg sync.WaitGroup
	chunk := (len(Rs) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(Rs) {
			hi = len(Rs)
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()

			comps, err := potential.Build(types, params)
			if err != nil {
				errs[w] = err
				return
			}
			defer potential.Release(comps)

			row := make([]float64, len(zs))
			for r := lo; r < hi; r++ {
				select {
				case <-ctx.Done():
					errs[w] = ctx.Err()
					return
				default:
				}
				for c, z := range zs {
					row[c] = Sum(comps, Rs[r], z)
				}
				WriteRow(out, r, row)
			}
		}(w, lo, hi)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
