// Package grid builds sampling axes for field evaluation.
package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrAxisSize indicates an axis with fewer than two samples.
	ErrAxisSize = errors.New("grid: axis needs at least two samples")

	// ErrLogRange indicates a log axis with a non-positive bound.
	ErrLogRange = errors.New("grid: log axis bounds must be positive")
)

// Axis describes one sampling axis. Log selects logarithmic spacing, which
// suits radial coordinates spanning decades.
type Axis struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
	N   int     `yaml:"n"`
	Log bool    `yaml:"log"`
}

// Values materializes the axis samples.
func (a Axis) Values() ([]float64, error) {
	if a.N < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrAxisSize, a.N)
	}
	if a.Log {
		if a.Min <= 0 || a.Max <= 0 {
			return nil, fmt.Errorf("%w: [%g, %g]", ErrLogRange, a.Min, a.Max)
		}
		return Logspace(a.Min, a.Max, a.N), nil
	}
	return Linspace(a.Min, a.Max, a.N), nil
}

// Linspace returns n evenly spaced samples from min to max inclusive.
func Linspace(min, max float64, n int) []float64 {
	vals := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range vals {
		vals[i] = min + float64(i)*step
	}
	vals[n-1] = max
	return vals
}

// Logspace returns n log-spaced samples from min to max inclusive.
// min and max must be positive.
func Logspace(min, max float64, n int) []float64 {
	vals := Linspace(math.Log(min), math.Log(max), n)
	for i, v := range vals {
		vals[i] = math.Exp(v)
	}
	vals[n-1] = max
	return vals
}
