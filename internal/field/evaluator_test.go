package field

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/galpot/internal/potential"
)

func TestCalcPotentialPointMassGrid(t *testing.T) {
	Rs := []float64{1.0, 2.0}
	zs := []float64{0.0, 1.0}
	out := make([]float64, 4)

	err := CalcPotential(Rs, zs, []int{potential.TypePointMass}, []float64{1.0}, out)
	if err != nil {
		t.Fatalf("CalcPotential failed: %v", err)
	}

	want := []float64{
		-1.0,                // (1, 0)
		-1.0 / math.Sqrt2,   // (1, 1)
		-0.5,                // (2, 0)
		-1.0 / math.Sqrt(5), // (2, 1)
	}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-15 {
			t.Errorf("out[%d] = %g, want %g", i, out[i], want[i])
		}
	}
}

func TestEvalPotentialDiagonal(t *testing.T) {
	// Paired mode over the same coordinates picks the grid's diagonal.
	Rs := []float64{1.0, 2.0}
	zs := []float64{0.0, 1.0}
	out := make([]float64, 2)

	err := EvalPotential(Rs, zs, []int{potential.TypePointMass}, []float64{1.0}, out)
	if err != nil {
		t.Fatalf("EvalPotential failed: %v", err)
	}

	want := []float64{-1.0, -1.0 / math.Sqrt(5)}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-15 {
			t.Errorf("out[%d] = %g, want %g", i, out[i], want[i])
		}
	}
}

func TestGridRowMajorLayout(t *testing.T) {
	Rs := []float64{0.5, 1.0, 1.5}
	zs := []float64{-1.0, 0.0, 1.0, 2.0}
	types := []int{potential.TypeMiyamotoNagai, potential.TypeNFW}
	params := []float64{1.0, 3.0, 0.3, 2.0, 16.0}

	out := make([]float64, len(Rs)*len(zs))
	if err := CalcPotential(Rs, zs, types, params, out); err != nil {
		t.Fatalf("CalcPotential failed: %v", err)
	}

	comps, err := potential.Build(types, params)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer potential.Release(comps)

	for r := range Rs {
		for c := range zs {
			want := Sum(comps, Rs[r], zs[c])
			if got := out[r*len(zs)+c]; got != want {
				t.Errorf("out[%d*nz+%d] = %g, want %g", r, c, got, want)
			}
		}
	}
}

func TestGridPointsConsistency(t *testing.T) {
	// Grid and paired modes agree at every shared coordinate.
	Rs := []float64{0.7, 1.3}
	zs := []float64{-0.4, 0.9}
	types := []int{potential.TypeLogHalo}
	params := []float64{1.0, 0.2, 0.8}

	gridOut := make([]float64, 4)
	if err := CalcPotential(Rs, zs, types, params, gridOut); err != nil {
		t.Fatalf("CalcPotential failed: %v", err)
	}

	for r := range Rs {
		for c := range zs {
			pointOut := make([]float64, 1)
			if err := EvalPotential([]float64{Rs[r]}, []float64{zs[c]}, types, params, pointOut); err != nil {
				t.Fatalf("EvalPotential failed: %v", err)
			}
			if pointOut[0] != gridOut[r*len(zs)+c] {
				t.Errorf("point (%g, %g): paired %g != grid %g", Rs[r], zs[c], pointOut[0], gridOut[r*len(zs)+c])
			}
		}
	}
}

func TestComponentOrderIndependence(t *testing.T) {
	forward := []int{potential.TypePointMass, potential.TypeNFW}
	fparams := []float64{1.0, 2.0, 16.0}
	reverse := []int{potential.TypeNFW, potential.TypePointMass}
	rparams := []float64{2.0, 16.0, 1.0}

	Rs := []float64{1.0, 2.5, 4.0}
	zs := []float64{0.0, 0.5, 1.5}

	a := make([]float64, 3)
	b := make([]float64, 3)
	if err := EvalPotential(Rs, zs, forward, fparams, a); err != nil {
		t.Fatalf("forward eval failed: %v", err)
	}
	if err := EvalPotential(Rs, zs, reverse, rparams, b); err != nil {
		t.Fatalf("reverse eval failed: %v", err)
	}

	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-14*math.Abs(a[i]) {
			t.Errorf("point %d: %g vs %g differ beyond rounding", i, a[i], b[i])
		}
	}
}

func TestFailedBuildWritesNothing(t *testing.T) {
	out := []float64{7, 7, 7, 7}

	err := CalcPotential([]float64{1, 2}, []float64{0, 1}, []int{-1}, []float64{1.0}, out)
	if !errors.Is(err, potential.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
	for i, v := range out {
		if v != 7 {
			t.Errorf("out[%d] = %g, buffer must be untouched on failure", i, v)
		}
	}

	err = EvalPotential([]float64{1, 2}, []float64{0, 1}, []int{potential.TypeNFW}, []float64{2.0}, out[:2])
	if !errors.Is(err, potential.ErrMalformedParams) {
		t.Fatalf("expected ErrMalformedParams, got %v", err)
	}
	for i, v := range out {
		if v != 7 {
			t.Errorf("out[%d] = %g, buffer must be untouched on failure", i, v)
		}
	}
}

func TestNaNPropagation(t *testing.T) {
	out := make([]float64, 1)
	err := EvalPotential([]float64{math.NaN()}, []float64{0}, []int{potential.TypePointMass}, []float64{1.0}, out)
	if err != nil {
		t.Fatalf("EvalPotential failed: %v", err)
	}
	if !math.IsNaN(out[0]) {
		t.Errorf("NaN input should propagate, got %g", out[0])
	}
}

func TestWriteRow(t *testing.T) {
	out := make([]float64, 6)
	WriteRow(out, 1, []float64{1, 2, 3})

	want := []float64{0, 0, 0, 1, 2, 3}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %g, want %g", i, out[i], want[i])
		}
	}
}
