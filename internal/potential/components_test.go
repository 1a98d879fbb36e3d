package potential

import (
	"math"
	"testing"
)

func TestPointMass(t *testing.T) {
	p := NewPointMass(1.0)

	if got := p.Evaluate(1, 0); math.Abs(got-(-1.0)) > 1e-15 {
		t.Errorf("Evaluate(1,0) = %g, want -1", got)
	}
	if got := p.Evaluate(3, 4); math.Abs(got-(-0.2)) > 1e-15 {
		t.Errorf("Evaluate(3,4) = %g, want -0.2", got)
	}
}

func TestMiyamotoNagai(t *testing.T) {
	m := NewMiyamotoNagai(1.0, 1.0, 1.0)

	// At z=0: Phi = -1/sqrt(R^2 + (1 + 1)^2).
	want := -1.0 / math.Sqrt(1+4)
	if got := m.Evaluate(1, 0); math.Abs(got-want) > 1e-15 {
		t.Errorf("Evaluate(1,0) = %g, want %g", got, want)
	}

	// b -> 0, a -> 0 reduces to a point mass.
	pm := NewMiyamotoNagai(1.0, 0, 0)
	if got, want := pm.Evaluate(2, 0), -0.5; math.Abs(got-want) > 1e-15 {
		t.Errorf("degenerate disk = %g, want %g", got, want)
	}
}

func TestLogHalo(t *testing.T) {
	l := NewLogHalo(1.0, 0.0, 1.0)

	// Phi(R, 0) = ln(R) for amp=1, core=0, q=1.
	if got, want := l.Evaluate(math.E, 0), 1.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Evaluate(e,0) = %g, want %g", got, want)
	}

	// Flattening: q < 1 raises the potential off the midplane.
	flat := NewLogHalo(1.0, 0.0, 0.5)
	if flat.Evaluate(1, 1) <= l.Evaluate(1, 1) {
		t.Error("flattened halo should be larger off-plane")
	}
}

func TestNFWCenterLimit(t *testing.T) {
	n := NewNFW(2.0, 4.0)

	if got, want := n.Evaluate(0, 0), -0.5; math.Abs(got-want) > 1e-15 {
		t.Errorf("center limit = %g, want %g", got, want)
	}

	// Approaching the center continuously.
	near := n.Evaluate(1e-8, 0)
	if math.Abs(near-(-0.5)) > 1e-6 {
		t.Errorf("near-center value %g should approach -0.5", near)
	}
}
