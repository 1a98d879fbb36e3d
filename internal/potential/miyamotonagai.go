package potential

import "math"

// MiyamotoNagai is the flattened disk potential
// Phi(R, z) = -amp / sqrt(R^2 + (a + sqrt(z^2 + b^2))^2),
// with scale length a and scale height b.
type MiyamotoNagai struct {
	Amp float64
	A   float64
	B   float64
}

func NewMiyamotoNagai(amp, a, b float64) *MiyamotoNagai {
	return &MiyamotoNagai{Amp: amp, A: a, B: b}
}

func (m *MiyamotoNagai) Evaluate(R, z float64) float64 {
	h := m.A + math.Sqrt(z*z+m.B*m.B)
	return -m.Amp / math.Sqrt(R*R+h*h)
}

func (m *MiyamotoNagai) Close() error { return nil }
