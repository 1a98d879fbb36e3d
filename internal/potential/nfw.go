package potential

import "math"

// NFW is the Navarro-Frenk-White halo potential
// Phi(r) = -amp * ln(1 + r/a) / r with r = sqrt(R^2 + z^2).
type NFW struct {
	Amp float64
	A   float64
}

func NewNFW(amp, a float64) *NFW {
	return &NFW{Amp: amp, A: a}
}

func (n *NFW) Evaluate(R, z float64) float64 {
	r := math.Sqrt(R*R + z*z)
	if r == 0 {
		// Limit of -amp*ln(1+r/a)/r as r -> 0.
		return -n.Amp / n.A
	}
	return -n.Amp * math.Log(1+r/n.A) / r
}

func (n *NFW) Close() error { return nil }
