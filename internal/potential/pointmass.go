package potential

import "math"

// PointMass is the Kepler potential of a point mass at the origin,
// Phi(R, z) = -amp / sqrt(R^2 + z^2).
type PointMass struct {
	Amp float64
}

func NewPointMass(amp float64) *PointMass {
	return &PointMass{Amp: amp}
}

func (p *PointMass) Evaluate(R, z float64) float64 {
	return -p.Amp / math.Sqrt(R*R+z*z)
}

func (p *PointMass) Close() error { return nil }
