package potential

import "math"

// LogHalo is the logarithmic halo potential
// Phi(R, z) = amp/2 * ln(R^2 + (z/q)^2 + core^2),
// which yields a flat rotation curve at large R. q flattens the halo in z.
type LogHalo struct {
	Amp  float64
	Core float64
	Q    float64
}

func NewLogHalo(amp, core, q float64) *LogHalo {
	return &LogHalo{Amp: amp, Core: core, Q: q}
}

func (l *LogHalo) Evaluate(R, z float64) float64 {
	zq := z / l.Q
	return 0.5 * l.Amp * math.Log(R*R+zq*zq+l.Core*l.Core)
}

func (l *LogHalo) Close() error { return nil }
