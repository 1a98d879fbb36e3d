package potential

// Type tags identify component variants in the packed wire format. The values
// are part of the on-disk and cross-language contract and must not be
// renumbered.
const (
	TypePointMass = iota
	TypeMiyamotoNagai
	TypeLogHalo
	TypeNFW
	TypeInterp
)

// Component is one term of a summed axisymmetric potential. Evaluate returns
// the potential at cylindrical coordinates (R, z). Close releases any owned
// lookup resources; for closed-form components it is a no-op.
type Component interface {
	Evaluate(R, z float64) float64
	Close() error
}
