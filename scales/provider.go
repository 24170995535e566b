package scales

import "fmt"

// Provider is the capability contract a unit-system collaborator
// implements to feed the engine. Only LengthScale is required; the
// optional capabilities below are detected per-value by interface
// assertion:
//
//	MassScale() R         — supplies M directly (exclusive with DensityScale)
//	DensityScale() R      — supplies ρ directly (exclusive with MassScale)
//	TimeScale() R         — supplies T, suppressing the dynamical default
//	TemperatureScale() R  — supplies Θ, suppressing the thermal default
//
// All capabilities of one provider must return the same Real type.
type Provider[R Real] interface {
	// LengthScale returns the base length scale. Required; no default.
	LengthScale() R
}

// FromProvider builds a System from a collaborator object, reading each
// capability the provider exposes and completing the rest per the New
// rules. A provider exposing both MassScale and DensityScale is
// rejected with ErrAmbiguousBase, one exposing neither with
// ErrNoMassOrDensity.
//
// Example:
//
//	type earth struct{}
//	func (earth) LengthScale() float64  { return 6.371e6 }
//	func (earth) DensityScale() float64 { return 5.514e3 }
//
//	sys, err := scales.FromProvider[float64](earth{})
func FromProvider[R Real](p Provider[R]) (System[R], error) {
	if p == nil {
		return System[R]{}, fmt.Errorf("FromProvider: %w", ErrNilProvider)
	}

	var opts []Option[R]
	if mp, ok := p.(interface{ MassScale() R }); ok {
		opts = append(opts, WithMass(mp.MassScale()))
	}
	if dp, ok := p.(interface{ DensityScale() R }); ok {
		opts = append(opts, WithDensity(dp.DensityScale()))
	}
	if tp, ok := p.(interface{ TimeScale() R }); ok {
		opts = append(opts, WithTime(tp.TimeScale()))
	}
	if hp, ok := p.(interface{ TemperatureScale() R }); ok {
		opts = append(opts, WithTemperature(hp.TemperatureScale()))
	}

	return New(p.LengthScale(), opts...)
}
