package scales

import (
	"fmt"
	"math"
)

// System — completed non-dimensional unit system
//
// Description:
//
//	A System holds the five completed base scales {length L, mass M,
//	density ρ, time T, temperature Θ}, each the ratio "one unit of this
//	system / one unit of the reference system".  Every derived scale is
//	a fixed monomial over the base set, recomputed per query.
//
// Completion rules (applied once, in New):
//  1. L is required and never derived.
//  2. Exactly one of {M, ρ} is supplied; the other follows from
//     M = ρ·L³ (mass = density × volume).
//  3. T, if absent, defaults to 1/√(π·G·ρ) — the dynamical (free-fall)
//     timescale of a self-gravitating body of density ρ.
//  4. Θ, if absent, defaults to E/kB with E = M·(L/T)², so that one
//     unit of thermal energy kB·Θ equals one unit of system energy.
//
// Derived-scale catalogue:
//
//	velocity V = L/T        acceleration A = V/T    force F = M·A
//	traction F/L²           moment F·L              potential A·L
//	energy E = M·V²         G' = G·ρ·T²             kB' = kB·Θ/E
//
// Guarantees:
//   - Immutable after New; queries are pure and bit-identical per call.
//   - Safe for unsynchronized concurrent use.
//   - O(1) time, zero allocations per query.
//
// Errors (construction only):
//   - ErrNonPositiveScale — a supplied scale is ≤0, NaN or ±Inf.
//   - ErrNoMassOrDensity  — neither WithMass nor WithDensity given.
//   - ErrAmbiguousBase    — both WithMass and WithDensity given.
type System[R Real] struct {
	length      R
	mass        R
	density     R
	time        R
	temperature R
}

// New builds a System from a required length scale and optional base
// scales, completing the missing ones per the rules above.
//
// Exactly one of WithMass / WithDensity must be supplied. WithTime and
// WithTemperature are independently optional.
//
// Example:
//
//	sys, err := scales.New(6.371e6, scales.WithDensity(5.514e3))
func New[R Real](length R, opts ...Option[R]) (System[R], error) {
	var cfg baseConfig[R]
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := checkPositive("length", length); err != nil {
		return System[R]{}, err
	}
	switch {
	case cfg.hasMass && cfg.hasDensity:
		return System[R]{}, fmt.Errorf("New: both WithMass and WithDensity supplied: %w", ErrAmbiguousBase)
	case !cfg.hasMass && !cfg.hasDensity:
		return System[R]{}, fmt.Errorf("New: %w", ErrNoMassOrDensity)
	}

	s := System[R]{length: length}
	volume := length * length * length
	if cfg.hasDensity {
		if err := checkPositive("density", cfg.density); err != nil {
			return System[R]{}, err
		}
		s.density = cfg.density
		s.mass = s.density * volume
	} else {
		if err := checkPositive("mass", cfg.mass); err != nil {
			return System[R]{}, err
		}
		s.mass = cfg.mass
		s.density = s.mass / volume
	}

	if cfg.hasTime {
		if err := checkPositive("time", cfg.time); err != nil {
			return System[R]{}, err
		}
		s.time = cfg.time
	} else {
		// Dynamical timescale of a self-gravitating body: T = 1/√(π·G·ρ).
		s.time = 1 / sqrt(R(math.Pi)*R(GravitationalConstantSI)*s.density)
	}

	if cfg.hasTemperature {
		if err := checkPositive("temperature", cfg.temperature); err != nil {
			return System[R]{}, err
		}
		s.temperature = cfg.temperature
	} else {
		// Thermal default: Θ = E/kB over the now-complete mechanical set.
		s.temperature = s.EnergyScale() / R(BoltzmannConstantSI)
	}

	return s, nil
}

// NewMechanical builds a System for purely mechanical problems: the
// temperature scale is pinned to 1 unless an explicit WithTemperature
// overrides it. Otherwise identical to New.
func NewMechanical[R Real](length R, opts ...Option[R]) (System[R], error) {
	pinned := append([]Option[R]{WithTemperature[R](1)}, opts...)

	return New(length, pinned...)
}

// Base-scale queries: the completed base set.

// LengthScale returns the base length scale L.
func (s System[R]) LengthScale() R { return s.length }

// MassScale returns the mass scale M, supplied or derived as ρ·L³.
func (s System[R]) MassScale() R { return s.mass }

// DensityScale returns the density scale ρ, supplied or derived as M/L³.
func (s System[R]) DensityScale() R { return s.density }

// TimeScale returns the time scale T, supplied or the dynamical default.
func (s System[R]) TimeScale() R { return s.time }

// TemperatureScale returns the temperature scale Θ, supplied or the
// thermal default.
func (s System[R]) TemperatureScale() R { return s.temperature }

// Derived-scale queries: pure monomials over the base set.

// VelocityScale returns V = L/T.
func (s System[R]) VelocityScale() R { return s.length / s.time }

// AccelerationScale returns A = V/T.
func (s System[R]) AccelerationScale() R { return s.VelocityScale() / s.time }

// ForceScale returns F = M·A.
func (s System[R]) ForceScale() R { return s.mass * s.AccelerationScale() }

// TractionScale returns the stress scale F/L².
func (s System[R]) TractionScale() R { return s.ForceScale() / (s.length * s.length) }

// MomentScale returns the torque scale F·L.
func (s System[R]) MomentScale() R { return s.ForceScale() * s.length }

// PotentialScale returns the gravitational-potential scale A·L.
func (s System[R]) PotentialScale() R { return s.AccelerationScale() * s.length }

// EnergyScale returns E = M·V².
func (s System[R]) EnergyScale() R {
	v := s.VelocityScale()

	return s.mass * v * v
}

// GravitationalConstant returns Newton's constant expressed in system
// units: G' = G·ρ·T².
func (s System[R]) GravitationalConstant() R {
	return R(GravitationalConstantSI) * s.density * s.time * s.time
}

// BoltzmannConstant returns the Boltzmann constant expressed in system
// units: kB' = kB·Θ/E. Equal to 1 when Θ uses the thermal default.
func (s System[R]) BoltzmannConstant() R {
	return R(BoltzmannConstantSI) * s.temperature / s.EnergyScale()
}

// checkPositive rejects non-positive and non-finite scale values with
// ErrNonPositiveScale, naming the offending scale.
func checkPositive[R Real](name string, v R) error {
	f := float64(v)
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("New: %s scale %v: %w", name, v, ErrNonPositiveScale)
	}

	return nil
}

// sqrt computes √x in the working precision.
func sqrt[R Real](x R) R {
	return R(math.Sqrt(float64(x)))
}
