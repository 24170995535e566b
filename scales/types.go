// SPDX-License-Identifier: MIT

// Package scales: precision constraint, reference constants, and the
// functional options consumed by New. This file defines:
//   - Real (the floating-point precision a System is instantiated at),
//   - reference-system physical constants (documented, single source of truth),
//   - Option / baseConfig (functional options with presence tracking).
package scales

// Real is the set of floating-point precisions a System may use.
// float64 is the usual choice; float32 trades accuracy for footprint in
// large ensembles of systems.
type Real interface {
	~float32 | ~float64
}

// Reference-system physical constants (SI, CODATA 2018 values).
// Stored as untyped constants — i.e. at full precision — and converted
// to the working Real at the point of use, so a float32 System loses
// precision exactly once per query rather than once at construction.
const (
	// GravitationalConstantSI is Newton's gravitational constant G
	// in m³·kg⁻¹·s⁻².
	GravitationalConstantSI = 6.67430e-11

	// BoltzmannConstantSI is the Boltzmann constant kB in J·K⁻¹.
	// Exact by the 2019 SI redefinition.
	BoltzmannConstantSI = 1.380649e-23
)

// baseConfig accumulates optional base scales before completion.
// Presence flags distinguish "not supplied" from any numeric value, so
// defaulting never depends on sentinel magnitudes.
type baseConfig[R Real] struct {
	mass        R
	density     R
	time        R
	temperature R

	hasMass        bool
	hasDensity     bool
	hasTime        bool
	hasTemperature bool
}

// Option supplies one optional base scale to New. Repeating the same
// option overwrites the earlier value (last write wins); supplying both
// WithMass and WithDensity is rejected at construction.
type Option[R Real] func(*baseConfig[R])

// WithMass supplies the mass scale directly. The density scale is then
// derived as ρ = M/L³. Mutually exclusive with WithDensity.
func WithMass[R Real](m R) Option[R] {
	return func(c *baseConfig[R]) { c.mass, c.hasMass = m, true }
}

// WithDensity supplies the density scale directly. The mass scale is
// then derived as M = ρ·L³. Mutually exclusive with WithMass.
func WithDensity[R Real](rho R) Option[R] {
	return func(c *baseConfig[R]) { c.density, c.hasDensity = rho, true }
}

// WithTime supplies the time scale directly. When absent, New derives
// the dynamical timescale T = 1/√(π·G·ρ) of a self-gravitating body of
// the system's density.
func WithTime[R Real](t R) Option[R] {
	return func(c *baseConfig[R]) { c.time, c.hasTime = t, true }
}

// WithTemperature supplies the temperature scale directly. When absent,
// New derives Θ = E/kB, the temperature whose thermal energy kB·Θ
// equals the system's characteristic energy.
func WithTemperature[R Real](theta R) Option[R] {
	return func(c *baseConfig[R]) { c.temperature, c.hasTemperature = theta, true }
}
