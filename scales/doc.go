// Package scales derives a complete set of physical scale factors from a
// minimal set of user-supplied base scales, producing a non-dimensional
// unit system anchored to a reference system such as SI.
//
// 🚀 What is a scale engine?
//
//	Non-dimensionalisation expresses physical quantities as pure numbers
//	by dividing them by characteristic reference magnitudes.  Pick a
//	length scale and a mass (or density) scale, and every other scale
//	follows algebraically.  It's the standard preparation step in:
//	  • Geophysical & astrophysical simulation
//	  • Fluid dynamics and convection codes
//	  • Any solver that wants O(1) numbers instead of 1e24 kilograms
//
// ✨ Key features:
//   - minimal input: length + exactly one of mass / density
//   - automatic completion: M = ρ·L³ or ρ = M/L³
//   - dynamical time default: T = 1/√(π·G·ρ) when no time scale is given
//   - thermal temperature default: Θ = E/kB when no temperature is given
//   - derived scales: velocity, acceleration, force, traction, moment,
//     potential, energy — all pure monomials over the base set
//   - non-dimensional G and kB for the resulting system
//   - generic over float32 / float64
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dimens/scales"
//
//	// Earth-like system: radius + mean density, time & temperature derived.
//	sys, err := scales.New(6.371e6, scales.WithDensity(5.514e3))
//	if err != nil {
//	  // handle ErrNoMassOrDensity, ErrAmbiguousBase, ErrNonPositiveScale
//	}
//	t := sys.TimeScale()            // ≈ 930 s, the dynamical timescale
//	g := sys.GravitationalConstant() // G in system units
//
// A System is an immutable value: every query is a pure, idempotent
// computation over the completed base set, so a single System may be
// shared across goroutines without synchronization.
//
// Construction is the only place errors can occur.  Supplying both mass
// and density, neither of them, or any non-positive / non-finite scale
// is rejected with a sentinel error; after New succeeds, every query
// returns a finite value for physically sensible inputs.
//
// See examples in example_test.go for SI, CGS and planetary systems.
package scales
