// Package units provides ready-made unit systems built on the scales
// engine, so common reference systems don't need to be assembled by
// hand at every call site.
//
// 🚀 What's in the catalogue?
//
//   - SI        — identity scales: the system IS the reference system
//   - CGS       — centimetre-gram-second, a mechanical system (Θ=1)
//   - Earth     — Earth radius + mean density, dynamical time scale
//   - Planetary — parametric Earth-like builder for arbitrary bodies
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dimens/units"
//
//	earth := units.Earth[float64]()
//	earth.TimeScale() // ≈ 930 s, the free-fall timescale
//
//	mars, err := units.Planetary(3.3895e6, 3.9335e3)
//	if err != nil { ... }
//
// Presets with fixed, known-good constants (SI, CGS, Earth) cannot
// fail and return the System directly; the parametric Planetary
// builder validates its inputs and returns an error like scales.New.
package units
