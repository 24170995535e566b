// Package dimens turns a handful of base scale values into a complete,
// consistent non-dimensional unit system — length in, every mechanical
// and thermodynamic scale factor out.
//
// 🚀 What is dimens?
//
//	A small, pure-Go dimensional-analysis library that brings together:
//		• Base-set completion: supply length plus mass OR density; the
//		  missing one, the time scale and the temperature scale are derived
//		• Derived scales: velocity, acceleration, force, traction, moment,
//		  potential, energy — closed-form monomials over the base set
//		• Non-dimensional constants: G and kB re-expressed in your system
//		• Preset catalogues: SI, CGS, Earth-like planetary systems
//
// ✨ Why choose dimens?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable systems, pure queries, safe to
//     share across goroutines without locks
//   - Pure Go – no cgo, no hidden deps
//   - Generic – pick float32 or float64 per unit system
//
// Under the hood, everything is organized under two subpackages:
//
//	scales/ — the scale-derivation engine: System, options, queries
//	units/  — ready-made reference systems built on scales
//
// Quick example:
//
//	sys, err := scales.New(2.0, scales.WithMass(3.0), scales.WithTime(4.0))
//	if err != nil { ... }
//	sys.VelocityScale() // 0.5
//	sys.ForceScale()    // 0.375
//
// Dive into README.md for full examples and the formula catalogue.
//
//	go get github.com/katalvlaran/dimens/scales
package dimens
