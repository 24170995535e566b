// SPDX-License-Identifier: MIT
// Package: dimens/scales
//
// errors.go — sentinel errors for the scales package.

package scales

import "errors"

// Sentinel errors for unit-system construction.
//
// Error policy (matching the rest of the library):
//   - Only package-level sentinels are exposed.
//   - Callers branch with errors.Is(err, ErrX); never match strings.
//   - Constructors attach context (which scale, what value) via %w wrapping.
//   - Queries never fail: all validation happens in New / FromProvider.
var (
	// ErrNonPositiveScale indicates a supplied base scale is zero, negative,
	// NaN or infinite. Scale factors are ratios of positive magnitudes.
	ErrNonPositiveScale = errors.New("scales: base scale must be positive and finite")

	// ErrNoMassOrDensity indicates neither WithMass nor WithDensity was
	// supplied. One of the two is required to complete the base set.
	ErrNoMassOrDensity = errors.New("scales: one of mass or density scale is required")

	// ErrAmbiguousBase indicates both WithMass and WithDensity were supplied.
	// The engine refuses to guess which one anchors the system.
	ErrAmbiguousBase = errors.New("scales: mass and density scales are mutually exclusive")

	// ErrNilProvider indicates FromProvider received a nil collaborator.
	ErrNilProvider = errors.New("scales: provider must be non-nil")
)
