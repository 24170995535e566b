// Package units defines the reference constants behind the preset
// systems, keeping magic numbers out of the constructors.
package units

// Earth figure parameters (IUGG mean values, SI units).
const (
	// EarthRadiusMetres is the volumetric mean radius of the Earth.
	EarthRadiusMetres = 6.371e6

	// EarthMeanDensity is the mean density of the Earth in kg·m⁻³.
	EarthMeanDensity = 5.514e3
)

// CGS base factors relative to SI.
const (
	// CentimetreInMetres is the CGS length unit expressed in metres.
	CentimetreInMetres = 1e-2

	// GramInKilograms is the CGS mass unit expressed in kilograms.
	GramInKilograms = 1e-3
)
