package units

import "github.com/katalvlaran/dimens/scales"

// SI returns the identity system: every scale factor is 1, so system
// units and reference units coincide.
func SI[R scales.Real]() scales.System[R] {
	return must(scales.New[R](1,
		scales.WithMass[R](1),
		scales.WithTime[R](1),
		scales.WithTemperature[R](1),
	))
}

// CGS returns the centimetre-gram-second system as a mechanical system
// (temperature scale 1). Its force and energy scales are the familiar
// dyne→newton (1e-5) and erg→joule (1e-7) factors.
func CGS[R scales.Real]() scales.System[R] {
	return must(scales.NewMechanical[R](CentimetreInMetres,
		scales.WithMass[R](GramInKilograms),
		scales.WithTime[R](1),
	))
}

// Earth returns an Earth-like system: length = volumetric mean radius,
// density = mean density, time = the derived free-fall timescale,
// temperature = the derived thermal scale.
func Earth[R scales.Real]() scales.System[R] {
	return must(Planetary[R](EarthRadiusMetres, EarthMeanDensity))
}

// Planetary builds a system for a self-gravitating body from its
// radius and mean density (both in reference units). Time defaults to
// the dynamical timescale and temperature to the thermal scale; both
// can be overridden through opts.
func Planetary[R scales.Real](radius, density R, opts ...scales.Option[R]) (scales.System[R], error) {
	base := append([]scales.Option[R]{scales.WithDensity(density)}, opts...)

	return scales.New(radius, base...)
}

// must unwraps a preset construction that cannot fail: the catalogue
// constants are positive and complete, so an error here is a
// programmer mistake in this package.
func must[R scales.Real](s scales.System[R], err error) scales.System[R] {
	if err != nil {
		panic(err)
	}

	return s
}
