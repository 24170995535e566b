package scales_test

import (
	"testing"

	"github.com/katalvlaran/dimens/scales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// earthProvider exposes the minimal capability set: length + density.
// Time and temperature fall through to the engine defaults.
type earthProvider struct{}

func (earthProvider) LengthScale() float64  { return 6.371e6 }
func (earthProvider) DensityScale() float64 { return 5.514e3 }

// labProvider exposes every capability explicitly.
type labProvider struct{}

func (labProvider) LengthScale() float64      { return 2.0 }
func (labProvider) MassScale() float64        { return 3.0 }
func (labProvider) TimeScale() float64        { return 4.0 }
func (labProvider) TemperatureScale() float64 { return 300.0 }

// ambiguousProvider exposes both mass and density, which the engine
// must refuse.
type ambiguousProvider struct{}

func (ambiguousProvider) LengthScale() float64  { return 2.0 }
func (ambiguousProvider) MassScale() float64    { return 3.0 }
func (ambiguousProvider) DensityScale() float64 { return 0.375 }

// bareProvider exposes length only.
type bareProvider struct{}

func (bareProvider) LengthScale() float64 { return 2.0 }

// TestFromProvider_MinimalCapabilities builds from length + density and
// expects the same system New would produce.
func TestFromProvider_MinimalCapabilities(t *testing.T) {
	sys, err := scales.FromProvider[float64](earthProvider{})
	require.NoError(t, err)

	want, err := scales.New(6.371e6, scales.WithDensity(5.514e3))
	require.NoError(t, err)

	assert.Equal(t, want, sys, "provider path must match the options path")
	assert.Equal(t, want.TimeScale(), sys.TimeScale(), "dynamical default applies when TimeScale is absent")
}

// TestFromProvider_FullCapabilities verifies every optional capability
// is detected and used.
func TestFromProvider_FullCapabilities(t *testing.T) {
	sys, err := scales.FromProvider[float64](labProvider{})
	require.NoError(t, err)

	assert.Equal(t, 2.0, sys.LengthScale())
	assert.Equal(t, 3.0, sys.MassScale())
	assert.Equal(t, 0.375, sys.DensityScale(), "density derived from provider mass")
	assert.Equal(t, 4.0, sys.TimeScale())
	assert.Equal(t, 300.0, sys.TemperatureScale())
}

// TestFromProvider_AmbiguousCapabilities expects ErrAmbiguousBase when
// a provider exposes both MassScale and DensityScale.
func TestFromProvider_AmbiguousCapabilities(t *testing.T) {
	_, err := scales.FromProvider[float64](ambiguousProvider{})
	assert.ErrorIs(t, err, scales.ErrAmbiguousBase, "mass+density provider must be rejected")
}

// TestFromProvider_MissingCapability expects ErrNoMassOrDensity for a
// length-only provider.
func TestFromProvider_MissingCapability(t *testing.T) {
	_, err := scales.FromProvider[float64](bareProvider{})
	assert.ErrorIs(t, err, scales.ErrNoMassOrDensity, "length-only provider cannot complete the base set")
}

// TestFromProvider_NilProvider expects ErrNilProvider.
func TestFromProvider_NilProvider(t *testing.T) {
	_, err := scales.FromProvider[float64](nil)
	assert.ErrorIs(t, err, scales.ErrNilProvider)
}
