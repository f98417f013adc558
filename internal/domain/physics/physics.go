// Package physics holds physical constants, unit conversions and the
// lithostatic helpers shared by the mechanical and thermal models.
package physics

import (
	"fmt"

	"github.com/okian/envelopes/internal/domain/model"
	"gonum.org/v1/gonum/floats"
)

// Physical constants.
const (
	G            = 9.80665     // standard gravity, m/s²
	R            = 8.314462618 // molar gas constant, J/mol/K
	KelvinOffset = 273.15

	metresPerKm   = 1000.0
	pascalsPerMPa = 1e6
)

// KmToM converts kilometres to metres.
func KmToM(z float64) float64 { return z * metresPerKm }

// PaToMPa converts pascals to megapascals.
func PaToMPa(p float64) float64 { return p / pascalsPerMPa }

// MPaToPa converts megapascals to pascals.
func MPaToPa(p float64) float64 { return p * pascalsPerMPa }

// ToCelsius converts an absolute temperature to °C.
func ToCelsius(k float64) float64 { return k - KelvinOffset }

// ToKelvin converts °C to an absolute temperature.
func ToKelvin(c float64) float64 { return c + KelvinOffset }

// Mesh returns n evenly spaced depths from low to high inclusive.
func Mesh(low, high float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: mesh needs at least 2 points, got %d", model.ErrInvalidArgument, n)
	}
	if high < low {
		return nil, fmt.Errorf("%w: mesh bounds reversed (%g > %g)", model.ErrInvalidArgument, low, high)
	}
	mesh := floats.Span(make([]float64, n), low, high)
	return mesh, nil
}

// Density returns the mean density of the column above depth z (km): the
// crust density down to the Moho, then a thickness-weighted mix of crust and
// mantle densities.
func Density(z float64, h model.Horizons) float64 {
	if z <= h.Moho {
		return h.RhoCrust
	}
	return (h.Moho/z)*h.RhoCrust + ((z-h.Moho)/z)*h.RhoMantle
}

// LithostaticPressure returns the vertical load at depth z (km) in Pa.
func LithostaticPressure(z float64, h model.Horizons) float64 {
	return Density(z, h) * G * KmToM(z)
}

// Overburden returns ρ(z)·g·z with z left in km. Olivine activation volumes
// are applied to this load rather than to the pressure in Pa.
func Overburden(z float64, h model.Horizons) float64 {
	return Density(z, h) * G * z
}
