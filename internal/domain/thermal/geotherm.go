// Package thermal computes temperature against depth: the steady-state
// conductive geotherm and the empirical reference curves drawn next to it.
package thermal

import (
	"fmt"

	"github.com/okian/envelopes/internal/domain/model"
	"github.com/okian/envelopes/internal/domain/physics"
)

// Geotherm defaults.
const (
	DefaultMeshPoints  = 1 << 12
	DefaultSurfaceTemp = 280.65 // K, 7.5 °C as measured in the KTB borehole
)

// SteadyState applies the Turcotte and Schubert (1982) conductive solution
// with linear heat production to depths z (km), relative to a reference
// depth zRef at temperature tRef (K):
//
//	T(z) = tRef + (Jq/K)(z - zRef) - (A/2K)(z - zRef)²
//
// With Jq in mW/m², A in µW/m³ and z in km the result is in K.
func SteadyState(zRef, tRef float64, z []float64, layer model.ThermalLayer) []float64 {
	out := make([]float64, len(z))
	g := layer.Jq / layer.K
	c := layer.A / (2 * layer.K)
	for i, zi := range z {
		dz := zi - zRef
		out[i] = tRef + g*dz - c*dz*dz
	}
	return out
}

// GeothermInput configures a two-layer (crust, lithospheric mantle) model.
type GeothermInput struct {
	Points      int
	Horizons    model.Horizons
	SurfaceTemp float64 // K
	Crust       model.ThermalLayer
	Mantle      model.ThermalLayer
}

// DefaultGeothermInput returns the reference continental lithosphere model.
func DefaultGeothermInput() GeothermInput {
	return GeothermInput{
		Points:      DefaultMeshPoints,
		Horizons:    model.DefaultHorizons(),
		SurfaceTemp: DefaultSurfaceTemp,
		Crust:       model.DefaultCrust(),
		Mantle:      model.DefaultMantle(),
	}
}

// Report summarizes a geotherm for the console.
type Report struct {
	MohoTemp       float64 // °C at the deepest crust sample
	LABTemp        float64 // °C at the lithosphere base
	CrustGradient  float64 // K/km
	MantleGradient float64 // K/km
}

// Geotherm is a temperature profile (K) from the surface to the LAB.
type Geotherm struct {
	Profile model.Profile
	Report  Report
}

// Celsius returns the profile converted to °C.
func (g Geotherm) Celsius() model.Profile { return g.Profile.Map(physics.ToCelsius) }

// NewGeotherm builds the steady-state geotherm on an even mesh from 0 to the
// LAB. The crust (z <= Moho) starts at the surface temperature; the mantle
// segment is anchored at the last crust sample, so temperature is continuous
// across the Moho while heat flux is not matched.
func NewGeotherm(in GeothermInput) (Geotherm, error) {
	h := in.Horizons
	if err := h.Validate(); err != nil {
		return Geotherm{}, err
	}
	if in.SurfaceTemp <= 0 {
		return Geotherm{}, fmt.Errorf("%w: surface temperature must be positive, got %g K", model.ErrDomainPrecondition, in.SurfaceTemp)
	}
	if in.Crust.K <= 0 || in.Mantle.K <= 0 {
		return Geotherm{}, fmt.Errorf("%w: thermal conductivity must be positive", model.ErrInvalidArgument)
	}
	mesh, err := physics.Mesh(0, h.LAB, in.Points)
	if err != nil {
		return Geotherm{}, err
	}

	split := 0
	for split < len(mesh) && mesh[split] <= h.Moho {
		split++
	}
	crust := SteadyState(0, in.SurfaceTemp, mesh[:split], in.Crust)
	zRef, tRef := mesh[split-1], crust[split-1]
	mantle := SteadyState(zRef, tRef, mesh[split:], in.Mantle)

	temps := make([]float64, 0, len(mesh))
	temps = append(temps, crust...)
	temps = append(temps, mantle...)

	return Geotherm{
		Profile: model.Profile{Depth: mesh, Value: temps},
		Report: Report{
			MohoTemp:       physics.ToCelsius(tRef),
			LABTemp:        physics.ToCelsius(temps[len(temps)-1]),
			CrustGradient:  in.Crust.Gradient(),
			MantleGradient: in.Mantle.Gradient(),
		},
	}, nil
}
