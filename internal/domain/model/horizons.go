package model

import "fmt"

// Default lithosphere configuration.
const (
	DefaultMohoKm    = 34.4 // average continental crust thickness (Huang et al., 2013)
	DefaultLABKm     = 81.0 // beneath tectonically altered regions (Rychert and Shearer, 2009)
	DefaultRhoCrust  = 2750.0
	DefaultRhoMantle = 3330.0
)

// Horizons is the shared lithosphere configuration: the crust/mantle and
// lithosphere/asthenosphere boundaries plus the layer densities. It is a
// value; every profile computation receives it explicitly.
type Horizons struct {
	Moho      float64 // km
	LAB       float64 // km
	RhoCrust  float64 // kg/m³
	RhoMantle float64 // kg/m³
}

// DefaultHorizons returns the reference continental lithosphere.
func DefaultHorizons() Horizons {
	return Horizons{
		Moho:      DefaultMohoKm,
		LAB:       DefaultLABKm,
		RhoCrust:  DefaultRhoCrust,
		RhoMantle: DefaultRhoMantle,
	}
}

// Validate requires 0 < Moho < LAB and positive densities.
func (h Horizons) Validate() error {
	if h.Moho <= 0 || h.LAB <= h.Moho {
		return fmt.Errorf("%w: horizons need 0 < moho < lab, got moho=%g lab=%g", ErrInvalidArgument, h.Moho, h.LAB)
	}
	if h.RhoCrust <= 0 || h.RhoMantle <= 0 {
		return fmt.Errorf("%w: densities must be positive, got crust=%g mantle=%g", ErrInvalidArgument, h.RhoCrust, h.RhoMantle)
	}
	return nil
}
