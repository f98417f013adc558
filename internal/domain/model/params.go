package model

// FaultFriction holds the Anderson frictional parameters.
type FaultFriction struct {
	Mu     float64 // friction coefficient, [0,1]
	Lambda float64 // Hubbert-Rubey pore-fluid coefficient, [0,1]; 0 is dry
	C0     float64 // cohesion, MPa
}

// DefaultFaultFriction uses Byerlee's friction recalculated by Rutter and
// Glover (2012) and hydrostatic pore pressure.
func DefaultFaultFriction() FaultFriction {
	return FaultFriction{Mu: 0.73, Lambda: 0.36, C0: 0}
}

// ThermalLayer holds the conductive parameters of one lithospheric layer.
type ThermalLayer struct {
	Jq float64 // surface heat flux, mW/m²
	A  float64 // radiogenic heat production, µW/m³
	K  float64 // thermal conductivity, W/m/K
}

// Gradient returns the average thermal gradient Jq/K in K/km.
func (l ThermalLayer) Gradient() float64 { return l.Jq / l.K }

// DefaultCrust: Jaupart and Mareschal (2007), Huang et al. (2013), Sclater et al. (1980).
func DefaultCrust() ThermalLayer { return ThermalLayer{Jq: 65, A: 0.97, K: 2.51} }

// DefaultMantle: Sclater et al. (1980), peridotite at room temperature.
func DefaultMantle() ThermalLayer { return ThermalLayer{Jq: 34, A: 0.01, K: 3.35} }
