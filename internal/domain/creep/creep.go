// Package creep evaluates the power-law dislocation creep flow law and
// assembles creep strength profiles over a geotherm.
//
// Steady-state creep at moderate stress (roughly 20-200 MPa) is assumed.
// Partial melt is ignored.
package creep

import (
	"fmt"
	"math"

	"github.com/okian/envelopes/internal/domain/flowlaw"
	"github.com/okian/envelopes/internal/domain/model"
	"github.com/okian/envelopes/internal/domain/physics"
)

// ReferenceStrainRate is the average shear strain rate in the ductile
// lithosphere (Twiss and Moores, 2007, p. 488), s⁻¹.
const ReferenceStrainRate = 1.0e-14

// Default grain sizes, µm. They only matter with a non-zero grain exponent.
const (
	DefaultQuartzGrainSize  = 35.0
	DefaultOlivineGrainSize = 1000.0
)

// Params are the deformation conditions fed to the flow law.
type Params struct {
	StrainRate float64 // s⁻¹
	GrainSize  float64 // µm
	GrainExp   float64 // grain size exponent m
	Fugacity   float64 // water fugacity
	FugExp     float64 // water fugacity exponent r
}

// Option applies a configuration option to Params.
type Option func(*Params)

// WithStrainRate sets the strain rate.
func WithStrainRate(rate float64) Option {
	return func(p *Params) { p.StrainRate = rate }
}

// WithGrainSize sets the grain size and its exponent.
func WithGrainSize(d, m float64) Option {
	return func(p *Params) {
		p.GrainSize = d
		p.GrainExp = m
	}
}

// WithFugacity sets the water fugacity and its exponent.
func WithFugacity(f, r float64) Option {
	return func(p *Params) {
		p.Fugacity = f
		p.FugExp = r
	}
}

// QuartzParams returns quartz defaults with opts applied.
func QuartzParams(opts ...Option) Params {
	return newParams(DefaultQuartzGrainSize, opts)
}

// OlivineParams returns olivine defaults with opts applied.
func OlivineParams(opts ...Option) Params {
	return newParams(DefaultOlivineGrainSize, opts)
}

func newParams(grain float64, opts []Option) Params {
	p := Params{StrainRate: ReferenceStrainRate, GrainSize: grain}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Stress returns the differential stress (MPa, Tresca) needed to deform the
// aggregate at the given strain rate:
//
//	σ = (ε̇ · d^m · f^r · exp((Q + P·V)/(R·T)) / A)^(1/n)
//
// temps are absolute temperatures (K) and must be positive. pressures (Pa)
// may be empty (zero pressure), a single value applied to every sample, or
// one value per temperature.
func Stress(law flowlaw.Preset, p Params, temps, pressures []float64) ([]float64, error) {
	if law.N <= 0 || law.A <= 0 {
		return nil, fmt.Errorf("%w: flow law %q needs n > 0 and A > 0", model.ErrInvalidArgument, law.Law)
	}
	if p.StrainRate <= 0 {
		return nil, fmt.Errorf("%w: strain rate must be positive, got %g", model.ErrDomainPrecondition, p.StrainRate)
	}
	pressureAt, err := pressureLookup(pressures, len(temps))
	if err != nil {
		return nil, err
	}

	// Terms independent of temperature.
	pre := p.StrainRate * math.Pow(p.GrainSize, p.GrainExp) * math.Pow(p.Fugacity, p.FugExp) / law.A
	inv := 1 / law.N

	out := make([]float64, len(temps))
	for i, t := range temps {
		if t <= 0 || math.IsNaN(t) {
			return nil, fmt.Errorf("%w: absolute temperature must be positive, got %g K at sample %d", model.ErrDomainPrecondition, t, i)
		}
		arrhenius := math.Exp((law.Q + pressureAt(i)*law.V) / (physics.R * t))
		out[i] = math.Pow(pre*arrhenius, inv)
	}
	return out, nil
}

func pressureLookup(pressures []float64, n int) (func(int) float64, error) {
	switch len(pressures) {
	case 0:
		return func(int) float64 { return 0 }, nil
	case 1:
		p := pressures[0]
		return func(int) float64 { return p }, nil
	case n:
		return func(i int) float64 { return pressures[i] }, nil
	default:
		return nil, fmt.Errorf("%w: %d pressures for %d temperatures", model.ErrInvalidArgument, len(pressures), n)
	}
}
