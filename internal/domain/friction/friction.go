// Package friction implements Anderson's theory of faulting: the differential
// stress needed for frictional sliding as a function of depth.
//
// Byerlee's law assumptions apply: strength depends on pressure, pore fluid
// and stress state, not on rock type, temperature or strain rate. Depths are
// measured from a surface at zero elevation.
package friction

import (
	"fmt"
	"math"
	"strings"

	"github.com/okian/envelopes/internal/domain/model"
	"github.com/okian/envelopes/internal/domain/physics"
)

// Kind is the fault kinematics.
type Kind int

// Fault kinds.
const (
	Thrust Kind = iota + 1
	Extension
	StrikeSlip
)

// Kinds lists every fault kind.
func Kinds() []Kind { return []Kind{Thrust, Extension, StrikeSlip} }

func (k Kind) String() string {
	switch k {
	case Thrust:
		return "thrust"
	case Extension:
		return "extension"
	case StrikeSlip:
		return "strike-slip"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts thrust/inverse, extension/normal and strike-slip/strike.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thrust", "inverse":
		return Thrust, nil
	case "extension", "normal":
		return Extension, nil
	case "strike-slip", "strike":
		return StrikeSlip, nil
	default:
		return 0, fmt.Errorf("%w: unknown fault kind %q, valid: thrust, extension, strike-slip", model.ErrInvalidArgument, s)
	}
}

// Stress returns the differential stress (MPa) for frictional sliding at
// depth (km) on a fault of the given kind, with rho the density (kg/m³) of
// the overburden.
func Stress(depth float64, p model.FaultFriction, kind Kind, rho float64) (float64, error) {
	sv := rho * physics.G * physics.KmToM(depth)
	c0 := physics.MPaToPa(p.C0)
	load := p.Mu * sv * (1 - p.Lambda)
	root := math.Sqrt(p.Mu*p.Mu + 1)

	var s float64
	switch kind {
	case Thrust:
		s = 2 * (c0 + load) / (root - p.Mu)
	case Extension:
		s = -2 * (c0 - load) / (root + p.Mu)
	case StrikeSlip:
		s = 2 * (c0 + load) / root
	default:
		return 0, fmt.Errorf("%w: unknown fault kind %v", model.ErrInvalidArgument, kind)
	}
	return physics.PaToMPa(s), nil
}

// Line returns the frictional strength slope from the surface to depth z
// (km) as a two-point profile, using the crust density.
func Line(z float64, p model.FaultFriction, kind Kind, h model.Horizons) (model.Profile, error) {
	if z < 0 {
		return model.Profile{}, fmt.Errorf("%w: negative depth %g", model.ErrInvalidArgument, z)
	}
	top, err := Stress(0, p, kind, h.RhoCrust)
	if err != nil {
		return model.Profile{}, err
	}
	bottom, err := Stress(z, p, kind, h.RhoCrust)
	if err != nil {
		return model.Profile{}, err
	}
	return model.Line([]float64{top, bottom}, []float64{0, z}), nil
}

// GoetzeLine returns Goetze's criterion (Briegel and Goetze, 1978): the
// differential stress equal to the lithostatic pressure (MPa) at the
// surface, the Moho and the lithosphere base. Gravity is constant.
func GoetzeLine(h model.Horizons) model.Profile {
	depths := []float64{0, h.Moho, h.LAB}
	pressures := make([]float64, len(depths))
	for i, z := range depths {
		pressures[i] = physics.PaToMPa(physics.LithostaticPressure(z, h))
	}
	return model.Line(pressures, depths)
}
