package creep

import (
	"fmt"

	"github.com/okian/envelopes/internal/domain/flowlaw"
	"github.com/okian/envelopes/internal/domain/model"
	"github.com/okian/envelopes/internal/domain/physics"
)

// Range is an inclusive depth interval, km.
type Range struct {
	Low  float64
	High float64
}

// PressureFunc returns the pressure multiplying the activation volume at
// depth z (km).
type PressureFunc func(z float64) float64

// OverburdenPressure is the olivine default: ρ(z)·g·z with z in km.
func OverburdenPressure(h model.Horizons) PressureFunc {
	return func(z float64) float64 { return physics.Overburden(z, h) }
}

// LithostaticPressure is the load in Pa. Pass it to Profile to opt into the
// SI reading of the activation volume term.
func LithostaticPressure(h model.Horizons) PressureFunc {
	return func(z float64) float64 { return physics.LithostaticPressure(z, h) }
}

// Profile evaluates the flow law over the samples of geotherm (temperatures
// in K) whose depth lies in r. pressure may be nil for zero pressure.
// A range that holds no sample yields an empty profile.
func Profile(geotherm model.Profile, r Range, law flowlaw.Preset, p Params, pressure PressureFunc) (model.Profile, error) {
	if err := geotherm.Validate(); err != nil {
		return model.Profile{}, err
	}
	sel := geotherm.Select(r.Low, r.High)
	if sel.Empty() {
		return sel, nil
	}

	var pressures []float64
	if pressure != nil {
		pressures = make([]float64, sel.Len())
		for i, z := range sel.Depth {
			pressures[i] = pressure(z)
		}
	}

	stress, err := Stress(law, p, sel.Value, pressures)
	if err != nil {
		return model.Profile{}, fmt.Errorf("creep %s: %w", law.Law, err)
	}
	return model.Profile{Depth: sel.Depth, Value: stress}, nil
}

// QuartzProfile returns quartz creep strength from z0 down to the Moho.
// Pressure and activation volume are negligible at crustal depths.
func QuartzProfile(geotherm model.Profile, z0 float64, h model.Horizons, law flowlaw.Preset, p Params) (model.Profile, error) {
	if err := h.Validate(); err != nil {
		return model.Profile{}, err
	}
	law.V = 0
	return Profile(geotherm, Range{Low: z0, High: h.Moho}, law, p, nil)
}

// OlivineProfile returns olivine creep strength between the Moho and the
// lithosphere base under the overburden load.
func OlivineProfile(geotherm model.Profile, h model.Horizons, law flowlaw.Preset, p Params) (model.Profile, error) {
	if err := h.Validate(); err != nil {
		return model.Profile{}, err
	}
	return Profile(geotherm, Range{Low: h.Moho, High: h.LAB}, law, p, OverburdenPressure(h))
}
