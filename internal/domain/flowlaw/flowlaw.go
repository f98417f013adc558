// Package flowlaw holds the experimentally derived dislocation creep
// parameters for quartz and olivine.
package flowlaw

import (
	"fmt"
	"math"
	"strings"

	"github.com/okian/envelopes/internal/domain/model"
)

// Law names a flow-law preset.
type Law string

// Quartz dislocation creep laws.
const (
	Luan    Law = "Luan"    // Luan and Paterson (1992)
	Gleason Law = "Gleason" // Gleason and Tullis (1995), wet quartzite
	Holyoke Law = "Holyoke" // Gleason and Tullis (1995) corrected by Holyoke and Kronenberg (2010)
	Hirth   Law = "Hirth"   // Hirth et al. (2001)
	Rutter  Law = "Rutter"  // Rutter and Brodie (2004), wet quartzite
)

// Olivine dislocation creep laws.
const (
	HirthWet  Law = "Hirth-wet"  // Hirth and Kohlstedt (2003)
	HirthDry  Law = "Hirth-dry"  // Hirth and Kohlstedt (2003)
	KaratoWet Law = "Karato-wet" // Karato and Jung (2003)
	KaratoDry Law = "Karato-dry" // Karato and Jung (2003)
	Zimmerman Law = "Zimmerman"  // Zimmerman and Kohlstedt (2004), dry peridotite
)

// Preset is an immutable set of power-law creep constants.
type Preset struct {
	Law Law
	N   float64 // stress exponent
	Q   float64 // activation energy, J/mol
	A   float64 // pre-exponential factor, MPa^-n s^-1
	V   float64 // activation volume, m³/mol
	R   float64 // water fugacity exponent
}

var quartzOrder = []Law{Luan, Gleason, Holyoke, Hirth, Rutter}

var olivineOrder = []Law{HirthWet, HirthDry, KaratoWet, KaratoDry, Zimmerman}

var quartzTable = map[Law]Preset{
	Luan:    {Law: Luan, N: 4.0, Q: 152000, A: math.Pow(10, -7.2)},
	Gleason: {Law: Gleason, N: 4.0, Q: 223000, A: 1.1e-4},
	Holyoke: {Law: Holyoke, N: 4.0, Q: 223000, A: 5.1e-4},
	Hirth:   {Law: Hirth, N: 4.0, Q: 135000, A: math.Pow(10, -11.2)},
	Rutter:  {Law: Rutter, N: 2.97, Q: 242000, A: math.Pow(10, -4.93)},
}

// Zimmerman and Kohlstedt give no activation volume.
var olivineTable = map[Law]Preset{
	HirthWet:  {Law: HirthWet, N: 3.5, Q: 520000, A: math.Pow(10, 3.2), V: 2.2e-05},
	HirthDry:  {Law: HirthDry, N: 3.5, Q: 530000, A: math.Pow(10, 5.0), V: 1.8e-05},
	KaratoWet: {Law: KaratoWet, N: 3.0, Q: 470000, A: math.Pow(10, 2.9), V: 2.4e-05},
	KaratoDry: {Law: KaratoDry, N: 3.0, Q: 510000, A: math.Pow(10, 6.1), V: 1.4e-05},
	Zimmerman: {Law: Zimmerman, N: 4.3, Q: 550000, A: math.Pow(10, 4.8), V: 0.0},
}

// Quartz returns the quartz preset for name.
func Quartz(name string) (Preset, error) {
	return lookup(quartzTable, quartzOrder, "quartz", name)
}

// Olivine returns the olivine preset for name.
func Olivine(name string) (Preset, error) {
	return lookup(olivineTable, olivineOrder, "olivine", name)
}

// QuartzNames lists the quartz presets in table order.
func QuartzNames() []string { return names(quartzOrder) }

// OlivineNames lists the olivine presets in table order.
func OlivineNames() []string { return names(olivineOrder) }

func lookup(table map[Law]Preset, order []Law, mineral, name string) (Preset, error) {
	p, ok := table[Law(name)]
	if !ok {
		return Preset{}, fmt.Errorf("%w: unknown %s flow law %q, valid: %s",
			model.ErrInvalidArgument, mineral, name, strings.Join(names(order), ", "))
	}
	return p, nil
}

func names(order []Law) []string {
	out := make([]string, len(order))
	for i, l := range order {
		out[i] = string(l)
	}
	return out
}
