package thermal

import (
	"fmt"

	"github.com/okian/envelopes/internal/domain/model"
	"github.com/okian/envelopes/internal/domain/physics"
)

// Borehole names a superdeep borehole.
type Borehole string

// Boreholes with published thermal gradients.
const (
	KTB      Borehole = "KTB"
	Kola     Borehole = "Kola"
	Gravberg Borehole = "Gravberg"
)

type boreholeData struct {
	label    string
	gradient float64 // K/km
	maxDepth float64 // km
}

var boreholes = map[Borehole]boreholeData{
	KTB:      {label: "KTB borehole", gradient: 27.5, maxDepth: 9.101},        // Emmermann and Lauterjung (1997)
	Kola:     {label: "Kola borehole", gradient: 15.5, maxDepth: 12.262},      // Smithson et al. (2000)
	Gravberg: {label: "Gravberg-1 borehole", gradient: 16.1, maxDepth: 6.779}, // Lund and Zoback (1999)
}

// BoreholeNames lists the known boreholes.
func BoreholeNames() []string { return []string{string(KTB), string(Kola), string(Gravberg)} }

// BoreholeCurve returns the measured gradient of a borehole (°C against km)
// and its projection down to the Moho. tSurf is in K.
func BoreholeCurve(name string, tSurf float64, h model.Horizons) ([]model.Series, error) {
	b, ok := boreholes[Borehole(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown borehole %q, valid: KTB, Kola, Gravberg", model.ErrInvalidArgument, name)
	}
	t0 := physics.ToCelsius(tSurf)
	tBottom := b.maxDepth*b.gradient + t0
	return []model.Series{
		{Name: b.label, Profile: model.Line([]float64{t0, tBottom}, []float64{0, b.maxDepth})},
		{Name: b.label + " projection", Profile: model.Line([]float64{tBottom, h.Moho * b.gradient}, []float64{b.maxDepth, h.Moho})},
	}, nil
}

// TriplePointVariant names an experimental Al2SiO5 triple point.
type TriplePointVariant string

// Triple point calibrations.
const (
	Holdoway TriplePointVariant = "Holdoway"
	Pattison TriplePointVariant = "Pattison"
)

type triplePoint struct {
	temp       float64 // °C
	pressure   float64 // kPa, so that P/(ρg) is in km
	andSillEnd float64 // °C where the And-Sill line meets the surface
}

var triplePoints = map[TriplePointVariant]triplePoint{
	Holdoway: {temp: 500, pressure: 380000, andSillEnd: 602.85},
	Pattison: {temp: 550, pressure: 450000, andSillEnd: 800},
}

// Fixed ends of the kyanite reaction lines, °C.
const (
	kyAndSurfaceTemp = 154.85
	kySillMohoTemp   = 696.85
)

// TriplePointLines returns the kyanite-andalusite, andalusite-sillimanite
// and kyanite-sillimanite reaction lines (°C against km). Each line is
// ordered by increasing depth.
func TriplePointLines(variant string, h model.Horizons) ([]model.Series, error) {
	tp, ok := triplePoints[TriplePointVariant(variant)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown triple point %q, valid: Holdoway, Pattison", model.ErrInvalidArgument, variant)
	}
	depth := tp.pressure / (h.RhoCrust * physics.G)
	return []model.Series{
		{Name: "Ky-And", Profile: model.Line([]float64{kyAndSurfaceTemp, tp.temp}, []float64{0, depth})},
		{Name: "And-Sill", Profile: model.Line([]float64{tp.andSillEnd, tp.temp}, []float64{0, depth})},
		{Name: "Ky-Sill", Profile: model.Line([]float64{tp.temp, kySillMohoTemp}, []float64{depth, h.Moho})},
	}, nil
}

// Wet granite solidus, Johannes and Holtz (1996), ordered by pressure.
var (
	wetGraniteTemp = []float64{
		961.86, 906.415, 856.391, 815.686, 797.295, 778.413, 757.815, 744.329, 730.106,
		719.072, 709.999, 700.190, 692.589, 684.251, 676.895, 671.010, 665.860, 660.220,
		655.561, 652.128, 649.186, 647.034, 644.915, 640.254, 635.593, 632.203,
	}
	wetGranitePressure = []float64{ // MPa
		0.00, 18.334, 25.045, 32.366, 37.856, 45.177, 56.769, 68.970, 87.273,
		105.575, 122.657, 144.620, 162.923, 186.106, 210.509, 234.912, 260.535, 294.700,
		332.525, 371.570, 417.936, 468.675, 546.687, 787.048, 1040.060, 1297.289,
	}
)

// Linear dry solidus T = (P + 9551.25) / 9.93, P in MPa.
const (
	drySolidusOffset = 9551.25
	drySolidusSlope  = 9.93
	drySolidusTop    = 961.86 // °C at the surface
)

// GraniteSolidus returns the wet granite solidus and the linear solidus
// projected to the Moho, °C against km.
func GraniteSolidus(h model.Horizons) []model.Series {
	depths := make([]float64, len(wetGranitePressure))
	for i, p := range wetGranitePressure {
		depths[i] = physics.MPaToPa(p) / (h.RhoCrust * physics.G) / 1000
	}
	temps := make([]float64, len(wetGraniteTemp))
	copy(temps, wetGraniteTemp)

	pMoho := physics.PaToMPa(physics.KmToM(h.Moho) * physics.G * h.RhoCrust)
	tMoho := (pMoho + drySolidusOffset) / drySolidusSlope

	return []model.Series{
		{Name: "wet granite solidus", Profile: model.Line(temps, depths)},
		{Name: "granite solidus", Profile: model.Line([]float64{drySolidusTop, tMoho}, []float64{0, h.Moho})},
	}
}
