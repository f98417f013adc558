// Package export encodes envelopes for external plotting tools.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	service "github.com/okian/envelopes/internal/app"
	"github.com/okian/envelopes/internal/domain/model"
)

// Document is the JSON form of an envelope.
type Document struct {
	ID          string   `json:"id"`
	Horizons    Horizons `json:"horizons"`
	Stress      []Curve  `json:"stress"`
	Temperature []Curve  `json:"temperature"`
	Report      Report   `json:"report"`
}

// Horizons mirrors model.Horizons with units in the keys.
type Horizons struct {
	MohoKm    float64 `json:"moho_km"`
	LABKm     float64 `json:"lab_km"`
	RhoCrust  float64 `json:"rho_crust"`
	RhoMantle float64 `json:"rho_mantle"`
}

// Curve is one plotted line: x is MPa for stress and °C for temperature.
type Curve struct {
	Name  string    `json:"name"`
	Kind  string    `json:"kind"`
	X     []float64 `json:"x"`
	Depth []float64 `json:"depth"`
}

// Report summarizes the geotherm.
type Report struct {
	MohoTempC      float64 `json:"moho_temp_c"`
	LABTempC       float64 `json:"lab_temp_c"`
	CrustGradient  float64 `json:"crust_gradient"`
	MantleGradient float64 `json:"mantle_gradient"`
}

// NewDocument converts an envelope. Curves without samples keep empty
// arrays rather than null.
func NewDocument(env service.Envelope) Document {
	return Document{
		ID: env.ID,
		Horizons: Horizons{
			MohoKm:    env.Horizons.Moho,
			LABKm:     env.Horizons.LAB,
			RhoCrust:  env.Horizons.RhoCrust,
			RhoMantle: env.Horizons.RhoMantle,
		},
		Stress:      curves(env.Stress),
		Temperature: curves(env.Temperature),
		Report: Report{
			MohoTempC:      env.Report.MohoTemp,
			LABTempC:       env.Report.LABTemp,
			CrustGradient:  env.Report.CrustGradient,
			MantleGradient: env.Report.MantleGradient,
		},
	}
}

// CurvesOf converts loose series, e.g. for single-profile commands.
func CurvesOf(kind string, series ...model.Series) []Curve {
	out := make([]Curve, 0, len(series))
	for _, s := range series {
		out = append(out, newCurve(s.Name, kind, s.Profile))
	}
	return out
}

func curves(in []service.Curve) []Curve {
	out := make([]Curve, 0, len(in))
	for _, c := range in {
		out = append(out, newCurve(c.Name, c.Kind, c.Profile))
	}
	return out
}

func newCurve(name, kind string, p model.Profile) Curve {
	c := Curve{Name: name, Kind: kind, X: p.Value, Depth: p.Depth}
	if c.X == nil {
		c.X = []float64{}
	}
	if c.Depth == nil {
		c.Depth = []float64{}
	}
	return c
}

// Encode writes env as indented JSON.
func Encode(w io.Writer, env service.Envelope) error {
	return Write(w, NewDocument(env))
}

// Write encodes any value the way Encode does.
func Write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}
