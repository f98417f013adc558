package service

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/envelopes/internal/domain/creep"
	"github.com/okian/envelopes/internal/domain/flowlaw"
	"github.com/okian/envelopes/internal/domain/friction"
	"github.com/okian/envelopes/internal/domain/model"
	"github.com/okian/envelopes/internal/domain/thermal"
	"github.com/okian/envelopes/pkg/logger"
	"github.com/okian/envelopes/pkg/metrics"
)

// Curve kinds carried by an Envelope.
const (
	CurveFriction = "friction"
	CurveGoetze   = "goetze"
	CurveQuartz   = "quartz"
	CurveOlivine  = "olivine"
	CurveGeotherm = "geotherm"
	CurveBorehole = "borehole"
	CurveReaction = "triple_point"
	CurveSolidus  = "solidus"
)

// Request selects the curves of an envelope. Empty selections are skipped.
type Request struct {
	Friction      model.FaultFriction
	Kinds         []friction.Kind
	FrictionDepth float64 // km; zero means the LAB

	Quartz      []string
	QuartzFrom  float64 // km, top of the quartz creep segment
	QuartzOpts  []creep.Option
	Olivine     []string
	OlivineOpts []creep.Option

	Boreholes   []string
	TriplePoint string
	Solidus     bool
	Goetze      bool
}

// DefaultRequest selects every fault kind, every flow law, every borehole,
// the Holdoway triple point, the granite solidus and Goetze's criterion.
func DefaultRequest() Request {
	return Request{
		Friction:    model.DefaultFaultFriction(),
		Kinds:       friction.Kinds(),
		Quartz:      flowlaw.QuartzNames(),
		Olivine:     flowlaw.OlivineNames(),
		Boreholes:   thermal.BoreholeNames(),
		TriplePoint: string(thermal.Holdoway),
		Solidus:     true,
		Goetze:      true,
	}
}

// Curve is one named depth profile of an envelope.
type Curve struct {
	Name string
	Kind string
	model.Profile
}

// Envelope is the document handed to a plotter: stress curves in MPa and
// temperature curves in °C, all against depth in km.
type Envelope struct {
	ID          string
	Horizons    model.Horizons
	Stress      []Curve
	Temperature []Curve
	Report      thermal.Report
}

// Build computes the geotherm and every curve selected by req.
func (s *Service) Build(ctx context.Context, req Request) (Envelope, error) {
	start := time.Now()
	env := Envelope{ID: newRunID(), Horizons: s.horizons}
	log := s.logger.Named("run")

	g, err := s.Geotherm(ctx)
	if err != nil {
		return Envelope{}, fmt.Errorf("geotherm: %w", err)
	}
	env.Report = g.Report
	env.Temperature = append(env.Temperature, Curve{Name: "geotherm", Kind: CurveGeotherm, Profile: g.Celsius()})

	depth := req.FrictionDepth
	if depth == 0 {
		depth = s.horizons.LAB
	}
	for _, kind := range req.Kinds {
		line, err := s.Friction(ctx, kind, req.Friction, depth)
		if err != nil {
			return Envelope{}, fmt.Errorf("friction %s: %w", kind, err)
		}
		env.Stress = append(env.Stress, Curve{Name: frictionName(kind, req.Friction), Kind: CurveFriction, Profile: line})
	}
	if req.Goetze {
		line, err := s.Goetze(ctx)
		if err != nil {
			return Envelope{}, fmt.Errorf("goetze: %w", err)
		}
		env.Stress = append(env.Stress, Curve{Name: "Goetze criterion", Kind: CurveGoetze, Profile: line})
	}

	for _, name := range req.Quartz {
		p, err := s.QuartzCreep(ctx, g.Profile, name, req.QuartzFrom, req.QuartzOpts...)
		if err != nil {
			return Envelope{}, fmt.Errorf("quartz: %w", err)
		}
		env.Stress = append(env.Stress, Curve{Name: name, Kind: CurveQuartz, Profile: p})
	}
	for _, name := range req.Olivine {
		p, err := s.OlivineCreep(ctx, g.Profile, name, req.OlivineOpts...)
		if err != nil {
			return Envelope{}, fmt.Errorf("olivine: %w", err)
		}
		env.Stress = append(env.Stress, Curve{Name: name, Kind: CurveOlivine, Profile: p})
	}

	if len(req.Boreholes) > 0 {
		series, err := s.Boreholes(ctx, req.Boreholes)
		if err != nil {
			return Envelope{}, fmt.Errorf("boreholes: %w", err)
		}
		env.Temperature = appendSeries(env.Temperature, CurveBorehole, series)
	}
	if req.TriplePoint != "" {
		lines, err := thermal.TriplePointLines(req.TriplePoint, s.horizons)
		if err != nil {
			s.metrics.RecordError("thermal", errorType(err))
			return Envelope{}, fmt.Errorf("triple point: %w", err)
		}
		env.Temperature = appendSeries(env.Temperature, CurveReaction, lines)
	}
	if req.Solidus {
		env.Temperature = appendSeries(env.Temperature, CurveSolidus, thermal.GraniteSolidus(s.horizons))
	}

	if err := ctx.Err(); err != nil {
		return Envelope{}, err
	}
	s.metrics.RecordProfile(metrics.KindEnvelope, len(env.Stress)+len(env.Temperature))
	s.metrics.RecordLatency(metrics.KindEnvelope, float64(time.Since(start).Microseconds())/1000)
	log.Info(ctx, "envelope built",
		logger.String("id", env.ID),
		logger.Int("stress_curves", len(env.Stress)),
		logger.Int("temperature_curves", len(env.Temperature)),
		logger.Float64("moho_temp_c", env.Report.MohoTemp),
		logger.Float64("lab_temp_c", env.Report.LABTemp),
	)
	return env, nil
}

func appendSeries(dst []Curve, kind string, series []model.Series) []Curve {
	for _, s := range series {
		dst = append(dst, Curve{Name: s.Name, Kind: kind, Profile: s.Profile})
	}
	return dst
}
