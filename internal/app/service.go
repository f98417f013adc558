// Package service provides the envelope service that assembles geotherms,
// frictional and creep strength profiles into strength envelopes.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/envelopes/internal/domain/creep"
	"github.com/okian/envelopes/internal/domain/flowlaw"
	"github.com/okian/envelopes/internal/domain/friction"
	"github.com/okian/envelopes/internal/domain/model"
	"github.com/okian/envelopes/internal/domain/piezometer"
	"github.com/okian/envelopes/internal/domain/thermal"
	"github.com/okian/envelopes/pkg/logger"
	"github.com/okian/envelopes/pkg/metrics"
)

// Service computes strength envelopes for one lithosphere configuration.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	horizons    model.Horizons
	surfaceTemp float64
	crust       model.ThermalLayer
	mantle      model.ThermalLayer
	meshPoints  int
	strainRate  float64

	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records computations on m instead of the global manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithHorizons sets the Moho, LAB and densities.
func WithHorizons(h model.Horizons) Option {
	return func(s *Service) {
		s.horizons = h
	}
}

// WithSurfaceTemperature sets the surface temperature in K.
func WithSurfaceTemperature(k float64) Option {
	return func(s *Service) {
		s.surfaceTemp = k
	}
}

// WithThermalLayers sets the crust and mantle heat parameters.
func WithThermalLayers(crust, mantle model.ThermalLayer) Option {
	return func(s *Service) {
		s.crust = crust
		s.mantle = mantle
	}
}

// WithMeshPoints sets the number of geotherm samples.
func WithMeshPoints(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.meshPoints = n
		}
	}
}

// WithStrainRate sets the strain rate applied to every creep law.
func WithStrainRate(rate float64) Option {
	return func(s *Service) {
		s.strainRate = rate
	}
}

// New constructs a Service for the reference lithosphere.
func New(opts ...Option) *Service {
	in := thermal.DefaultGeothermInput()
	s := &Service{
		horizons:    in.Horizons,
		surfaceTemp: in.SurfaceTemp,
		crust:       in.Crust,
		mantle:      in.Mantle,
		meshPoints:  in.Points,
		strainRate:  creep.ReferenceStrainRate,
		metrics:     metrics.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("envelopes")
	}
	return s
}

// Horizons returns the configured horizons.
func (s *Service) Horizons() model.Horizons { return s.horizons }

// Geotherm computes the steady-state geotherm (K) from the surface to the LAB.
func (s *Service) Geotherm(ctx context.Context) (thermal.Geotherm, error) {
	var g thermal.Geotherm
	err := s.observe(ctx, metrics.KindGeotherm, "thermal", func() (int, error) {
		var err error
		g, err = thermal.NewGeotherm(thermal.GeothermInput{
			Points:      s.meshPoints,
			Horizons:    s.horizons,
			SurfaceTemp: s.surfaceTemp,
			Crust:       s.crust,
			Mantle:      s.mantle,
		})
		return g.Profile.Len(), err
	})
	if err != nil {
		return thermal.Geotherm{}, err
	}
	s.metrics.UpdateHorizonTemperatures(g.Report.MohoTemp, g.Report.LABTemp)
	s.logger.Info(ctx, "geotherm computed",
		logger.Float64("moho_km", s.horizons.Moho),
		logger.Float64("lab_km", s.horizons.LAB),
		logger.Float64("moho_temp_c", g.Report.MohoTemp),
		logger.Float64("lab_temp_c", g.Report.LABTemp),
		logger.Float64("crust_gradient", g.Report.CrustGradient),
		logger.Float64("mantle_gradient", g.Report.MantleGradient),
	)
	return g, nil
}

// Friction returns the frictional strength line of kind from the surface to z (km).
func (s *Service) Friction(ctx context.Context, kind friction.Kind, p model.FaultFriction, z float64) (model.Profile, error) {
	var line model.Profile
	err := s.observe(ctx, metrics.KindFriction, "friction", func() (int, error) {
		var err error
		line, err = friction.Line(z, p, kind, s.horizons)
		return line.Len(), err
	})
	return line, err
}

// Goetze returns Goetze's criterion line.
func (s *Service) Goetze(ctx context.Context) (model.Profile, error) {
	var line model.Profile
	err := s.observe(ctx, metrics.KindReference, "friction", func() (int, error) {
		line = friction.GoetzeLine(s.horizons)
		return line.Len(), nil
	})
	return line, err
}

// QuartzCreep evaluates the named quartz flow law over geotherm (K) from z0
// to the Moho. opts override the service strain rate and the grain defaults.
func (s *Service) QuartzCreep(ctx context.Context, geotherm model.Profile, name string, z0 float64, opts ...creep.Option) (model.Profile, error) {
	var out model.Profile
	err := s.observe(ctx, metrics.KindQuartz, "creep", func() (int, error) {
		law, err := flowlaw.Quartz(name)
		if err != nil {
			return 0, err
		}
		p := creep.QuartzParams(append([]creep.Option{creep.WithStrainRate(s.strainRate)}, opts...)...)
		out, err = creep.QuartzProfile(geotherm, z0, s.horizons, law, p)
		return out.Len(), err
	})
	return out, err
}

// OlivineCreep evaluates the named olivine flow law over geotherm (K)
// between the Moho and the LAB.
func (s *Service) OlivineCreep(ctx context.Context, geotherm model.Profile, name string, opts ...creep.Option) (model.Profile, error) {
	var out model.Profile
	err := s.observe(ctx, metrics.KindOlivine, "creep", func() (int, error) {
		law, err := flowlaw.Olivine(name)
		if err != nil {
			return 0, err
		}
		p := creep.OlivineParams(append([]creep.Option{creep.WithStrainRate(s.strainRate)}, opts...)...)
		out, err = creep.OlivineProfile(geotherm, s.horizons, law, p)
		return out.Len(), err
	})
	return out, err
}

// Piezometer returns the differential stress (MPa) recorded by grain size d (µm).
func (s *Service) Piezometer(ctx context.Context, d float64, relation string) (float64, error) {
	var stress float64
	err := s.observe(ctx, metrics.KindPiezo, "piezometer", func() (int, error) {
		var err error
		stress, err = piezometer.Stress(d, relation)
		return 1, err
	})
	return stress, err
}

// Boreholes returns the measured and projected gradients of the named
// boreholes, °C against km.
func (s *Service) Boreholes(ctx context.Context, names []string) ([]model.Series, error) {
	var out []model.Series
	err := s.observe(ctx, metrics.KindBorehole, "thermal", func() (int, error) {
		points := 0
		for _, name := range names {
			curves, err := thermal.BoreholeCurve(name, s.surfaceTemp, s.horizons)
			if err != nil {
				return 0, err
			}
			for _, c := range curves {
				points += c.Len()
			}
			out = append(out, curves...)
		}
		return points, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// observe runs fn, recording latency, profile size and errors for kind.
func (s *Service) observe(ctx context.Context, kind, component string, fn func() (int, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	points, err := fn()
	s.metrics.RecordLatency(kind, float64(time.Since(start).Microseconds())/1000)
	if err != nil {
		s.metrics.RecordError(component, errorType(err))
		s.logger.Debug(ctx, "computation failed", logger.String("kind", kind), logger.Error(err))
		return err
	}
	s.metrics.RecordProfile(kind, points)
	s.logger.Debug(ctx, "profile computed", logger.String("kind", kind), logger.Int("points", points))
	return nil
}

func errorType(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, model.ErrDomainPrecondition):
		return "domain_precondition"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}

func newRunID() string {
	return uuid.NewString()
}

func frictionName(kind friction.Kind, p model.FaultFriction) string {
	return fmt.Sprintf("%s (mu=%g, lambda=%g)", kind, p.Mu, p.Lambda)
}
