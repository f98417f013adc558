package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/envelopes/internal/adapters/export"
	service "github.com/okian/envelopes/internal/app"
	"github.com/okian/envelopes/internal/domain/creep"
	"github.com/okian/envelopes/internal/domain/flowlaw"
	"github.com/okian/envelopes/internal/domain/friction"
	"github.com/okian/envelopes/internal/domain/model"
	"github.com/okian/envelopes/internal/domain/piezometer"
	"github.com/okian/envelopes/internal/domain/thermal"
)

const (
	mineralQuartz  = "quartz"
	mineralOlivine = "olivine"
	allKinds       = "all"
)

// curveSet is the output of the single-purpose commands.
type curveSet struct {
	Curves []export.Curve `json:"curves"`
	Report *export.Report `json:"report,omitempty"`
}

type faultFlags struct {
	mu, lambda, c0 float64
}

func (f *faultFlags) register(cmd *cobra.Command) {
	def := model.DefaultFaultFriction()
	cmd.Flags().Float64Var(&f.mu, "mu", def.Mu, "friction coefficient")
	cmd.Flags().Float64Var(&f.lambda, "lambda", def.Lambda, "pore fluid factor, 0 is dry")
	cmd.Flags().Float64Var(&f.c0, "c0", def.C0, "cohesion, MPa")
}

func (f *faultFlags) params() model.FaultFriction {
	return model.FaultFriction{Mu: f.mu, Lambda: f.lambda, C0: f.c0}
}

func newGeothermCommand(e *env) *cobra.Command {
	var boreholes []string
	cmd := &cobra.Command{
		Use:   "geotherm",
		Short: "Steady-state geotherm from the surface to the LAB, °C",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			g, err := e.svc.Geotherm(ctx)
			if err != nil {
				return err
			}
			out := curveSet{
				Curves: export.CurvesOf(service.CurveGeotherm, model.Series{Name: "geotherm", Profile: g.Celsius()}),
				Report: &export.Report{
					MohoTempC:      g.Report.MohoTemp,
					LABTempC:       g.Report.LABTemp,
					CrustGradient:  g.Report.CrustGradient,
					MantleGradient: g.Report.MantleGradient,
				},
			}
			if len(boreholes) > 0 {
				series, err := e.svc.Boreholes(ctx, boreholes)
				if err != nil {
					return err
				}
				out.Curves = append(out.Curves, export.CurvesOf(service.CurveBorehole, series...)...)
			}
			return export.Write(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringSliceVar(&boreholes, "boreholes", nil, "borehole gradients to add: "+strings.Join(thermal.BoreholeNames(), ", "))
	return cmd
}

func newFrictionCommand(e *env) *cobra.Command {
	var (
		fault faultFlags
		kind  string
		depth float64
	)
	cmd := &cobra.Command{
		Use:   "friction",
		Short: "Frictional strength lines for Anderson fault kinds, MPa",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds, err := parseKinds(kind)
			if err != nil {
				return err
			}
			if depth == 0 {
				depth = e.svc.Horizons().LAB
			}
			p := fault.params()
			out := curveSet{Curves: []export.Curve{}}
			for _, k := range kinds {
				line, err := e.svc.Friction(cmd.Context(), k, p, depth)
				if err != nil {
					return err
				}
				out.Curves = append(out.Curves, export.CurvesOf(service.CurveFriction, model.Series{Name: k.String(), Profile: line})...)
			}
			return export.Write(cmd.OutOrStdout(), out)
		},
	}
	fault.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", allKinds, "fault kind: thrust, extension, strike-slip or all")
	cmd.Flags().Float64Var(&depth, "depth", 0, "line bottom, km (default the LAB)")
	return cmd
}

func parseKinds(s string) ([]friction.Kind, error) {
	if strings.EqualFold(strings.TrimSpace(s), allKinds) {
		return friction.Kinds(), nil
	}
	k, err := friction.ParseKind(s)
	if err != nil {
		return nil, err
	}
	return []friction.Kind{k}, nil
}

func newCreepCommand(e *env) *cobra.Command {
	var (
		mineral    string
		laws       []string
		from       float64
		strainRate float64
		grainSize  float64
		grainExp   float64
		fugacity   float64
		fugExp     float64
	)
	cmd := &cobra.Command{
		Use:   "creep",
		Short: "Power-law creep strength of quartz (crust) or olivine (mantle), MPa",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var opts []creep.Option
			if cmd.Flags().Changed("strain-rate") {
				opts = append(opts, creep.WithStrainRate(strainRate))
			}
			if cmd.Flags().Changed("fugacity") || cmd.Flags().Changed("fugacity-exp") {
				opts = append(opts, creep.WithFugacity(fugacity, fugExp))
			}

			g, err := e.svc.Geotherm(ctx)
			if err != nil {
				return err
			}

			mineral = strings.ToLower(mineral)
			if cmd.Flags().Changed("grain-size") || cmd.Flags().Changed("grain-exp") {
				size := grainSize
				if !cmd.Flags().Changed("grain-size") {
					size = defaultGrainSize(mineral)
				}
				opts = append(opts, creep.WithGrainSize(size, grainExp))
			}

			out := curveSet{Curves: []export.Curve{}}
			switch mineral {
			case mineralQuartz:
				if len(laws) == 0 {
					laws = flowlaw.QuartzNames()
				}
				for _, name := range laws {
					p, err := e.svc.QuartzCreep(ctx, g.Profile, name, from, opts...)
					if err != nil {
						return err
					}
					out.Curves = append(out.Curves, export.CurvesOf(service.CurveQuartz, model.Series{Name: name, Profile: p})...)
				}
			case mineralOlivine:
				if len(laws) == 0 {
					laws = flowlaw.OlivineNames()
				}
				for _, name := range laws {
					p, err := e.svc.OlivineCreep(ctx, g.Profile, name, opts...)
					if err != nil {
						return err
					}
					out.Curves = append(out.Curves, export.CurvesOf(service.CurveOlivine, model.Series{Name: name, Profile: p})...)
				}
			default:
				return fmt.Errorf("%w: unknown mineral %q, valid: quartz, olivine", model.ErrInvalidArgument, mineral)
			}
			return export.Write(cmd.OutOrStdout(), out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&mineral, "mineral", mineralQuartz, "quartz or olivine")
	f.StringSliceVar(&laws, "law", nil, "flow laws (default all of the mineral)")
	f.Float64Var(&from, "from", 0, "top of the quartz segment, km")
	f.Float64Var(&strainRate, "strain-rate", creep.ReferenceStrainRate, "strain rate, 1/s (default from config)")
	f.Float64Var(&grainSize, "grain-size", 0, "grain size, µm (default 35 for quartz, 1000 for olivine)")
	f.Float64Var(&grainExp, "grain-exp", 0, "grain size exponent m")
	f.Float64Var(&fugacity, "fugacity", 0, "water fugacity")
	f.Float64Var(&fugExp, "fugacity-exp", 0, "water fugacity exponent r")
	return cmd
}

func defaultGrainSize(mineral string) float64 {
	if mineral == mineralOlivine {
		return creep.DefaultOlivineGrainSize
	}
	return creep.DefaultQuartzGrainSize
}

type piezometerReading struct {
	GrainSize float64 `json:"grain_size_um"`
	Stress    float64 `json:"stress_mpa"`
}

func newPiezometerCommand(e *env) *cobra.Command {
	var (
		relation  string
		intercept bool
	)
	cmd := &cobra.Command{
		Use:   "piezometer GRAIN_SIZE...",
		Short: "Differential stress from recrystallized grain size (µm), MPa",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if intercept {
				c, err := piezometer.Lookup(relation)
				if err != nil {
					return err
				}
				if c.Intercept() {
					return fmt.Errorf("%w: %s already converts diameters to linear intercepts, drop --intercept", model.ErrInvalidArgument, relation)
				}
			}
			readings := make([]piezometerReading, 0, len(args))
			for _, arg := range args {
				d, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("%w: grain size %q: %w", model.ErrInvalidArgument, arg, err)
				}
				size := d
				if intercept {
					size = piezometer.LinearIntercept(d)
				}
				s, err := e.svc.Piezometer(cmd.Context(), size, relation)
				if err != nil {
					return err
				}
				readings = append(readings, piezometerReading{GrainSize: d, Stress: s})
			}
			return export.Write(cmd.OutOrStdout(), readings)
		},
	}
	cmd.Flags().StringVar(&relation, "relation", string(piezometer.Stipp), "calibration: "+strings.Join(piezometer.Names(), ", "))
	cmd.Flags().BoolVar(&intercept, "intercept", false, "convert equivalent circular diameters to linear intercepts first")
	return cmd
}

func newEnvelopeCommand(e *env) *cobra.Command {
	var (
		fault     faultFlags
		kind      string
		noSolidus bool
		noGoetze  bool
	)
	req := service.DefaultRequest()
	cmd := &cobra.Command{
		Use:   "envelope",
		Short: "Full strength envelope with geotherm and reference curves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds, err := parseKinds(kind)
			if err != nil {
				return err
			}
			req.Kinds = kinds
			req.Friction = fault.params()
			req.Solidus = !noSolidus
			req.Goetze = !noGoetze

			envelope, err := e.svc.Build(cmd.Context(), req)
			if err != nil {
				return err
			}
			return export.Encode(cmd.OutOrStdout(), envelope)
		},
	}
	fault.register(cmd)
	f := cmd.Flags()
	f.StringVar(&kind, "kind", allKinds, "fault kind: thrust, extension, strike-slip or all")
	f.Float64Var(&req.FrictionDepth, "depth", 0, "friction line bottom, km (default the LAB)")
	f.StringSliceVar(&req.Quartz, "quartz", req.Quartz, "quartz flow laws")
	f.Float64Var(&req.QuartzFrom, "quartz-from", 0, "top of the quartz segment, km")
	f.StringSliceVar(&req.Olivine, "olivine", req.Olivine, "olivine flow laws")
	f.StringSliceVar(&req.Boreholes, "boreholes", req.Boreholes, "borehole gradients")
	f.StringVar(&req.TriplePoint, "triple-point", req.TriplePoint, "Al2SiO5 triple point: Holdoway, Pattison or empty")
	f.BoolVar(&noSolidus, "no-solidus", false, "omit the granite solidus")
	f.BoolVar(&noGoetze, "no-goetze", false, "omit Goetze's criterion")
	return cmd
}

type presetList struct {
	Quartz       []string `json:"quartz"`
	Olivine      []string `json:"olivine"`
	Piezometers  []string `json:"piezometers"`
	Boreholes    []string `json:"boreholes"`
	TriplePoints []string `json:"triple_points"`
	FaultKinds   []string `json:"fault_kinds"`
}

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List flow laws, piezometers, boreholes and fault kinds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := make([]string, 0, len(friction.Kinds()))
			for _, k := range friction.Kinds() {
				kinds = append(kinds, k.String())
			}
			return export.Write(cmd.OutOrStdout(), presetList{
				Quartz:       flowlaw.QuartzNames(),
				Olivine:      flowlaw.OlivineNames(),
				Piezometers:  piezometer.Names(),
				Boreholes:    thermal.BoreholeNames(),
				TriplePoints: []string{string(thermal.Holdoway), string(thermal.Pattison)},
				FaultKinds:   kinds,
			})
		},
	}
}
