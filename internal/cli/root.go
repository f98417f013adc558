// Package cli wires the envelope service to cobra commands.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	service "github.com/okian/envelopes/internal/app"
	"github.com/okian/envelopes/internal/config"
	"github.com/okian/envelopes/pkg/logger"
	"github.com/okian/envelopes/pkg/metrics"
)

// env carries what every subcommand needs once flags and config are resolved.
type env struct {
	configPath  string
	logLevel    string
	metricsFile string

	cfg     *config.Config
	svc     *service.Service
	metrics *metrics.Manager
}

// Option customizes the root command.
type Option func(*env)

// WithMetrics records on m instead of the global metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(e *env) {
		if m != nil {
			e.metrics = m
		}
	}
}

// NewRootCommand builds the envelopes command tree. The logger must be
// initialized before the command runs.
func NewRootCommand(opts ...Option) *cobra.Command {
	e := &env{metrics: metrics.Default()}
	for _, opt := range opts {
		opt(e)
	}

	root := &cobra.Command{
		Use:   "envelopes",
		Short: "Lithospheric strength envelopes",
		Long: `Compute strength envelopes of the continental lithosphere.

Frictional sliding (Anderson faulting) bounds the brittle upper crust,
power-law creep of quartz and olivine bounds the ductile crust and mantle,
and a steady-state geotherm ties creep strength to depth.

Every command writes JSON to stdout; logs go to stderr.

Configuration is layered: defaults, then the YAML file named by --config
or ENVELOPES_CONFIG, then ENVELOPES_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return e.flush(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&e.configPath, "config", "", "YAML config file (overrides "+config.EnvFile+")")
	flags.StringVar(&e.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&e.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the run")

	root.AddCommand(
		newGeothermCommand(e),
		newFrictionCommand(e),
		newCreepCommand(e),
		newPiezometerCommand(e),
		newEnvelopeCommand(e),
		newPresetsCommand(),
	)
	return root
}

func (e *env) setup(ctx context.Context) error {
	var err error
	if e.configPath != "" {
		e.cfg, err = config.LoadFile(ctx, e.configPath)
	} else {
		e.cfg, err = config.Load(ctx)
	}
	if err != nil {
		return err
	}

	level := e.cfg.LogLevel
	if e.logLevel != "" {
		level = e.logLevel
	}
	if err := logger.SetLevelString(level); err != nil {
		return err
	}
	if e.metricsFile == "" {
		e.metricsFile = e.cfg.MetricsFile
	}

	crust, mantle := e.cfg.ThermalLayers()
	e.svc = service.New(
		service.WithLogger(logger.Named("envelopes")),
		service.WithMetrics(e.metrics),
		service.WithHorizons(e.cfg.Horizons()),
		service.WithSurfaceTemperature(e.cfg.SurfaceTempK),
		service.WithThermalLayers(crust, mantle),
		service.WithMeshPoints(e.cfg.MeshPoints),
		service.WithStrainRate(e.cfg.StrainRate),
	)
	logger.Get().Debug(ctx, "configuration loaded",
		logger.Float64("moho_km", e.cfg.MohoKm),
		logger.Float64("lab_km", e.cfg.LABKm),
		logger.Int("mesh_points", e.cfg.MeshPoints),
		logger.Float64("strain_rate", e.cfg.StrainRate),
	)
	return nil
}

func (e *env) flush(ctx context.Context) error {
	if e.metricsFile == "" {
		return nil
	}
	if err := e.metrics.WriteTextfile(e.metricsFile); err != nil {
		return err
	}
	logger.Get().Debug(ctx, "metrics written", logger.String("path", e.metricsFile))
	return nil
}
