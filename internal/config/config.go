// Package config defines the envelope configuration and its loading hooks.
//
// Conventions:
// - Provide New(ctx) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's sentinel errors.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/envelopes/internal/domain/creep"
	"github.com/okian/envelopes/internal/domain/model"
	"github.com/okian/envelopes/internal/domain/thermal"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MohoKm and LABKm are horizon depths in km.
	MohoKm float64 `koanf:"moho_km"`
	LABKm  float64 `koanf:"lab_km"`

	// RhoCrust and RhoMantle are densities in kg/m³.
	RhoCrust  float64 `koanf:"rho_crust"`
	RhoMantle float64 `koanf:"rho_mantle"`

	// StrainRate is the reference strain rate for creep laws, 1/s.
	StrainRate float64 `koanf:"strain_rate"`

	// SurfaceTempK anchors the geotherm at the surface.
	SurfaceTempK float64 `koanf:"surface_temp_k"`

	// MeshPoints is the number of geotherm depth samples.
	MeshPoints int `koanf:"mesh_points"`

	// Crust thermal layer: heat flow (mW/m²), production (µW/m³), conductivity (W/m/K).
	CrustJq float64 `koanf:"crust_jq"`
	CrustA  float64 `koanf:"crust_a"`
	CrustK  float64 `koanf:"crust_k"`

	// Mantle thermal layer, same units as the crust.
	MantleJq float64 `koanf:"mantle_jq"`
	MantleA  float64 `koanf:"mantle_a"`
	MantleK  float64 `koanf:"mantle_k"`

	// MetricsFile, when set, receives a Prometheus textfile dump after each run.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config holding the reference lithosphere. Context is
// accepted first to satisfy the project-wide convention.
func New(_ context.Context) *Config {
	h := model.DefaultHorizons()
	crust, mantle := model.DefaultCrust(), model.DefaultMantle()
	return &Config{
		LogLevel:     "info",
		MohoKm:       h.Moho,
		LABKm:        h.LAB,
		RhoCrust:     h.RhoCrust,
		RhoMantle:    h.RhoMantle,
		StrainRate:   creep.ReferenceStrainRate,
		SurfaceTempK: thermal.DefaultSurfaceTemp,
		MeshPoints:   thermal.DefaultMeshPoints,
		CrustJq:      crust.Jq,
		CrustA:       crust.A,
		CrustK:       crust.K,
		MantleJq:     mantle.Jq,
		MantleA:      mantle.A,
		MantleK:      mantle.K,
	}
}

// Horizons builds the domain horizon configuration.
func (c *Config) Horizons() model.Horizons {
	return model.Horizons{
		Moho:      c.MohoKm,
		LAB:       c.LABKm,
		RhoCrust:  c.RhoCrust,
		RhoMantle: c.RhoMantle,
	}
}

// ThermalLayers returns the crust and mantle layer parameters.
func (c *Config) ThermalLayers() (crust, mantle model.ThermalLayer) {
	crust = model.ThermalLayer{Jq: c.CrustJq, A: c.CrustA, K: c.CrustK}
	mantle = model.ThermalLayer{Jq: c.MantleJq, A: c.MantleA, K: c.MantleK}
	return crust, mantle
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	if err := c.Horizons().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.StrainRate <= 0 {
		return fmt.Errorf("%w: strain_rate must be positive, got %g", ErrInvalidConfig, c.StrainRate)
	}
	if c.SurfaceTempK <= 0 {
		return fmt.Errorf("%w: surface_temp_k must be positive, got %g", ErrInvalidConfig, c.SurfaceTempK)
	}
	if c.MeshPoints < 2 {
		return fmt.Errorf("%w: mesh_points must be at least 2, got %d", ErrInvalidConfig, c.MeshPoints)
	}
	if c.CrustK <= 0 || c.MantleK <= 0 {
		return fmt.Errorf("%w: conductivities must be positive", ErrInvalidConfig)
	}
	return nil
}
