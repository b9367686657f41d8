// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Default model parameters. Radii and thicknesses are in Angstroms,
// the density is in Dalton / Angstrom^3.
const (
	DefaultStericRadius       = 1.9025
	DefaultHydrodynamicRadius = 4.2
	DefaultEffectiveDensity   = 0.52
	DefaultHydrationThickness = 3.0
	DefaultEnsembleSize       = 30
	DefaultBootstrapRounds    = 10
)

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those from the command line
type Config struct {
	// steric size of linker beads (Angstrom)
	StericRadius float64 `mapstructure:"steric-radius"`

	// hydrodynamic size of linker beads (Angstrom)
	HydrodynamicRadius float64 `mapstructure:"hydrodynamic-radius"`

	// effective density of structured domains (Dalton / Angstrom^3)
	EffectiveDensity float64 `mapstructure:"effective-density"`

	// thickness of the hydration shell around domains (Angstrom)
	HydrationThickness float64 `mapstructure:"hydration-thickness"`

	// number of conformers sampled per prediction
	EnsembleSize int `mapstructure:"ensemble-size"`

	// number of bootstrap rounds for Monte Carlo error estimation.
	// zero disables error estimation
	BootstrapRounds int `mapstructure:"bootstrap-rounds"`

	// per-residue mass overrides (Dalton), keyed by single letter code.
	// residues not listed fall back to the built-in table
	AminoacidMasses map[string]float64 `mapstructure:"aminoacid-masses"`

	// seed for the random source. zero means time-derived
	Seed int64 `mapstructure:"seed"`

	// number of concurrent workers for ensemble generation.
	// zero means one per CPU
	Threads int `mapstructure:"threads"`
}

// Setup registers the default for every setting with Viper. It must be
// called once, before any call to New, and before flag binding so that
// command line flags take precedence over these values
func Setup() {
	viper.SetDefault("steric-radius", DefaultStericRadius)
	viper.SetDefault("hydrodynamic-radius", DefaultHydrodynamicRadius)
	viper.SetDefault("effective-density", DefaultEffectiveDensity)
	viper.SetDefault("hydration-thickness", DefaultHydrationThickness)
	viper.SetDefault("ensemble-size", DefaultEnsembleSize)
	viper.SetDefault("bootstrap-rounds", DefaultBootstrapRounds)
	viper.SetDefault("seed", 0)
	viper.SetDefault("threads", 0)
}

// New returns a new Config struct populated by Viper settings
// (defaults registered in Setup and/or command line arguments)
func New() *Config {
	c := &Config{}

	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return c
}

// Default returns a Config holding only the built-in defaults,
// without consulting Viper. Used directly by tests
func Default() *Config {
	return &Config{
		StericRadius:       DefaultStericRadius,
		HydrodynamicRadius: DefaultHydrodynamicRadius,
		EffectiveDensity:   DefaultEffectiveDensity,
		HydrationThickness: DefaultHydrationThickness,
		EnsembleSize:       DefaultEnsembleSize,
		BootstrapRounds:    DefaultBootstrapRounds,
	}
}
