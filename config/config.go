package config

import (
	"github.com/gospike/nest/errors"
)

// Simulation defines the configuration for a simulation session.
type Simulation struct {
	// NamingConvention is the naming convention used while labeling
	// recorded data blocks.
	// Allowed values:
	// - camel
	// - lowercamel
	// - snake
	// - kebab
	NamingConvention string `mapstructure:"naming_convention" validate:"isdefault|oneof=camel lowercamel snake kebab"`

	// Timestep is the simulation grid resolution in milliseconds.
	Timestep float64 `mapstructure:"timestep" validate:"gt=0"`

	// MinDelay is the lower bound for connection delays in milliseconds.
	MinDelay float64 `mapstructure:"min_delay" validate:"gt=0"`

	// MaxDelay is the upper bound for connection delays in milliseconds.
	MaxDelay float64 `mapstructure:"max_delay" validate:"gt=0"`

	// Threads is the number of engine worker threads.
	Threads int `mapstructure:"threads" validate:"min=1"`

	// RNGSeed is the seed for the engine global random number generator.
	RNGSeed int64 `mapstructure:"rng_seed" validate:"min=0"`

	// Verbosity is the session logging level.
	Verbosity string `mapstructure:"verbosity" validate:"isdefault|oneof=debug3 debug2 debug info warning error critical"`

	// SpikePrecision defines the spike event timing mode. Off grid events
	// may occur between the simulation grid points.
	// Allowed values:
	// - off_grid
	// - on_grid
	SpikePrecision string `mapstructure:"spike_precision" validate:"isdefault|oneof=off_grid on_grid"`

	// RecordingPrecision is the number of decimal places written
	// by the recording output handlers.
	RecordingPrecision int `mapstructure:"recording_precision" validate:"min=0"`

	// FlushDuration is the extra time in milliseconds simulated after a
	// session reset so the previous run does not influence the new one.
	// Negative value disables the flush run.
	FlushDuration float64 `mapstructure:"t_flush"`

	// Engine defines the simulation engine driver configuration.
	Engine *Engine `mapstructure:"engine" validate:"-"`
}

// Validate checks the cross field simulation config values.
func (s *Simulation) Validate() error {
	if s.Timestep <= 0 {
		return errors.Newf(ClassConfigInvalidValue, "timestep must be positive, got: '%v'", s.Timestep)
	}
	if s.MinDelay < s.Timestep {
		return errors.Newf(ClassConfigInvalidValue, "min_delay: '%v' is smaller than the timestep: '%v'", s.MinDelay, s.Timestep)
	}
	if s.MaxDelay < s.MinDelay {
		return errors.Newf(ClassConfigInvalidValue, "max_delay: '%v' is smaller than min_delay: '%v'", s.MaxDelay, s.MinDelay)
	}
	return nil
}

// Engine defines the configuration for the simulation engine driver.
type Engine struct {
	// DriverName defines the name for the engine driver.
	DriverName string `mapstructure:"engine_driver"`

	// ModelTables is the path of the engine model definitions, in case the
	// driver loads them from a file.
	ModelTables string `mapstructure:"model_tables"`

	// Options contains engine dependent specific options.
	Options map[string]interface{} `mapstructure:"options"`
}
