package config

const (
	// DefaultTimestep is the default simulation grid resolution in milliseconds.
	DefaultTimestep = 0.1
	// DefaultMinDelay is the default lower bound for connection delays in milliseconds.
	DefaultMinDelay = 0.1
	// DefaultMaxDelay is the default upper bound for connection delays in milliseconds.
	DefaultMaxDelay = 10.0
	// DefaultRNGSeed is the seed used when no seed option is provided.
	DefaultRNGSeed = int64(42)
	// DefaultRecordingPrecision is the default number of decimal places
	// written by the recording output handlers.
	DefaultRecordingPrecision = 3
)

// Default returns default simulation configuration.
func Default() *Simulation {
	return &Simulation{
		NamingConvention:   "snake",
		Timestep:           DefaultTimestep,
		MinDelay:           DefaultMinDelay,
		MaxDelay:           DefaultMaxDelay,
		Threads:            1,
		RNGSeed:            DefaultRNGSeed,
		SpikePrecision:     "off_grid",
		RecordingPrecision: DefaultRecordingPrecision,
		FlushDuration:      -1.0,
	}
}
