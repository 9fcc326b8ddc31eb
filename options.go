package nest

import (
	"github.com/gospike/nest/simulator"
)

// SetupOption changes the extra setup options.
type SetupOption func(o *setupOptions)

// setupOptions collects the extra setup arguments before Setup applies
// them to the session config.
type setupOptions struct {
	maxDelay           *float64
	threads            *int
	verbosity          *string
	spikePrecision     *simulator.SpikePrecision
	recordingPrecision *int
	flushDuration      *float64

	seed            *int64
	legacySeeds     []int64
	legacySeedsSeed *int64
	legacyGRNGSeed  *int64
}

// WithMaxDelay sets the upper connection delay bound in milliseconds.
func WithMaxDelay(maxDelay float64) SetupOption {
	return func(o *setupOptions) {
		o.maxDelay = &maxDelay
	}
}

// WithThreads sets the number of the engine worker threads.
func WithThreads(threads int) SetupOption {
	return func(o *setupOptions) {
		o.threads = &threads
	}
}

// WithVerbosity sets the session logging level name.
func WithVerbosity(verbosity string) SetupOption {
	return func(o *setupOptions) {
		o.verbosity = &verbosity
	}
}

// WithSpikePrecision sets the spike event timing mode.
func WithSpikePrecision(precision simulator.SpikePrecision) SetupOption {
	return func(o *setupOptions) {
		o.spikePrecision = &precision
	}
}

// WithRecordingPrecision sets the number of decimal places written by the
// recording output handlers.
func WithRecordingPrecision(precision int) SetupOption {
	return func(o *setupOptions) {
		o.recordingPrecision = &precision
	}
}

// WithFlushDuration sets the extra time in milliseconds simulated after a
// session reset, so the previous run does not influence the new one.
// A negative duration disables the flush run.
func WithFlushDuration(duration float64) SetupOption {
	return func(o *setupOptions) {
		o.flushDuration = &duration
	}
}

// WithRNGSeed sets the seed of the engine global random number generator.
// The explicit seed takes priority over every deprecated seed alias.
func WithRNGSeed(seed int64) SetupOption {
	return func(o *setupOptions) {
		o.seed = &seed
	}
}

// WithRNGSeeds sets the legacy per thread seed list. Only the first seed
// is applied, the rest is discarded.
//
// Deprecated: use WithRNGSeed.
func WithRNGSeeds(seeds ...int64) SetupOption {
	return func(o *setupOptions) {
		// keep an empty list distinguishable from an absent one
		o.legacySeeds = append([]int64{}, seeds...)
	}
}

// WithRNGSeedsSeed sets the legacy seed that used to generate the per
// thread seed list.
//
// Deprecated: use WithRNGSeed.
func WithRNGSeedsSeed(seed int64) SetupOption {
	return func(o *setupOptions) {
		o.legacySeedsSeed = &seed
	}
}

// WithGRNGSeed sets the legacy global generator seed.
//
// Deprecated: use WithRNGSeed.
func WithGRNGSeed(seed int64) SetupOption {
	return func(o *setupOptions) {
		o.legacyGRNGSeed = &seed
	}
}
