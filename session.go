package nest

import (
	"context"
	"io/ioutil"
	"os"
	"strings"

	"github.com/neuronlabs/uni-logger"
	"gopkg.in/go-playground/validator.v9"

	"github.com/gospike/nest/config"
	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/log"
	"github.com/gospike/nest/mapping"
	"github.com/gospike/nest/namer"
	"github.com/gospike/nest/simulator"
)

var validate = validator.New()

// Session is one explicit simulation session over an engine instance. It
// owns the lifecycle state machine, the kernel configuration, the model
// reflection cache and the bookkeeping of the pending data writes and
// temporary directories.
//
// A session assumes single writer, non reentrant use within one process.
type Session struct {
	engine simulator.Engine
	cfg    *config.Simulation
	models *mapping.Map

	namerFunc namer.Namer

	phase        Phase
	time         float64
	segments     int
	rank         int
	numProcesses int

	writeOnEnd []*pendingWrite
	tempDirs   []string
}

// New creates the session facade over given engine 'e'. For a nil 'cfg'
// the default simulation config is used. The session starts uninitialized,
// call Setup before running.
func New(e simulator.Engine, cfg *config.Simulation) (*Session, error) {
	if e == nil {
		return nil, errors.New(ClassSetupValue, "provided nil engine value")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	namerFunc, err := namerFor(cfg)
	if err != nil {
		return nil, err
	}
	s := &Session{
		engine:    e,
		cfg:       cfg,
		models:    mapping.NewMap(e, namerFunc),
		namerFunc: namerFunc,
		phase:     PhaseUninitialized,
	}
	return s, nil
}

// NewFromConfig creates the session over the engine built by the factory
// registered for the config engine driver name.
func NewFromConfig(cfg *config.Simulation) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.Engine == nil || cfg.Engine.DriverName == "" {
		return nil, errors.New(ClassSetupValue, "no engine driver defined in the config")
	}
	factory := simulator.GetFactory(cfg.Engine.DriverName)
	if factory == nil {
		return nil, errors.Newf(simulator.ClassFactoryNotFound, "engine factory: '%s' is not registered", cfg.Engine.DriverName)
	}
	e, err := factory.New(cfg.Engine)
	if err != nil {
		return nil, err
	}
	return New(e, cfg)
}

// Setup configures the session and the engine kernel and transitions the
// session to the configured phase. It is valid on an uninitialized and on
// an ended session - calling it after End starts the next session over the
// same engine with the simulation clock and the bookkeeping lists cleared.
// Zero 'timestep' or 'minDelay' keep their currently configured values.
//
// Setup resolves the rng seed precedence: an explicit WithRNGSeed always
// wins, the deprecated aliases follow, and without any seed option the
// configured default stays.
//
// Returns the identifier of the calling compute process within the
// distributed session, 0 on a single process session.
func (s *Session) Setup(timestep, minDelay float64, options ...SetupOption) (int, error) {
	switch s.phase {
	case PhaseUninitialized, PhaseEnded:
	default:
		return 0, errors.Newf(ClassSessionPhase, "cannot setup a session in the '%s' phase", s.phase)
	}

	if timestep != 0 {
		s.cfg.Timestep = timestep
	}
	if minDelay != 0 {
		s.cfg.MinDelay = minDelay
	}

	o := &setupOptions{}
	for _, option := range options {
		option(o)
	}
	if err := s.applyOptions(o); err != nil {
		return 0, err
	}

	s.cfg.NamingConvention = strings.ToLower(s.cfg.NamingConvention)
	if err := validate.Struct(s.cfg); err != nil {
		return 0, errors.Newf(ClassSetupValue, "validating session config failed: %v", err)
	}
	if err := s.cfg.Validate(); err != nil {
		return 0, err
	}

	// set the log level from the session config.
	if s.cfg.Verbosity != "" {
		level := unilogger.ParseLevel(s.cfg.Verbosity)
		if level == unilogger.UNKNOWN {
			return 0, errors.Newf(ClassSetupValue, "invalid 'verbosity' value: '%s'", s.cfg.Verbosity)
		}
		if log.Logger() == nil {
			log.Default()
		}
		if err := log.SetLevel(level); err != nil {
			return 0, err
		}
	}

	offGrid := true
	if s.cfg.SpikePrecision != "" {
		precision, ok := simulator.ParseSpikePrecision(s.cfg.SpikePrecision)
		if !ok {
			return 0, errors.Newf(ClassSetupValue, "invalid 'spike_precision' value: '%s'", s.cfg.SpikePrecision)
		}
		offGrid = precision == simulator.PrecisionOffGrid
	}

	if err := s.engine.ResetKernel(); err != nil {
		return 0, err
	}
	err := s.engine.SetKernelStatus(simulator.Params{
		simulator.KeyResolution:     s.cfg.Timestep,
		simulator.KeyMinDelay:       s.cfg.MinDelay,
		simulator.KeyMaxDelay:       s.cfg.MaxDelay,
		simulator.KeyRNGSeed:        s.cfg.RNGSeed,
		simulator.KeyThreads:        s.cfg.Threads,
		simulator.KeyOffGridSpiking: offGrid,
	})
	if err != nil {
		return 0, err
	}

	// externally driven event sources keep exact event times by default
	if err = s.engine.SetDefaults("spike_generator", simulator.Params{"precise_times": true}); err != nil {
		return 0, err
	}

	s.time = 0
	s.segments = 0
	s.writeOnEnd = nil
	s.rank = s.engine.Rank()
	s.numProcesses = s.engine.NumProcesses()
	s.phase = PhaseConfigured

	log.Debugf("Session configured: timestep: '%v', min_delay: '%v', max_delay: '%v', rng_seed: '%d'.",
		s.cfg.Timestep, s.cfg.MinDelay, s.cfg.MaxDelay, s.cfg.RNGSeed)
	return s.rank, nil
}

// applyOptions applies the extra setup arguments to the session config.
// Every deprecated seed alias present warns, whether it wins or not.
func (s *Session) applyOptions(o *setupOptions) error {
	if o.maxDelay != nil {
		s.cfg.MaxDelay = *o.maxDelay
	}
	if o.threads != nil {
		s.cfg.Threads = *o.threads
	}
	if o.verbosity != nil {
		s.cfg.Verbosity = *o.verbosity
	}
	if o.spikePrecision != nil {
		s.cfg.SpikePrecision = string(*o.spikePrecision)
	}
	if o.recordingPrecision != nil {
		s.cfg.RecordingPrecision = *o.recordingPrecision
	}
	if o.flushDuration != nil {
		s.cfg.FlushDuration = *o.flushDuration
	}

	var seed *int64
	if o.legacyGRNGSeed != nil {
		log.Warningf("The setup argument 'grng_seed' is now 'rng_seed'")
		seed = o.legacyGRNGSeed
	}
	if o.legacySeedsSeed != nil {
		log.Warningf("The setup argument 'rng_seeds_seed' is now 'rng_seed'")
		seed = o.legacySeedsSeed
	}
	if o.legacySeeds != nil {
		log.Warningf("The setup argument 'rng_seeds' is no longer available. Taking the first value for the global seed.")
		if len(o.legacySeeds) == 0 {
			return errors.New(ClassSetupValue, "provided empty 'rng_seeds' list")
		}
		first := o.legacySeeds[0]
		seed = &first
	}
	if o.seed != nil {
		seed = o.seed
	}
	if seed != nil {
		s.cfg.RNGSeed = *seed
	}
	return nil
}

// Run advances the simulation by 'duration' milliseconds. The call blocks
// until the engine simulated the full duration and there is no
// cancellation - once invoked, the run completes or fails. Engine errors
// surface unmodified, they are not recoverable at this layer.
func (s *Session) Run(duration float64) error {
	switch s.phase {
	case PhaseConfigured, PhaseRunning:
	default:
		return errors.Newf(ClassSessionPhase, "cannot run a session in the '%s' phase", s.phase)
	}
	if duration < 0 {
		return errors.Newf(ClassInvalidDuration, "cannot run a negative duration: '%v'", duration)
	}

	s.phase = PhaseRunning
	if err := s.engine.Simulate(duration); err != nil {
		return err
	}
	s.time += duration
	return nil
}

// RunUntil advances the simulation until the absolute time 't' in
// milliseconds.
func (s *Session) RunUntil(t float64) error {
	return s.Run(t - s.time)
}

// Reset zeroes the simulation clock keeping the configuration and the
// network topology. The data recorded before the reset stays retained in
// its own segment. With a non negative flush duration configured the
// engine first simulates that much extra time, so events still in the
// delay pipelines do not leak into the next run.
func (s *Session) Reset() error {
	switch s.phase {
	case PhaseConfigured, PhaseRunning:
	default:
		return errors.Newf(ClassSessionPhase, "cannot reset a session in the '%s' phase", s.phase)
	}

	if s.time > 0 && s.cfg.FlushDuration >= 0 {
		if err := s.engine.Simulate(s.cfg.FlushDuration); err != nil {
			return err
		}
	}

	s.time = 0
	s.segments++
	s.phase = PhaseConfigured
	return nil
}

// End tears the session down: every pending write registered with Record
// is flushed through its output handler and every session temporary
// directory is removed, then both lists are cleared. A repeated End is a
// no op, an End with nothing registered is safe. All teardown steps run
// even when some of them fail - the failures come back joined in a single
// multi error.
//
// The engine itself stays usable after End, a new Setup starts the next
// session over it. Close releases the engine.
func (s *Session) End() error {
	if s.phase == PhaseEnded {
		return nil
	}

	var errs errors.MultiError
	for _, w := range s.writeOnEnd {
		log.Debugf("%s%v --> %s", w.population.Label(), w.variables, w.destination)
		if err := s.flush(w); err != nil {
			errs = append(errs, err)
		}
	}
	s.writeOnEnd = nil

	for _, dir := range s.tempDirs {
		if err := os.RemoveAll(dir); err != nil {
			errs = append(errs, errors.Newf(ClassTempDir, "removing session tempdir: '%s' failed: %v", dir, err))
		}
	}
	s.tempDirs = nil

	s.phase = PhaseEnded
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// flush writes one pending write request through its output handler.
func (s *Session) flush(w *pendingWrite) error {
	out, err := w.handler.Open(w.destination, s.cfg.RecordingPrecision)
	if err != nil {
		return err
	}
	if err = w.population.WriteData(out, w.variables); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Close ends the session if it still runs and releases the engine. After
// Close the engine rejects any call - including the Setup of a next
// session.
func (s *Session) Close(ctx context.Context) error {
	var errs errors.MultiError
	if err := s.End(); err != nil {
		if multi, ok := err.(errors.MultiError); ok {
			errs = append(errs, multi...)
		} else {
			errs = append(errs, err)
		}
	}
	if err := s.engine.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TempDir creates a session scoped temporary directory. The directory and
// its content are removed at End.
func (s *Session) TempDir() (string, error) {
	if s.phase == PhaseEnded {
		return "", errors.Newf(ClassSessionPhase, "cannot create a tempdir in the '%s' phase", s.phase)
	}
	dir, err := ioutil.TempDir("", "nest-session")
	if err != nil {
		return "", errors.Newf(ClassTempDir, "creating session tempdir failed: %v", err)
	}
	s.tempDirs = append(s.tempDirs, dir)
	return dir, nil
}

// CurrentTime gets the current simulation time in milliseconds.
func (s *Session) CurrentTime() float64 {
	return s.time
}

// Timestep gets the simulation grid resolution in milliseconds.
func (s *Session) Timestep() float64 {
	return s.cfg.Timestep
}

// MinDelay gets the lower connection delay bound in milliseconds.
func (s *Session) MinDelay() float64 {
	return s.cfg.MinDelay
}

// MaxDelay gets the upper connection delay bound in milliseconds.
func (s *Session) MaxDelay() float64 {
	return s.cfg.MaxDelay
}

// NumProcesses gets the number of the distributed compute processes.
func (s *Session) NumProcesses() int {
	return s.numProcesses
}

// Rank gets the identifier of the calling compute process.
func (s *Session) Rank() int {
	return s.rank
}

// Phase gets the current session lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Segment gets the zero based index of the current recording segment. The
// index grows with every Reset.
func (s *Session) Segment() int {
	return s.segments
}

// Engine gets the underlying simulation engine.
func (s *Session) Engine() simulator.Engine {
	return s.engine
}

// namerFor maps the config naming convention onto its namer function.
func namerFor(cfg *config.Simulation) (namer.Namer, error) {
	cfg.NamingConvention = strings.ToLower(cfg.NamingConvention)
	switch cfg.NamingConvention {
	case "kebab":
		return namer.NamingKebab, nil
	case "camel":
		return namer.NamingCamel, nil
	case "lowercamel":
		return namer.NamingLowerCamel, nil
	case "snake", "":
		return namer.NamingSnake, nil
	}
	return nil, errors.Newf(ClassSetupValue, "unknown naming convention name: %s", cfg.NamingConvention)
}
