package nest

import (
	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/log"
	"github.com/gospike/nest/recording"
)

// Population is the interface of the recordable node collections consumed
// by the session recording calls. The population layer implements it over
// the engine recording devices.
type Population interface {
	// Label gets the population data block label.
	Label() string
	// Record arms the recording of given 'variables'.
	Record(variables []string) error
	// WriteData writes the data recorded for 'variables' to given output.
	WriteData(out recording.Output, variables []string) error
}

// pendingWrite is one registered end of session write request.
type pendingWrite struct {
	population  Population
	variables   []string
	destination string
	handler     recording.Handler
}

// Record arms the recording of the named 'variables' on the 'source'
// population. A non empty 'destination' additionally registers a pending
// write request - End then writes the recorded data through the output
// handler claiming the destination extension. The handler is resolved
// right away, so an unsupported destination fails the Record call instead
// of the End one.
func (s *Session) Record(variables []string, source Population, destination string) error {
	switch s.phase {
	case PhaseConfigured, PhaseRunning:
	default:
		return errors.Newf(ClassSessionPhase, "cannot record in the '%s' phase", s.phase)
	}
	if source == nil {
		return errors.New(ClassRecordInput, "provided nil source population")
	}
	if len(variables) == 0 {
		return errors.New(ClassRecordInput, "provided no variables to record")
	}

	var handler recording.Handler
	if destination != "" {
		var err error
		if handler, err = recording.Get(destination); err != nil {
			return err
		}
	}

	if err := source.Record(variables); err != nil {
		return err
	}
	if destination == "" {
		return nil
	}
	s.writeOnEnd = append(s.writeOnEnd, &pendingWrite{
		population:  source,
		variables:   variables,
		destination: destination,
		handler:     handler,
	})

	log.Debug2f("Recording %v of '%s' --> '%s'.", variables, source.Label(), destination)
	return nil
}

// RecordV arms the membrane potential recording on the 'source' population.
func (s *Session) RecordV(source Population, destination string) error {
	return s.Record([]string{"V_m"}, source, destination)
}

// RecordGSyn arms the synaptic conductance recording on the 'source'
// population.
func (s *Session) RecordGSyn(source Population, destination string) error {
	return s.Record([]string{"g_ex", "g_in"}, source, destination)
}

// PendingWrites gets the number of the write requests End still flushes.
func (s *Session) PendingWrites() int {
	return len(s.writeOnEnd)
}

// TempDirs gets the number of the session temporary directories still
// awaiting their End removal.
func (s *Session) TempDirs() int {
	return len(s.tempDirs)
}
