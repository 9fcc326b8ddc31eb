package nest

import (
	"math"

	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/simulator"
)

// Create creates 'n' cells of given 'model' applying optional 'params' on
// top of the model defaults. The parameter names are checked against the
// reflected descriptor before they reach the engine.
func (s *Session) Create(model string, n int, params simulator.Params) (simulator.NodeIDs, error) {
	switch s.phase {
	case PhaseConfigured, PhaseRunning:
	default:
		return nil, errors.Newf(ClassSessionPhase, "cannot create cells in the '%s' phase", s.phase)
	}

	cellType, err := s.models.CellType(model)
	if err != nil {
		return nil, err
	}
	d := cellType.Descriptor()
	for name := range params {
		if _, ok := d.Parameters[name]; ok {
			continue
		}
		if _, ok := d.InitialValues[name]; ok {
			continue
		}
		return nil, errors.Newf(ClassUnknownParameter, "parameter: '%s' is not defined for the model: '%s'", name, model)
	}

	return s.engine.Create(cellType.NativeModel(s.spikePrecision()), n, params)
}

// Connect connects the 'pre' and 'post' node collections with given
// connectivity rule and synapse parameters. When the synapse parameters
// carry a delay, the realized delays are read back and checked against it:
// a discrepancy below the timestep is rounding and stays silent, anything
// larger fails.
func (s *Session) Connect(pre, post simulator.NodeIDs, conn *simulator.ConnSpec, syn simulator.Params) error {
	switch s.phase {
	case PhaseConfigured, PhaseRunning:
	default:
		return errors.Newf(ClassSessionPhase, "cannot connect cells in the '%s' phase", s.phase)
	}

	if err := s.engine.Connect(pre, post, conn, syn); err != nil {
		return err
	}

	declared, ok := floatParam(syn, "delay")
	if !ok {
		return nil
	}
	conns, err := s.engine.GetConnections(pre, post, synapseModel(syn))
	if err != nil {
		return err
	}
	return s.checkDelays(conns, declared)
}

// SetConnectionParams applies 'params' to every given connection, checking
// the realized delays the same way Connect does.
func (s *Session) SetConnectionParams(conns []simulator.Connection, params simulator.Params) error {
	switch s.phase {
	case PhaseConfigured, PhaseRunning:
	default:
		return errors.Newf(ClassSessionPhase, "cannot set connection params in the '%s' phase", s.phase)
	}

	if err := s.engine.SetConnectionValues(conns, params); err != nil {
		return err
	}

	declared, ok := floatParam(params, "delay")
	if !ok {
		return nil
	}
	return s.checkDelays(conns, declared)
}

// GetConnections lists the connection handles between the 'pre' and 'post'
// node collections, restricted to 'model' when non empty.
func (s *Session) GetConnections(pre, post simulator.NodeIDs, model string) ([]simulator.Connection, error) {
	return s.engine.GetConnections(pre, post, model)
}

// ConnectionParams gets the numeric attribute 'key' of given connections.
func (s *Session) ConnectionParams(conns []simulator.Connection, key string) ([]float64, error) {
	return s.engine.ConnectionValues(conns, key)
}

// checkDelays compares the realized connection delays against the
// 'declared' one. The engine rounds delays to its resolution grid, so a
// discrepancy smaller than one timestep is consistent.
func (s *Session) checkDelays(conns []simulator.Connection, declared float64) error {
	if len(conns) == 0 {
		return nil
	}
	realized, err := s.engine.ConnectionValues(conns, "delay")
	if err != nil {
		return err
	}
	for i, r := range realized {
		if math.Abs(declared-r) >= s.cfg.Timestep {
			return errors.Newf(ClassDelayInconsistent,
				"connection: '%d' -> '%d' realized delay: '%v' differs from the requested: '%v' by the timestep: '%v' or more",
				conns[i].Source, conns[i].Target, r, declared, s.cfg.Timestep)
		}
	}
	return nil
}

// spikePrecision gets the configured spike timing mode, off grid when the
// config keeps its default.
func (s *Session) spikePrecision() simulator.SpikePrecision {
	if precision, ok := simulator.ParseSpikePrecision(s.cfg.SpikePrecision); ok {
		return precision
	}
	return simulator.PrecisionOffGrid
}

func floatParam(params simulator.Params, key string) (float64, bool) {
	value, ok := params[key]
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// synapseModel gets the synapse model name of the connect input, empty for
// the engine default.
func synapseModel(params simulator.Params) string {
	if name, ok := params["synapse_model"].(string); ok {
		return name
	}
	return ""
}
