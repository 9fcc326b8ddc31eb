package simulator

// Params is the map of engine parameter values keyed by their names.
type Params map[string]interface{}

// Copy creates a shallow copy of the params.
func (p Params) Copy() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Sequence is a typed numeric sequence parameter value.
type Sequence []float64

// NodeID is the engine global node identifier.
type NodeID uint64

// NodeIDs is the ordered collection of engine node identifiers.
type NodeIDs []NodeID

// ElementType is the engine element classification tag.
type ElementType string

// Engine element classifications.
const (
	// ElementNeuron classifies the dynamical node models.
	ElementNeuron ElementType = "neuron"
	// ElementStimulator classifies the pure spike or current sources
	// with no dynamical state.
	ElementStimulator ElementType = "stimulator"
	// ElementRecorder classifies the recording devices.
	ElementRecorder ElementType = "recorder"
	// ElementSynapse classifies the connection models.
	ElementSynapse ElementType = "synapse"
)

// SpikePrecision is the spike event timing mode of the engine kernel.
type SpikePrecision string

// Spike event timing modes.
const (
	// PrecisionOffGrid allows spike events between the simulation grid points.
	PrecisionOffGrid SpikePrecision = "off_grid"
	// PrecisionOnGrid constrains spike events to the simulation grid points.
	PrecisionOnGrid SpikePrecision = "on_grid"
)

// ParseSpikePrecision parses the spike precision mode from its config name.
func ParseSpikePrecision(name string) (SpikePrecision, bool) {
	switch SpikePrecision(name) {
	case PrecisionOffGrid:
		return PrecisionOffGrid, true
	case PrecisionOnGrid:
		return PrecisionOnGrid, true
	}
	return SpikePrecision(""), false
}

// Connection is the engine connection handle.
type Connection struct {
	// Source is the presynaptic node.
	Source NodeID
	// Target is the postsynaptic node.
	Target NodeID
	// SynapseModel is the synapse model name of given connection.
	SynapseModel string
	// Port is the receptor port on the target node.
	Port int
}

// ConnSpec defines the connectivity rule for the engine Connect call.
type ConnSpec struct {
	// Rule is the engine connection rule name, i.e. 'one_to_one' or
	// 'all_to_all'.
	Rule string
	// Probability is the connection probability used by the
	// probabilistic rules.
	Probability float64
}

// Kernel status parameter names shared by the engine implementations.
const (
	// KeyResolution is the simulation grid resolution in milliseconds.
	KeyResolution = "resolution"
	// KeyMinDelay is the lower connection delay bound in milliseconds.
	KeyMinDelay = "min_delay"
	// KeyMaxDelay is the upper connection delay bound in milliseconds.
	KeyMaxDelay = "max_delay"
	// KeyRNGSeed is the kernel global random number generator seed.
	KeyRNGSeed = "rng_seed"
	// KeyThreads is the number of the kernel worker threads.
	KeyThreads = "local_num_threads"
	// KeyOffGridSpiking enables the off grid spike event timing.
	KeyOffGridSpiking = "off_grid_spiking"
)
