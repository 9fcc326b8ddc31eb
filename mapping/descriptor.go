package mapping

import (
	"github.com/gospike/nest/simulator"
)

// UnitUnknown is the unit label assigned to recordable quantities missing
// from the units table. The reflection never guesses a unit.
const UnitUnknown = "unknown"

// unitsMap assigns physical unit labels to the known recordable quantities.
var unitsMap = map[string]string{
	"spikes":   "ms",
	"V_m":      "mV",
	"I_syn_ex": "pA",
	"I_syn_in": "pA",
}

// engineInternalNames is the fixed set of the engine bookkeeping entries
// excluded from the parameter maps regardless of their value types.
var engineInternalNames = map[string]struct{}{
	"archiver_length":         {},
	"available":               {},
	"Ca":                      {},
	"capacity":                {},
	"elementsize":             {},
	"frozen":                  {},
	"instantiations":          {},
	"local":                   {},
	"model":                   {},
	"needs_prelim_update":     {},
	"recordables":             {},
	"state":                   {},
	"t_spike":                 {},
	"tau_minus":               {},
	"tau_minus_triplet":       {},
	"thread":                  {},
	"vp":                      {},
	"receptor_types":          {},
	"events":                  {},
	"global_id":               {},
	"element_type":            {},
	"type":                    {},
	"type_id":                 {},
	"has_connections":         {},
	"n_synapses":              {},
	"thread_local_id":         {},
	"node_uses_wfr":           {},
	"supports_precise_spikes": {},
	"synaptic_elements":       {},
	"y_0":                     {},
	"y_1":                     {},
	"allow_offgrid_spikes":    {},
	"shift_now_spikes":        {},
	"post_trace":              {},
}

// standardReceptors is the receptor list reported for the models that keep
// the plain excitatory/inhibitory input split.
var standardReceptors = []string{"excitatory", "inhibitory"}

// Descriptor describes one engine model in the simulator neutral vocabulary.
type Descriptor struct {
	// Name is the native model name.
	Name string
	// Collection is the pluralized model label used for recorded data blocks.
	Collection string
	// ElementType is the engine element classification of the model.
	ElementType simulator.ElementType
	// Parameters maps the parameter names to their default values.
	// The values are restricted to int64, float64 and simulator.Sequence.
	Parameters simulator.Params
	// InitialValues maps the recordable state variable names to their
	// default initial values.
	InitialValues simulator.Params
	// ReceptorTypes is the ordered list of the receptor type names.
	ReceptorTypes []string
	// Recordables lists the recordable quantities, always including 'spikes'.
	Recordables []string
	// Units maps every recordable quantity to its physical unit label.
	Units map[string]string
	// Injectable reports whether the model accepts injected current.
	Injectable bool
	// ConductanceBased reports whether any recordable is a conductance quantity.
	ConductanceBased bool
	// StandardReceptors reports whether the receptor list is exactly the
	// standard excitatory/inhibitory pair.
	StandardReceptors bool
	// AlwaysLocal reports whether the model is confined to a single
	// compute process.
	AlwaysLocal bool
	// UsesRelay reports whether the model output must be relayed through
	// a duplicating proxy node.
	UsesRelay bool
}
