package mocksim

import (
	"io/ioutil"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/simulator"
)

// Model is a single entry of the engine model table. The Defaults map keeps
// the raw model parameters, whereas the recordable state variables, the
// receptor mapping and the element classification are stored in their own
// fields and merged into the status dictionary by Engine.GetDefaults.
type Model struct {
	Name          string                 `yaml:"name"`
	ElementType   string                 `yaml:"element_type"`
	Defaults      map[string]interface{} `yaml:"defaults"`
	Recordables   []string               `yaml:"recordables,omitempty"`
	ReceptorTypes map[string]int         `yaml:"receptor_types,omitempty"`
}

// copyDefaults creates a shallow copy of the model defaults map.
func (m *Model) copyDefaults() map[string]interface{} {
	cp := make(map[string]interface{}, len(m.Defaults)+4)
	for k, v := range m.Defaults {
		cp[k] = v
	}
	return cp
}

// LoadModels reads a yaml encoded model table from the file at 'path'.
func LoadModels(path string) ([]*Model, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.NewDetf(simulator.ClassModelTable, "reading model table: '%s' failed: %v", path, err)
	}
	var models []*Model
	if err = yaml.Unmarshal(data, &models); err != nil {
		return nil, errors.NewDetf(simulator.ClassModelTable, "decoding model table: '%s' failed: %v", path, err)
	}
	for _, model := range models {
		if model.Name == "" {
			return nil, errors.NewDet(simulator.ClassModelTable, "model table entry with no name")
		}
		if model.ElementType == "" {
			model.ElementType = string(simulator.ElementNeuron)
		}
		if model.Defaults == nil {
			model.Defaults = map[string]interface{}{}
		}
	}
	return models, nil
}

// Builtin creates the builtin model table. The entries follow the status
// dictionaries of the common native models, including the internal
// bookkeeping entries and the non numeric parameters that the reflection
// layer is expected to filter out.
func Builtin() []*Model {
	return []*Model{
		{
			Name:        "iaf_psc_alpha",
			ElementType: string(simulator.ElementNeuron),
			Defaults: map[string]interface{}{
				"C_m":        250.0,
				"E_L":        -70.0,
				"I_e":        0.0,
				"t_ref":      2.0,
				"tau_m":      10.0,
				"tau_syn_ex": 2.0,
				"tau_syn_in": 2.0,
				"V_min":      -math.MaxFloat64,
				"V_reset":    -70.0,
				"V_th":       -55.0,
				"V_m":        -70.0,
				// internal bookkeeping entries
				"archiver_length":         0,
				"frozen":                  false,
				"global_id":               0,
				"local":                   true,
				"model":                   "iaf_psc_alpha",
				"node_uses_wfr":           false,
				"supports_precise_spikes": false,
				"t_spike":                 -1.0,
				"tau_minus":               20.0,
				"tau_minus_triplet":       110.0,
				"thread":                  0,
				"thread_local_id":         -1,
				"vp":                      -1,
			},
			Recordables: []string{"I_syn_ex", "I_syn_in", "V_m"},
		},
		{
			Name:        "iaf_cond_exp",
			ElementType: string(simulator.ElementNeuron),
			Defaults: map[string]interface{}{
				"C_m":        250.0,
				"E_L":        -70.0,
				"E_ex":       0.0,
				"E_in":       -85.0,
				"g_L":        16.6667,
				"I_e":        0.0,
				"t_ref":      2.0,
				"tau_syn_ex": 0.2,
				"tau_syn_in": 2.0,
				"V_reset":    -60.0,
				"V_th":       -55.0,
				"V_m":        -70.0,
				"t_spike":    -1.0,
				"thread":     0,
				"vp":         -1,
			},
			Recordables: []string{"g_ex", "g_in", "V_m"},
		},
		{
			Name:        "ht_neuron",
			ElementType: string(simulator.ElementNeuron),
			Defaults: map[string]interface{}{
				"C_m":           100.0,
				"E_K":           -90.0,
				"E_Na":          30.0,
				"g_KL":          1.0,
				"g_NaL":         0.2,
				"t_ref":         2.0,
				"tau_m":         16.0,
				"tau_spike":     1.75,
				"tau_theta":     2.0,
				"tau_D_KNa":     1250.0,
				"theta_eq":      -51.0,
				"V_m":           -70.0,
				"theta":         -51.0,
				"voltage_clamp": false,
				"t_spike":       -1.0,
			},
			Recordables: []string{"V_m", "theta", "g_AMPA", "g_NMDA", "g_GABA_A", "g_GABA_B"},
			ReceptorTypes: map[string]int{
				"AMPA":   1,
				"NMDA":   2,
				"GABA_A": 3,
				"GABA_B": 4,
			},
		},
		{
			Name:        "poisson_generator",
			ElementType: string(simulator.ElementStimulator),
			Defaults: map[string]interface{}{
				"rate":   0.0,
				"origin": 0.0,
				"start":  0.0,
				"stop":   math.MaxFloat64,
				"model":  "poisson_generator",
				"frozen": false,
				"local":  true,
			},
		},
		{
			Name:        "dc_generator",
			ElementType: string(simulator.ElementStimulator),
			Defaults: map[string]interface{}{
				"amplitude": 0.0,
				"origin":    0.0,
				"start":     0.0,
				"stop":      math.MaxFloat64,
			},
		},
		{
			Name:        "noise_generator",
			ElementType: string(simulator.ElementStimulator),
			Defaults: map[string]interface{}{
				"mean":      0.0,
				"std":       0.0,
				"std_mod":   0.0,
				"dt":        0.1,
				"frequency": 0.0,
				"phase":     0.0,
				"origin":    0.0,
				"start":     0.0,
				"stop":      math.MaxFloat64,
			},
		},
		{
			Name:        "spike_generator",
			ElementType: string(simulator.ElementStimulator),
			Defaults: map[string]interface{}{
				"spike_times":          simulator.Sequence{},
				"spike_weights":        simulator.Sequence{},
				"precise_times":        false,
				"allow_offgrid_spikes": false,
				"shift_now_spikes":     false,
				"origin":               0.0,
				"start":                0.0,
				"stop":                 math.MaxFloat64,
			},
		},
		{
			Name:        "spike_detector",
			ElementType: string(simulator.ElementRecorder),
			Defaults: map[string]interface{}{
				"n_events": 0,
				"origin":   0.0,
				"start":    0.0,
				"stop":     math.MaxFloat64,
			},
		},
		{
			Name:        "multimeter",
			ElementType: string(simulator.ElementRecorder),
			Defaults: map[string]interface{}{
				"interval":    1.0,
				"n_events":    0,
				"record_from": []string{},
				"origin":      0.0,
				"start":       0.0,
				"stop":        math.MaxFloat64,
			},
		},
		{
			Name:        "static_synapse",
			ElementType: string(simulator.ElementSynapse),
			Defaults: map[string]interface{}{
				"delay":         1.0,
				"weight":        1.0,
				"receptor_type": 0,
				"synapse_model": "static_synapse",
			},
		},
		{
			Name:        "stdp_synapse",
			ElementType: string(simulator.ElementSynapse),
			Defaults: map[string]interface{}{
				"Wmax":          100.0,
				"alpha":         1.0,
				"delay":         1.0,
				"lambda":        0.01,
				"mu_minus":      1.0,
				"mu_plus":       1.0,
				"tau_plus":      20.0,
				"weight":        1.0,
				"receptor_type": 0,
				"synapse_model": "stdp_synapse",
			},
		},
	}
}
