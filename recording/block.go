package recording

// Block is one labeled recorded data block. A block groups the segments
// recorded between the session resets.
type Block struct {
	// Label identifies the recorded population.
	Label string `json:"label"`
	// Segments are the per run recorded segments.
	Segments []*Segment `json:"segments"`
}

// Segment groups the data recorded during one uninterrupted run.
type Segment struct {
	// SpikeTrains are the recorded spike event times per source.
	SpikeTrains []*SpikeTrain `json:"spike_trains,omitempty"`
	// AnalogSignals are the recorded analog quantities per source.
	AnalogSignals []*AnalogSignal `json:"analog_signals,omitempty"`
}

// SpikeTrain is the ordered list of the spike event times of one source.
type SpikeTrain struct {
	// Source is the global identifier of the recorded node.
	Source uint64 `json:"source"`
	// Times are the spike event times in milliseconds.
	Times []float64 `json:"times"`
}

// AnalogSignal is one regularly sampled recorded quantity of one source.
type AnalogSignal struct {
	// Source is the global identifier of the recorded node.
	Source uint64 `json:"source"`
	// Name is the recorded quantity name.
	Name string `json:"name"`
	// Units is the physical unit label of the recorded quantity.
	Units string `json:"units"`
	// SamplingPeriod is the time between the samples in milliseconds.
	SamplingPeriod float64 `json:"sampling_period"`
	// Values are the recorded samples.
	Values []float64 `json:"values"`
}
