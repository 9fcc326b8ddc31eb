package recording

import (
	"encoding/json"
	"math"
	"os"

	"github.com/gospike/nest/errors"
)

func init() {
	RegisterHandler(&jsonHandler{})
}

var _ Handler = &jsonHandler{}

// jsonHandler persists the recorded data blocks as indented json documents.
type jsonHandler struct{}

// Extensions implements Handler interface.
func (j *jsonHandler) Extensions() []string {
	return []string{"json"}
}

// Open implements Handler interface.
func (j *jsonHandler) Open(path string, precision int) (Output, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Newf(ClassOutputFailed, "opening json output: '%s' failed: %v", path, err)
	}
	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return &jsonOutput{file: f, encoder: encoder, precision: precision}, nil
}

// jsonOutput writes one json document per recorded block.
type jsonOutput struct {
	file      *os.File
	encoder   *json.Encoder
	precision int
}

// Write implements Output interface.
func (j *jsonOutput) Write(block *Block) error {
	if err := j.encoder.Encode(roundBlock(block, j.precision)); err != nil {
		return errors.Newf(ClassOutputFailed, "encoding json output failed: %v", err)
	}
	return nil
}

// Close implements Output interface.
func (j *jsonOutput) Close() error {
	if err := j.file.Close(); err != nil {
		return errors.Newf(ClassOutputFailed, "closing json output failed: %v", err)
	}
	return nil
}

// roundBlock copies given 'block' with its numeric data rounded to
// 'precision' decimal places. The input block stays untouched.
func roundBlock(block *Block, precision int) *Block {
	rounded := &Block{Label: block.Label, Segments: make([]*Segment, len(block.Segments))}
	for i, segment := range block.Segments {
		s := &Segment{}
		for _, train := range segment.SpikeTrains {
			s.SpikeTrains = append(s.SpikeTrains, &SpikeTrain{
				Source: train.Source,
				Times:  roundValues(train.Times, precision),
			})
		}
		for _, signal := range segment.AnalogSignals {
			s.AnalogSignals = append(s.AnalogSignals, &AnalogSignal{
				Source:         signal.Source,
				Name:           signal.Name,
				Units:          signal.Units,
				SamplingPeriod: signal.SamplingPeriod,
				Values:         roundValues(signal.Values, precision),
			})
		}
		rounded.Segments[i] = s
	}
	return rounded
}

func roundValues(values []float64, precision int) []float64 {
	shift := math.Pow(10, float64(precision))
	rounded := make([]float64, len(values))
	for i, value := range values {
		rounded[i] = math.Round(value*shift) / shift
	}
	return rounded
}
