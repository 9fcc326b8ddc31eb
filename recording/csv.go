package recording

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/gospike/nest/errors"
)

func init() {
	RegisterHandler(&csvHandler{})
}

var _ Handler = &csvHandler{}

// csvHandler persists the recorded data blocks as flat csv tables.
type csvHandler struct{}

// Extensions implements Handler interface.
func (c *csvHandler) Extensions() []string {
	return []string{"csv"}
}

// Open implements Handler interface.
func (c *csvHandler) Open(path string, precision int) (Output, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Newf(ClassOutputFailed, "opening csv output: '%s' failed: %v", path, err)
	}
	return &csvOutput{file: f, writer: csv.NewWriter(f), precision: precision}, nil
}

// csvHeader names the columns of the long form csv table.
var csvHeader = []string{"label", "segment", "signal", "source", "name", "units", "time", "value"}

// csvOutput writes one row per recorded spike event or analog sample.
type csvOutput struct {
	file        *os.File
	writer      *csv.Writer
	precision   int
	wroteHeader bool
}

// Write implements Output interface.
func (c *csvOutput) Write(block *Block) error {
	if !c.wroteHeader {
		if err := c.writer.Write(csvHeader); err != nil {
			return errors.Newf(ClassOutputFailed, "writing csv header failed: %v", err)
		}
		c.wroteHeader = true
	}
	for i, segment := range block.Segments {
		segmentIndex := strconv.Itoa(i)
		for _, train := range segment.SpikeTrains {
			source := strconv.FormatUint(train.Source, 10)
			for _, time := range train.Times {
				row := []string{block.Label, segmentIndex, "spike", source, "spikes", "ms", c.format(time), ""}
				if err := c.writer.Write(row); err != nil {
					return errors.Newf(ClassOutputFailed, "writing csv row failed: %v", err)
				}
			}
		}
		for _, signal := range segment.AnalogSignals {
			source := strconv.FormatUint(signal.Source, 10)
			for j, value := range signal.Values {
				time := float64(j) * signal.SamplingPeriod
				row := []string{block.Label, segmentIndex, "analog", source, signal.Name, signal.Units, c.format(time), c.format(value)}
				if err := c.writer.Write(row); err != nil {
					return errors.Newf(ClassOutputFailed, "writing csv row failed: %v", err)
				}
			}
		}
	}
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return errors.Newf(ClassOutputFailed, "flushing csv output failed: %v", err)
	}
	return nil
}

// Close implements Output interface.
func (c *csvOutput) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		c.file.Close()
		return errors.Newf(ClassOutputFailed, "flushing csv output failed: %v", err)
	}
	if err := c.file.Close(); err != nil {
		return errors.Newf(ClassOutputFailed, "closing csv output failed: %v", err)
	}
	return nil
}

func (c *csvOutput) format(value float64) string {
	return strconv.FormatFloat(value, 'f', c.precision, 64)
}
