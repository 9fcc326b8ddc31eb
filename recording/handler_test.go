package recording

import (
	"encoding/csv"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospike/nest/errors"
)

func testBlock() *Block {
	return &Block{
		Label: "iaf_psc_alphas",
		Segments: []*Segment{
			{
				SpikeTrains: []*SpikeTrain{
					{Source: 1, Times: []float64{1.25, 7.5}},
					{Source: 2, Times: []float64{3.123456}},
				},
				AnalogSignals: []*AnalogSignal{
					{Source: 1, Name: "V_m", Units: "mV", SamplingPeriod: 0.1, Values: []float64{-70.0, -69.98765, -69.5}},
				},
			},
		},
	}
}

// TestGet tests the output handler registry lookups.
func TestGet(t *testing.T) {
	t.Run("Registered", func(t *testing.T) {
		handler, err := Get("results/voltages.csv")
		require.NoError(t, err)
		assert.Contains(t, handler.Extensions(), "csv")

		handler, err = Get("results/voltages.JSON")
		require.NoError(t, err)
		assert.Contains(t, handler.Extensions(), "json")
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := Get("results/voltages.pkl")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassHandlerNotFound))
	})

	t.Run("NoExtension", func(t *testing.T) {
		_, err := Get("results/voltages")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassHandlerNotFound))
	})

	t.Run("AlreadyRegistered", func(t *testing.T) {
		err := RegisterHandler(&csvHandler{})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassHandlerAlreadyRegistered))
	})
}

// TestCSVOutput tests the csv output handler.
func TestCSVOutput(t *testing.T) {
	dir, err := ioutil.TempDir("", "recording")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "block.csv")

	handler, err := Get(path)
	require.NoError(t, err)

	out, err := handler.Open(path, 3)
	require.NoError(t, err)
	require.NoError(t, out.Write(testBlock()))
	require.NoError(t, out.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// header + 3 spike rows + 3 analog rows
	require.Len(t, rows, 7)
	assert.Equal(t, csvHeader, rows[0])

	assert.Equal(t, []string{"iaf_psc_alphas", "0", "spike", "1", "spikes", "ms", "1.250", ""}, rows[1])
	// the written precision is bounded
	assert.Equal(t, "3.123", rows[3][6])

	assert.Equal(t, []string{"iaf_psc_alphas", "0", "analog", "1", "V_m", "mV", "0.000", "-70.000"}, rows[4])
	assert.Equal(t, "-69.988", rows[5][7])
	assert.Equal(t, "0.200", rows[6][6])
}

// TestJSONOutput tests the json output handler.
func TestJSONOutput(t *testing.T) {
	dir, err := ioutil.TempDir("", "recording")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "block.json")

	handler, err := Get(path)
	require.NoError(t, err)

	block := testBlock()
	out, err := handler.Open(path, 3)
	require.NoError(t, err)
	require.NoError(t, out.Write(block))
	require.NoError(t, out.Close())

	// rounding never mutates the input block
	assert.Equal(t, 3.123456, block.Segments[0].SpikeTrains[1].Times[0])

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)

	var decoded Block
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "iaf_psc_alphas", decoded.Label)
	require.Len(t, decoded.Segments, 1)
	require.Len(t, decoded.Segments[0].SpikeTrains, 2)
	assert.Equal(t, []float64{3.123}, decoded.Segments[0].SpikeTrains[1].Times)

	require.Len(t, decoded.Segments[0].AnalogSignals, 1)
	signal := decoded.Segments[0].AnalogSignals[0]
	assert.Equal(t, "V_m", signal.Name)
	assert.Equal(t, "mV", signal.Units)
	assert.Equal(t, []float64{-70.0, -69.988, -69.5}, signal.Values)
}
