package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/simulator"
	"github.com/gospike/nest/simulator/mocksim"
)

// TestNativeType tests the generic cell type implementation.
func TestNativeType(t *testing.T) {
	t.Run("Adapts", func(t *testing.T) {
		e := mocksim.New("mock", mocksim.Builtin()...)

		cellType, err := NewNativeType(e, "ht_neuron")
		require.NoError(t, err)

		assert.Equal(t, "ht_neuron", cellType.ModelName())
		require.NotNil(t, cellType.Descriptor())
		assert.Equal(t, "ht_neuron", cellType.Descriptor().Name)

		// reflected models keep one native name for both timing modes
		assert.Equal(t, "ht_neuron", cellType.NativeModel(simulator.PrecisionOnGrid))
		assert.Equal(t, "ht_neuron", cellType.NativeModel(simulator.PrecisionOffGrid))
	})

	t.Run("ReceptorPort", func(t *testing.T) {
		e := mocksim.New("mock", mocksim.Builtin()...)

		cellType, err := NewNativeType(e, "ht_neuron")
		require.NoError(t, err)

		port, err := cellType.ReceptorPort("NMDA")
		require.NoError(t, err)
		assert.Equal(t, 2, port)

		port, err = cellType.ReceptorPort("GABA_B")
		require.NoError(t, err)
		assert.Equal(t, 4, port)

		_, err = cellType.ReceptorPort("dopamine")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassReceptorNotFound))
	})

	t.Run("ReceptorPortStandardModel", func(t *testing.T) {
		e := mocksim.New("mock", mocksim.Builtin()...)

		cellType, err := NewNativeType(e, "iaf_psc_alpha")
		require.NoError(t, err)

		// the standard pair is a session convention - the engine itself
		// defines no ports for it
		_, err = cellType.ReceptorPort("excitatory")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassReceptorNotFound))
	})

	t.Run("ReflectionFailure", func(t *testing.T) {
		e := mocksim.New("mock", mocksim.Builtin()...)

		_, err := NewNativeType(e, "grid_cell")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassModelNotFound))
	})
}
