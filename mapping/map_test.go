package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/namer"
	"github.com/gospike/nest/simulator"
	"github.com/gospike/nest/simulator/mocksim"
)

// TestMap tests the cell type cache.
func TestMap(t *testing.T) {
	t.Run("Memoizes", func(t *testing.T) {
		e := mocksim.New("mock", mocksim.Builtin()...)
		m := NewMap(e, nil)

		first, err := m.CellType("iaf_psc_alpha")
		require.NoError(t, err)
		second, err := m.CellType("iaf_psc_alpha")
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("FailuresNotCached", func(t *testing.T) {
		e := mocksim.New("mock", mocksim.Builtin()...)
		e.OnGetDefaults(func(model string) (simulator.Params, error) {
			return nil, errors.NewDet(simulator.ClassModelNotFound, "scripted failure")
		}, mocksim.Count(1))

		m := NewMap(e, nil)

		_, err := m.CellType("iaf_psc_alpha")
		require.Error(t, err)

		cellType, err := m.CellType("iaf_psc_alpha")
		require.NoError(t, err)
		assert.Equal(t, "iaf_psc_alpha", cellType.ModelName())
	})

	t.Run("Reload", func(t *testing.T) {
		e := mocksim.New("mock", mocksim.Builtin()...)
		m := NewMap(e, namer.NamingSnake)

		cellType, err := m.CellType("iaf_psc_alpha")
		require.NoError(t, err)
		assert.Equal(t, 250.0, cellType.Descriptor().Parameters["C_m"])

		// the cached descriptor does not observe the registry change
		require.NoError(t, e.SetDefaults("iaf_psc_alpha", simulator.Params{"C_m": 180.0}))
		cellType, err = m.CellType("iaf_psc_alpha")
		require.NoError(t, err)
		assert.Equal(t, 250.0, cellType.Descriptor().Parameters["C_m"])

		reloaded, err := m.Reload("iaf_psc_alpha")
		require.NoError(t, err)
		assert.Equal(t, 180.0, reloaded.Descriptor().Parameters["C_m"])
	})

	t.Run("Invalidate", func(t *testing.T) {
		e := mocksim.New("mock", mocksim.Builtin()...)
		m := NewMap(e, nil)

		first, err := m.CellType("ht_neuron")
		require.NoError(t, err)

		m.Invalidate("ht_neuron")

		second, err := m.CellType("ht_neuron")
		require.NoError(t, err)
		assert.NotSame(t, first, second)
	})

	t.Run("Descriptor", func(t *testing.T) {
		e := mocksim.New("mock", mocksim.Builtin()...)
		m := NewMap(e, nil)

		d, err := m.Descriptor("poisson_generator")
		require.NoError(t, err)
		assert.Equal(t, simulator.ElementStimulator, d.ElementType)
	})

	t.Run("Models", func(t *testing.T) {
		e := mocksim.New("mock", mocksim.Builtin()...)
		m := NewMap(e, nil)

		names := m.Models()
		assert.Contains(t, names, "iaf_psc_alpha")
		assert.Contains(t, names, "ht_neuron")
	})

	t.Run("CollectionNaming", func(t *testing.T) {
		e := mocksim.New("mock", mocksim.Builtin()...)

		m := NewMap(e, namer.NamingLowerCamel)
		cellType, err := m.CellType("iaf_psc_alpha")
		require.NoError(t, err)
		assert.Equal(t, "iafPscAlphas", cellType.Descriptor().Collection)
	})
}
