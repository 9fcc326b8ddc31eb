package mocksim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/simulator"
)

// TestEngineModelRegistry tests the model registry calls of the mock engine.
func TestEngineModelRegistry(t *testing.T) {
	t.Run("GetDefaults", func(t *testing.T) {
		e := New("mock", Builtin()...)

		defaults, err := e.GetDefaults("iaf_psc_alpha")
		require.NoError(t, err)

		assert.Equal(t, 250.0, defaults["C_m"])
		assert.Equal(t, "neuron", defaults["element_type"])
		assert.Equal(t, []string{"I_syn_ex", "I_syn_in", "V_m"}, defaults["recordables"])
		_, ok := defaults["receptor_types"]
		assert.False(t, ok)

		defaults, err = e.GetDefaults("ht_neuron")
		require.NoError(t, err)

		receptors, ok := defaults["receptor_types"].(map[string]int)
		require.True(t, ok)
		assert.Equal(t, 1, receptors["AMPA"])
		assert.Equal(t, 4, receptors["GABA_B"])
	})

	t.Run("GetDefaultsCopies", func(t *testing.T) {
		e := New("mock", Builtin()...)

		defaults, err := e.GetDefaults("iaf_psc_alpha")
		require.NoError(t, err)

		recordables, ok := defaults["recordables"].([]string)
		require.True(t, ok)
		recordables[0] = "corrupted"
		defaults["C_m"] = 1.0

		defaults, err = e.GetDefaults("iaf_psc_alpha")
		require.NoError(t, err)
		assert.Equal(t, 250.0, defaults["C_m"])
		assert.Equal(t, []string{"I_syn_ex", "I_syn_in", "V_m"}, defaults["recordables"])
	})

	t.Run("UnknownModel", func(t *testing.T) {
		e := New("mock", Builtin()...)

		_, err := e.GetDefaults("hodgkin_huxley_deluxe")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassModelNotFound))
	})

	t.Run("SetDefaults", func(t *testing.T) {
		e := New("mock", Builtin()...)

		err := e.SetDefaults("spike_generator", simulator.Params{"precise_times": true})
		require.NoError(t, err)

		defaults, err := e.GetDefaults("spike_generator")
		require.NoError(t, err)
		assert.Equal(t, true, defaults["precise_times"])

		err = e.SetDefaults("spike_generator", simulator.Params{"recordables": []string{"V_m"}})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassInvalidParam))
	})

	t.Run("Scripted", func(t *testing.T) {
		e := New("mock", Builtin()...)
		e.OnGetDefaults(func(model string) (simulator.Params, error) {
			return nil, errors.NewDetf(simulator.ClassModelNotFound, "scripted failure for: '%s'", model)
		}, Count(1))

		_, err := e.GetDefaults("iaf_psc_alpha")
		require.Error(t, err)

		// the executor is consumed - the builtin behavior takes over
		defaults, err := e.GetDefaults("iaf_psc_alpha")
		require.NoError(t, err)
		assert.Equal(t, 250.0, defaults["C_m"])
	})

	t.Run("Models", func(t *testing.T) {
		e := New("mock", Builtin()...)

		names := e.Models()
		require.NotEmpty(t, names)
		assert.Contains(t, names, "iaf_psc_alpha")
		assert.Contains(t, names, "static_synapse")
		// sorted order
		for i := 1; i < len(names); i++ {
			assert.True(t, names[i-1] < names[i])
		}
	})
}

// TestEngineKernel tests the kernel controller calls of the mock engine.
func TestEngineKernel(t *testing.T) {
	t.Run("SetStatus", func(t *testing.T) {
		e := New("mock", Builtin()...)

		err := e.SetKernelStatus(simulator.Params{
			simulator.KeyResolution:     0.05,
			simulator.KeyMinDelay:       0.1,
			simulator.KeyMaxDelay:       20.0,
			simulator.KeyRNGSeed:        int64(42),
			simulator.KeyThreads:        4,
			simulator.KeyOffGridSpiking: true,
		})
		require.NoError(t, err)

		kernel := e.Kernel()
		assert.Equal(t, 0.05, kernel[simulator.KeyResolution])
		assert.Equal(t, 20.0, kernel[simulator.KeyMaxDelay])
		assert.Equal(t, int64(42), kernel[simulator.KeyRNGSeed])
		assert.Equal(t, 4, kernel[simulator.KeyThreads])
		assert.Equal(t, true, kernel[simulator.KeyOffGridSpiking])
	})

	t.Run("UnknownEntry", func(t *testing.T) {
		e := New("mock", Builtin()...)

		err := e.SetKernelStatus(simulator.Params{"total_num_virtual_procs": 8})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassKernelStatus))
	})

	t.Run("InvalidValue", func(t *testing.T) {
		e := New("mock", Builtin()...)

		err := e.SetKernelStatus(simulator.Params{simulator.KeyResolution: "fine"})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassKernelStatus))
	})

	t.Run("Simulate", func(t *testing.T) {
		e := New("mock", Builtin()...)

		require.NoError(t, e.Simulate(100.0))
		require.NoError(t, e.Simulate(25.5))
		assert.Equal(t, 125.5, e.Now())

		err := e.Simulate(-10.0)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassSimulationFailed))
	})

	t.Run("SimulateScripted", func(t *testing.T) {
		e := New("mock", Builtin()...)
		e.OnSimulate(func(duration float64) error {
			return errors.NewDet(simulator.ClassSimulationFailed, "numerical instability detected")
		}, Permanent())

		err := e.Simulate(10.0)
		require.Error(t, err)
		err = e.Simulate(10.0)
		require.Error(t, err)
		assert.Equal(t, 0.0, e.Now())
	})

	t.Run("ResetKernel", func(t *testing.T) {
		e := New("mock", Builtin()...)

		require.NoError(t, e.SetKernelStatus(simulator.Params{simulator.KeyResolution: 0.025}))
		require.NoError(t, e.Simulate(50.0))
		_, err := e.Create("iaf_psc_alpha", 3, nil)
		require.NoError(t, err)

		require.NoError(t, e.ResetKernel())

		assert.Equal(t, 0.0, e.Now())
		assert.Equal(t, 0.1, e.Kernel()[simulator.KeyResolution])

		conns, err := e.GetConnections(nil, nil, "")
		require.NoError(t, err)
		assert.Empty(t, conns)
	})

	t.Run("RankAndProcesses", func(t *testing.T) {
		e := New("mock", Builtin()...)
		assert.Equal(t, 0, e.Rank())
		assert.Equal(t, 1, e.NumProcesses())

		e.RankValue = 2
		e.ProcessesValue = 4
		assert.Equal(t, 2, e.Rank())
		assert.Equal(t, 4, e.NumProcesses())
	})
}

// TestEngineNetwork tests the node and connection calls of the mock engine.
func TestEngineNetwork(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		e := New("mock", Builtin()...)

		ids, err := e.Create("iaf_psc_alpha", 3, simulator.Params{"I_e": 376.0})
		require.NoError(t, err)
		assert.Equal(t, simulator.NodeIDs{1, 2, 3}, ids)

		ids, err = e.Create("poisson_generator", 1, nil)
		require.NoError(t, err)
		assert.Equal(t, simulator.NodeIDs{4}, ids)

		_, err = e.Create("iaf_psc_alpha", 0, nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassInvalidParam))

		_, err = e.Create("static_synapse", 1, nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassInvalidParam))

		_, err = e.Create("grid_cell", 1, nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassModelNotFound))
	})

	t.Run("ConnectRules", func(t *testing.T) {
		e := New("mock", Builtin()...)

		pre, err := e.Create("iaf_psc_alpha", 2, nil)
		require.NoError(t, err)
		post, err := e.Create("iaf_psc_alpha", 3, nil)
		require.NoError(t, err)

		err = e.Connect(pre, post, nil, nil)
		require.NoError(t, err)

		conns, err := e.GetConnections(pre, post, "")
		require.NoError(t, err)
		assert.Len(t, conns, 6)

		err = e.Connect(pre, post, &simulator.ConnSpec{Rule: "one_to_one"}, nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassConnectionFailed))

		err = e.Connect(pre, post[:2], &simulator.ConnSpec{Rule: "one_to_one"}, simulator.Params{
			"synapse_model": "stdp_synapse",
			"weight":        2.5,
		})
		require.NoError(t, err)

		conns, err = e.GetConnections(pre, nil, "stdp_synapse")
		require.NoError(t, err)
		require.Len(t, conns, 2)
		assert.Equal(t, pre[0], conns[0].Source)
		assert.Equal(t, post[0], conns[0].Target)
	})

	t.Run("DelayQuantized", func(t *testing.T) {
		e := New("mock", Builtin()...)

		pre, err := e.Create("iaf_psc_alpha", 1, nil)
		require.NoError(t, err)
		post, err := e.Create("iaf_psc_alpha", 1, nil)
		require.NoError(t, err)

		err = e.Connect(pre, post, nil, simulator.Params{"delay": 1.23})
		require.NoError(t, err)

		conns, err := e.GetConnections(pre, post, "")
		require.NoError(t, err)
		require.Len(t, conns, 1)

		delays, err := e.ConnectionValues(conns, "delay")
		require.NoError(t, err)
		assert.InDelta(t, 1.2, delays[0], 1e-9)

		err = e.SetConnectionValues(conns, simulator.Params{"delay": 2.06})
		require.NoError(t, err)
		delays, err = e.ConnectionValues(conns, "delay")
		require.NoError(t, err)
		assert.InDelta(t, 2.1, delays[0], 1e-9)
	})

	t.Run("DelayBounds", func(t *testing.T) {
		e := New("mock", Builtin()...)

		pre, err := e.Create("iaf_psc_alpha", 1, nil)
		require.NoError(t, err)
		post, err := e.Create("iaf_psc_alpha", 1, nil)
		require.NoError(t, err)

		err = e.Connect(pre, post, nil, simulator.Params{"delay": 100.0})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassConnectionFailed))
	})

	t.Run("ConnectionAttributes", func(t *testing.T) {
		e := New("mock", Builtin()...)

		pre, err := e.Create("iaf_psc_alpha", 1, nil)
		require.NoError(t, err)
		post, err := e.Create("iaf_psc_alpha", 1, nil)
		require.NoError(t, err)
		require.NoError(t, e.Connect(pre, post, nil, simulator.Params{"weight": 4.0}))

		conns, err := e.GetConnections(nil, nil, "")
		require.NoError(t, err)
		require.Len(t, conns, 1)

		weights, err := e.ConnectionValues(conns, "weight")
		require.NoError(t, err)
		assert.Equal(t, []float64{4.0}, weights)

		_, err = e.ConnectionValues(conns, "koalas")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassInvalidParam))
	})

	t.Run("UnknownNodes", func(t *testing.T) {
		e := New("mock", Builtin()...)

		err := e.Connect(simulator.NodeIDs{10}, simulator.NodeIDs{11}, nil, nil)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, simulator.ClassNodeNotFound))
	})
}

// TestEngineClose tests the closed engine guards.
func TestEngineClose(t *testing.T) {
	e := New("mock", Builtin()...)

	require.NoError(t, e.Close(context.Background()))

	_, err := e.GetDefaults("iaf_psc_alpha")
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, simulator.ClassEngineClosed))

	err = e.Simulate(10.0)
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, simulator.ClassEngineClosed))

	err = e.Close(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, simulator.ClassEngineClosed))
}
