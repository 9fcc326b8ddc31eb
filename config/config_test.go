package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospike/nest/errors"
)

// TestReadDefaultConfig tests the read default config function.
func TestReadDefaultConfig(t *testing.T) {
	var s *Simulation
	require.NotPanics(t, func() {
		s = ReadDefaultConfig()
	})
	require.NotNil(t, s)

	assert.Equal(t, "snake", s.NamingConvention)
	assert.Equal(t, DefaultTimestep, s.Timestep)
	assert.Equal(t, DefaultMinDelay, s.MinDelay)
	assert.Equal(t, DefaultMaxDelay, s.MaxDelay)
	assert.Equal(t, 1, s.Threads)
	assert.Equal(t, DefaultRNGSeed, s.RNGSeed)
	assert.Equal(t, "off_grid", s.SpikePrecision)
	assert.Equal(t, DefaultRecordingPrecision, s.RecordingPrecision)
	assert.Equal(t, -1.0, s.FlushDuration)
}

// TestSimulationValidate tests the cross field simulation config checks.
func TestSimulationValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		s := Default()
		assert.NoError(t, s.Validate())
	})

	t.Run("NonPositiveTimestep", func(t *testing.T) {
		s := Default()
		s.Timestep = 0

		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassConfigInvalidValue))
	})

	t.Run("MinDelayBelowTimestep", func(t *testing.T) {
		s := Default()
		s.MinDelay = s.Timestep / 2

		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassConfigInvalidValue))
	})

	t.Run("MaxDelayBelowMinDelay", func(t *testing.T) {
		s := Default()
		s.MaxDelay = s.MinDelay / 2

		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassConfigInvalidValue))
	})
}
