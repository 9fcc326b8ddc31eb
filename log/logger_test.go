package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospike/nest/errors"
)

// TestLogger tests the package level logger functions.
func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	New(buf, "", 0)

	require.NotNil(t, Logger())

	t.Run("UnknownLevel", func(t *testing.T) {
		err := SetLevel(LUNKNOWN)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassUnknownLevel))
	})

	t.Run("Leveled", func(t *testing.T) {
		require.NoError(t, SetLevel(LWARNING))
		assert.Equal(t, LWARNING, Level())

		Infof("informational: '%d'", 1)
		assert.Zero(t, buf.Len())

		Warningf("warned: '%d'", 2)
		assert.Contains(t, buf.String(), "warned: '2'")
	})
}
