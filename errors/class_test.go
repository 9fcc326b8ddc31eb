package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClass tests the error classification system.
func TestClass(t *testing.T) {
	resetContainer()
	defer resetContainer()

	t.Run("NewMajor", func(t *testing.T) {
		resetContainer()

		m, err := NewMajor()
		require.NoError(t, err)

		assert.True(t, m.InBounds())
		assert.Equal(t, Major(2), m)

		m, err = NewMajor()
		require.NoError(t, err)

		assert.True(t, m.InBounds())
		assert.Equal(t, Major(3), m)
	})

	t.Run("NewMinor", func(t *testing.T) {
		resetContainer()

		mjr, err := NewMajor()
		require.NoError(t, err)

		mnr, err := NewMinor(mjr)
		require.NoError(t, err)

		assert.True(t, mnr.InBounds())
		assert.Equal(t, Minor(1), mnr)

		t.Run("UnregisteredMajor", func(t *testing.T) {
			_, err := NewMinor(mjr + 10)
			require.Error(t, err)
			assert.True(t, IsClass(err, ClInvalidMajor))
		})
	})

	t.Run("NewIndex", func(t *testing.T) {
		resetContainer()

		mjr, err := NewMajor()
		require.NoError(t, err)

		mnr, err := NewMinor(mjr)
		require.NoError(t, err)

		idx, err := NewIndex(mjr, mnr)
		require.NoError(t, err)

		assert.True(t, idx.InBounds())
		assert.Equal(t, Index(1), idx)

		t.Run("UnregisteredMinor", func(t *testing.T) {
			_, err := NewIndex(mjr, mnr+10)
			require.Error(t, err)
			assert.True(t, IsClass(err, ClInvalidMinor))
		})
	})

	t.Run("NewClass", func(t *testing.T) {
		resetContainer()

		mjr := MustNewMajor()
		mnr := MustNewMinor(mjr)
		idx := MustNewIndex(mjr, mnr)

		c, err := NewClass(mjr, mnr, idx)
		require.NoError(t, err)

		assert.Equal(t, mjr, c.Major())
		assert.Equal(t, mnr, c.Minor())
		assert.Equal(t, idx, c.Index())
		assert.True(t, c.IsMajor(mjr))

		t.Run("UnregisteredIndex", func(t *testing.T) {
			_, err := NewClass(mjr, mnr, idx+10)
			require.Error(t, err)
			assert.True(t, IsClass(err, ClInvalidIndex))
		})
	})

	t.Run("MajorClass", func(t *testing.T) {
		resetContainer()

		mjr := MustNewMajor()

		c, err := NewMajorClass(mjr)
		require.NoError(t, err)

		assert.Equal(t, mjr, c.Major())
		assert.Equal(t, Minor(0), c.Minor())
		assert.Equal(t, Index(0), c.Index())
	})

	t.Run("ClassWIndex", func(t *testing.T) {
		resetContainer()

		mjr := MustNewMajor()
		mnr := MustNewMinor(mjr)

		first, err := NewClassWIndex(mjr, mnr)
		require.NoError(t, err)

		second, err := NewClassWIndex(mjr, mnr)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.Equal(t, first.Major(), second.Major())
		assert.Equal(t, first.Minor(), second.Minor())
		assert.Equal(t, first.Index()+1, second.Index())
	})
}

// TestIsClass tests the classed error comparison functions.
func TestIsClass(t *testing.T) {
	resetContainer()
	defer resetContainer()

	mjr := MustNewMajor()
	class := MustNewMajorClass(mjr)
	other := MustNewMajorClass(MustNewMajor())

	simple := New(class, "simple error")
	assert.True(t, IsClass(simple, class))
	assert.False(t, IsClass(simple, other))

	formatted := Newf(class, "formatted: '%d'", 1)
	assert.Equal(t, "formatted: '1'", formatted.Error())
	assert.True(t, IsClass(formatted, class))

	t.Run("HasMajor", func(t *testing.T) {
		assert.True(t, HasMajor(simple, mjr))
		assert.False(t, HasMajor(simple, other.Major()))

		multi := MultiError{simple, New(other, "other error")}
		assert.True(t, HasMajor(multi, mjr))
		assert.True(t, HasMajor(multi, other.Major()))
		assert.False(t, HasMajor(multi, MustNewMajor()))
	})
}

// TestMultiError tests the multi error message composition.
func TestMultiError(t *testing.T) {
	resetContainer()
	defer resetContainer()

	class := MustNewMajorClass(MustNewMajor())

	multi := MultiError{
		New(class, "first"),
		New(class, "second"),
	}
	assert.Equal(t, "first,second", multi.Error())
}
