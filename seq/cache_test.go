package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestRecurrenceCache_PrefixLength verifies the I3 contract on the
// rule's input: prev always holds exactly the resolved prefix.
func TestRecurrenceCache_PrefixLength(t *testing.T) {
	c := newRecurrenceCache(func(prev []int, i int) (int, error) {
		require.Len(t, prev, i, "prev must be the full resolved prefix")

		return i, nil
	}, []int{0}, zap.NewNop())

	_, err := c.at(6)
	require.NoError(t, err)
	assert.Equal(t, 7, c.size())
}

// TestRecurrenceCache_PrefixIsCapped verifies that a rule appending to
// its prev argument cannot grow into (and corrupt) the cache's own
// backing array.
func TestRecurrenceCache_PrefixIsCapped(t *testing.T) {
	c := newRecurrenceCache(func(prev []int, i int) (int, error) {
		_ = append(prev, -999) // must reallocate, never write through

		return i, nil
	}, []int{0}, zap.NewNop())

	_, err := c.at(4)
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		v, atErr := c.at(i)
		require.NoError(t, atErr)
		assert.Equal(t, i, v, "stored value at %d must be untouched (I2)", i)
	}
}

// TestRecurrenceCache_SeedsCopied verifies that mutating the caller's
// seed slice after construction does not reach the cache.
func TestRecurrenceCache_SeedsCopied(t *testing.T) {
	seeds := []int{7}
	c := newRecurrenceCache(func(prev []int, i int) (int, error) {
		return prev[i-1], nil
	}, seeds, zap.NewNop())

	seeds[0] = -1

	v, err := c.at(0)
	require.NoError(t, err)
	assert.Equal(t, 7, v, "cache owns its seed storage")
}

// TestRandomCache_SparseSize verifies sparse storage accounting.
func TestRandomCache_SparseSize(t *testing.T) {
	c := newRandomCache(func(i int) (int, error) { return i, nil }, zap.NewNop())

	_, err := c.at(500)
	require.NoError(t, err)
	_, err = c.at(500)
	require.NoError(t, err)
	_, err = c.at(2)
	require.NoError(t, err)

	assert.Equal(t, 2, c.size(), "two distinct indices, two entries")
}
