package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSplit(t *testing.T) {
	t.Parallel()
	first := Split(New(7), 4)
	second := Split(New(7), 4)
	require.Len(t, first, 4)

	seen := make(map[uint64]bool)
	for i := range first {
		x, y := first[i].Uint64(), second[i].Uint64()
		assert.Equal(t, x, y, "worker %d streams differ for the same parent seed", i)
		assert.False(t, seen[x], "worker %d repeats another worker's stream", i)
		seen[x] = true
	}
}
