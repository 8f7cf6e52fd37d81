package combinatorics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinations(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		items []string
		k     int
		want  [][]string
	}{
		{
			name:  "choose two of three",
			items: []string{"a", "b", "c"},
			k:     2,
			want:  [][]string{{"a", "b"}, {"a", "c"}, {"b", "c"}},
		},
		{
			name:  "choose all",
			items: []string{"a", "b", "c"},
			k:     3,
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name:  "choose one",
			items: []string{"x", "y"},
			k:     1,
			want:  [][]string{{"x"}, {"y"}},
		},
		{
			name:  "choose zero is empty",
			items: []string{"a", "b"},
			k:     0,
			want:  [][]string{},
		},
		{
			name:  "choose zero of nothing",
			items: nil,
			k:     0,
			want:  [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Combinations(tt.items, tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombinationsInvalidArity(t *testing.T) {
	t.Parallel()
	_, err := Combinations([]int{1, 2}, 3)
	require.ErrorIs(t, err, ErrInvalidArity)

	_, err = Combinations([]int{1, 2}, -1)
	require.ErrorIs(t, err, ErrInvalidArity)
}

func TestCombinationsProperties(t *testing.T) {
	t.Parallel()
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	for k := 1; k <= 5; k++ {
		combos, err := Combinations(items, k)
		require.NoError(t, err)
		require.Len(t, combos, Count(len(items), k))

		seen := make(map[[5]int]bool)
		for _, combo := range combos {
			require.Len(t, combo, k)
			var key [5]int
			for i := range combo {
				if i > 0 {
					require.Less(t, combo[i-1], combo[i], "order must be preserved")
				}
				key[i] = combo[i]
			}
			require.False(t, seen[key], "duplicate combination %v", combo)
			seen[key] = true
		}
	}
}

func TestCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n, k int
		want int
	}{
		{52, 5, 2598960},
		{50, 5, 2118760},
		{48, 5, 1712304},
		{47, 2, 1081},
		{46, 1, 46},
		{45, 0, 1},
		{0, 0, 1},
		{5, 5, 1},
		{3, 4, 0},
		{64, 5, 7624512},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Count(tt.n, tt.k), "C(%d,%d)", tt.n, tt.k)
	}
}

func TestForEach(t *testing.T) {
	t.Parallel()
	var got [][]int
	ForEach(4, 2, func(idx []int) bool {
		got = append(got, append([]int(nil), idx...))
		return true
	})
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)

	calls := 0
	ForEach(10, 3, func([]int) bool {
		calls++
		return calls < 5
	})
	assert.Equal(t, 5, calls, "returning false stops enumeration")

	calls = 0
	ForEach(7, 0, func(idx []int) bool {
		assert.Empty(t, idx)
		calls++
		return true
	})
	assert.Equal(t, 1, calls, "choosing zero visits the empty combination once")

	calls = 0
	ForEach(2, 3, func([]int) bool {
		calls++
		return true
	})
	assert.Zero(t, calls)
}
