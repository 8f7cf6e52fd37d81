// Package combinatorics enumerates and counts k-element combinations.
package combinatorics

import (
	"errors"
	"fmt"
)

// ErrInvalidArity is returned when k is negative or larger than the
// number of items to choose from.
var ErrInvalidArity = errors.New("invalid combination arity")

// Combinations returns every k-element subsequence of items, preserving
// the original order within each combination. Choosing zero items yields
// an empty result rather than a single empty combination.
func Combinations[T any](items []T, k int) ([][]T, error) {
	if k < 0 || k > len(items) {
		return nil, fmt.Errorf("%w: cannot choose %d of %d", ErrInvalidArity, k, len(items))
	}
	if k == 0 {
		return [][]T{}, nil
	}

	out := make([][]T, 0, Count(len(items), k))
	ForEach(len(items), k, func(idx []int) bool {
		combo := make([]T, k)
		for i, j := range idx {
			combo[i] = items[j]
		}
		out = append(out, combo)
		return true
	})
	return out, nil
}

// Count returns n choose k. Multiplication and division are interleaved so
// every intermediate value is itself a binomial coefficient.
func Count(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := int64(1)
	for i := 1; i <= k; i++ {
		result = result * int64(n-k+i) / int64(i)
	}
	return int(result)
}

// ForEach calls fn with the indices of every k-element combination of
// 0..n-1 in lexicographic order. The slice passed to fn is reused between
// calls and must not be retained. Enumeration stops early when fn returns
// false. Choosing zero items calls fn once with an empty slice.
func ForEach(n, k int, fn func(idx []int) bool) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		// Find the rightmost index that can still move right.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
