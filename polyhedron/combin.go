// SPDX-License-Identifier: MIT

package polyhedron

import (
	"errors"

	"github.com/katalvlaran/spindle/field"
)

// errStop lets a combination visitor end the enumeration early.
var errStop = errors.New("polyhedron: stop")

// combinations calls visit with every k-subset of {0..n-1} in lexicographic
// order. The slice passed to visit is reused between calls. k == 0 yields
// the empty subset exactly once; k > n yields nothing.
func combinations(n, k int, visit func(idx []int) error) error {
	if k < 0 || k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if err := visit(idx); err != nil {
			if errors.Is(err, errStop) {
				return nil
			}
			return err
		}
		// advance to the next subset
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// containsVec reports whether pts holds a vector equal to v.
func containsVec[T any](f field.Field[T], pts [][]T, v []T) bool {
	for _, p := range pts {
		if field.EqualVec(f, p, v) {
			return true
		}
	}

	return false
}

// independentRows returns a maximal linearly independent subset of rows
// (greedy, in index order) together with the matching right-hand sides.
func independentRows[T any](f field.Field[T], rows [][]T, rhs []T, rank func([][]T) int) ([][]T, []T) {
	var (
		keep  [][]T
		keepB []T
	)
	for i, r := range rows {
		if rank(append(keep[:len(keep):len(keep)], r)) > len(keep) {
			keep = append(keep, r)
			keepB = append(keepB, rhs[i])
		}
	}

	return keep, keepB
}
