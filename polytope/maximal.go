// SPDX-License-Identifier: MIT

package polytope

import (
	"github.com/bits-and-blooms/bitset"
)

// maximality partitions candidate sets at a threshold and keeps the
// inclusion-maximal ones.
//
// A set with exactly threshold elements is nondegenerate and survives
// unless a degenerate set strictly contains it. A set above the threshold
// is degenerate and survives unless another degenerate set strictly
// contains it. With no degenerate sets every candidate survives.
type maximality struct {
	keep          []bool
	nondegenerate int
	degenerate    int
}

func maximalSets(sets []*bitset.BitSet, threshold uint, canceled func() error) (maximality, error) {
	m := maximality{keep: make([]bool, len(sets))}
	var deg []int
	for i, s := range sets {
		if s.Count() > threshold {
			deg = append(deg, i)
		}
	}
	m.degenerate = len(deg)
	m.nondegenerate = len(sets) - len(deg)

	for i, s := range sets {
		if err := canceled(); err != nil {
			return maximality{}, err
		}
		m.keep[i] = true
		for _, j := range deg {
			if j != i && sets[j].IsStrictSuperSet(s) {
				m.keep[i] = false
				break
			}
		}
	}

	return m, nil
}
