// SPDX-License-Identifier: MIT

package polytope

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/maps/treemap"
)

// compareIndexLists orders ascending index lists lexicographically; a
// proper prefix sorts first.
func compareIndexLists(a, b interface{}) int {
	x, y := a.([]int), b.([]int)
	for i := 0; i < len(x) && i < len(y); i++ {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}

	return len(x) - len(y)
}

// faceSet collects distinct faces keyed by their index list, so iteration
// is de-duplicated and deterministic.
type faceSet struct {
	m *treemap.Map
}

func newFaceSet() faceSet {
	return faceSet{m: treemap.NewWith(compareIndexLists)}
}

func (fs faceSet) add(s *bitset.BitSet) {
	key := indexList(s)
	if _, found := fs.m.Get(key); !found {
		fs.m.Put(key, s)
	}
}

func (fs faceSet) sets() []*bitset.BitSet {
	out := make([]*bitset.BitSet, 0, fs.m.Size())
	for _, v := range fs.m.Values() {
		out = append(out, v.(*bitset.BitSet))
	}

	return out
}

// facesOf returns the cached faces of dimension k, sorted by index list.
func (p *Polytope[T]) facesOf(k int) ([]*bitset.BitSet, error) {
	d, err := p.Dim()
	if err != nil {
		return nil, err
	}
	if k < -1 || k > d {
		return nil, nil
	}

	return p.faces.slot(k).get(func() ([]*bitset.BitSet, error) {
		out, err := p.enumerate(k, d)
		if err != nil {
			return nil, err
		}
		p.opts.Logger.Debug("faces enumerated", "dim", k, "count", len(out))

		return out, nil
	})
}

// enumerate builds the k-faces from the (k-1)-faces.
//
// Implementation:
//   - k = -1: the full index set. k = dim: the implicit equations.
//   - k = 0: the vertex incidence sets. k = 1: the skeleton edge sets.
//   - k >= 2: join every (k-1)-face f with every vertex v outside it; keep
//     f ∩ inc(v) when it has at least dim-k+#implicit rows, de-duplicate
//     and retain the inclusion-maximal sets.
func (p *Polytope[T]) enumerate(k, d int) ([]*bitset.BitSet, error) {
	inc, err := p.incidence()
	if err != nil {
		return nil, err
	}
	imp, err := p.implicitSet()
	if err != nil {
		return nil, err
	}
	fs := newFaceSet()

	switch {
	case k == -1:
		fs.add(p.fullSet())
	case k == d:
		fs.add(imp.Clone())
	case k == 0:
		for _, s := range inc {
			fs.add(s.Clone())
		}
	case k == 1:
		g, err := p.Graph()
		if err != nil {
			return nil, err
		}
		for _, e := range g.Edges() {
			fs.add(inc[e[0]-1].Intersection(inc[e[1]-1]))
		}
	default:
		lower, err := p.facesOf(k - 1)
		if err != nil {
			return nil, err
		}
		threshold := uint(d - k + int(imp.Count()))
		cands := newFaceSet()
		for _, f := range lower {
			if err = p.canceled(); err != nil {
				return nil, err
			}
			for _, row := range inc {
				if row.IsSuperSet(f) {
					continue
				}
				if c := f.Intersection(row); c.Count() >= threshold {
					cands.add(c)
				}
			}
		}
		sets := cands.sets()
		m, err := maximalSets(sets, threshold, p.canceled)
		if err != nil {
			return nil, err
		}
		for i, s := range sets {
			if m.keep[i] {
				fs.add(s)
			}
		}
	}

	return fs.sets(), nil
}

// FacesOfDim returns the k-dimensional faces, each as its ascending list of
// tight halfspaces, in lexicographic order.
//
// FacesOfDim(-1) is the single empty face, the full index set;
// FacesOfDim(Dim()) is the polytope itself, listed by its implicit
// equations (empty for a full-dimensional irredundant system). Any other k
// outside -1..Dim() yields an empty result and no error.
func (p *Polytope[T]) FacesOfDim(k int) ([][]int, error) {
	sets, err := p.facesOf(k)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(sets))
	for i, s := range sets {
		out[i] = indexList(s)
	}

	return out, nil
}

// NFacesOfDim returns len(FacesOfDim(k)).
func (p *Polytope[T]) NFacesOfDim(k int) (int, error) {
	sets, err := p.facesOf(k)
	if err != nil {
		return 0, err
	}

	return len(sets), nil
}

// FVector returns (f_0, ..., f_{dim-1}), the face counts by dimension.
func (p *Polytope[T]) FVector() ([]int, error) {
	d, err := p.Dim()
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, max(d, 0))
	for k := 0; k < d; k++ {
		n, err := p.NFacesOfDim(k)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}
