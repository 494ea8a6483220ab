// SPDX-License-Identifier: MIT

package polytope

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spindle/dfs"
)

// minGoodFaceVertices is the smallest 2-face with two disjoint arcs of at
// least three positions between two non-adjacent edges.
const minGoodFaceVertices = 6

// faceCycle returns the vertices tight at face in cyclic order, or
// dfs.ErrNotCycle when their induced subgraph is not one cycle.
func (p *Polytope[T]) faceCycle(face []int) ([]int, error) {
	vs, err := p.IncidentVertices(face)
	if err != nil {
		return nil, err
	}
	g, err := p.Graph()
	if err != nil {
		return nil, err
	}
	sub, labels, err := g.InducedSubgraph(vs)
	if err != nil {
		return nil, err
	}
	order, err := dfs.CycleOrder(sub)
	if err != nil {
		return nil, err
	}
	for i, v := range order {
		order[i] = labels[v-1]
	}

	return order, nil
}

// FaceCycle returns the vertices of a 2-face in cyclic order, starting at
// the smallest vertex.
//
// Errors: ErrIndexOutOfRange; ErrGeometricPrecondition when the induced
// subgraph of the face is not a single cycle.
func (p *Polytope[T]) FaceCycle(face []int) ([]int, error) {
	order, err := p.faceCycle(face)
	if errors.Is(err, dfs.ErrNotCycle) {
		return nil, fmt.Errorf("FaceCycle(%v): %v: %w", face, err, ErrGeometricPrecondition)
	}
	if err != nil {
		return nil, fmt.Errorf("FaceCycle: %w", err)
	}

	return order, nil
}

// IsGood2Face tests whether the face cut out by the given halfspaces is a
// good 2-face for the apex pair (apexA, apexB).
//
// Implementation:
//   - Stage 1: reject faces with fewer than 6 vertices.
//   - Stage 2: order the face vertices along their cycle; reject when the
//     induced subgraph is not a single cycle.
//   - Stage 3: reject when minDist(A) + minDist(B) > dim - 2.
//   - Stage 4: for positions i < j with both cyclic gaps at least 3, let
//     plus = cyclic[i+1..j-1] and minus = cyclic[j+1..i-1] (wrapping). The
//     face is good when maxDist(A, plus) + maxDist(B, minus) <= dim - 2, or
//     the same with plus and minus swapped.
//
// A face that is not good yields FaceState{Good: false} and no error.
//
// Errors: ErrIndexOutOfRange.
func (p *Polytope[T]) IsGood2Face(face []int, apexA, apexB int) (FaceState, error) {
	if err := p.checkVertex(apexA); err != nil {
		return FaceState{}, fmt.Errorf("IsGood2Face: apex A: %w", err)
	}
	if err := p.checkVertex(apexB); err != nil {
		return FaceState{}, fmt.Errorf("IsGood2Face: apex B: %w", err)
	}

	// Stage 1: size
	vs, err := p.IncidentVertices(face)
	if err != nil {
		return FaceState{}, fmt.Errorf("IsGood2Face: %w", err)
	}
	if len(vs) < minGoodFaceVertices {
		return FaceState{}, nil
	}

	// Stage 2: cycle
	cyc, err := p.faceCycle(face)
	if errors.Is(err, dfs.ErrNotCycle) {
		return FaceState{}, nil
	}
	if err != nil {
		return FaceState{}, err
	}

	// Stage 3: approach distances
	d, err := p.Dim()
	if err != nil {
		return FaceState{}, err
	}
	budget := d - 2
	minA, err := p.extremeDist(apexA, cyc, false)
	if err != nil {
		return FaceState{}, err
	}
	minB, err := p.extremeDist(apexB, cyc, false)
	if err != nil {
		return FaceState{}, err
	}
	if minA+minB > budget {
		return FaceState{}, nil
	}

	// Stage 4: shortcut edge pairs
	n := len(cyc)
	for i := 0; i < n; i++ {
		for j := i + 3; j < n; j++ {
			if n-(j-i) < 3 {
				continue
			}
			plus := arc(cyc, i+1, j-1)
			minus := arc(cyc, j+1, i-1+n)
			sides, ok, err := p.certify(apexA, apexB, plus, minus, budget)
			if err != nil {
				return FaceState{}, err
			}
			if !ok {
				continue
			}
			closure, err := p.IncidentHalfspaces(vs)
			if err != nil {
				return FaceState{}, err
			}

			return FaceState{
				Good:  true,
				Face:  closure,
				Edges: [2][2]int{{cyc[i], cyc[i+1]}, {cyc[j], cyc[(j+1)%n]}},
				Sides: sides,
			}, nil
		}
	}

	return FaceState{}, nil
}

// certify checks both assignments of the arcs to the apices and returns
// the sides as (apex-A side, apex-B side).
func (p *Polytope[T]) certify(apexA, apexB int, plus, minus []int, budget int) ([2][]int, bool, error) {
	for _, sides := range [][2][]int{{plus, minus}, {minus, plus}} {
		a, err := p.extremeDist(apexA, sides[0], true)
		if err != nil {
			return [2][]int{}, false, err
		}
		b, err := p.extremeDist(apexB, sides[1], true)
		if err != nil {
			return [2][]int{}, false, err
		}
		if a+b <= budget {
			return sides, true, nil
		}
	}

	return [2][]int{}, false, nil
}

// arc returns cyc[from..to] inclusive, indices taken modulo len(cyc).
func arc(cyc []int, from, to int) []int {
	n := len(cyc)
	out := make([]int, 0, to-from+1)
	for k := from; k <= to; k++ {
		out = append(out, cyc[k%n])
	}

	return out
}

// Good2Faces tests every 2-face and returns the good ones in the order of
// FacesOfDim(2).
func (p *Polytope[T]) Good2Faces(apexA, apexB int) ([]FaceState, error) {
	faces, err := p.FacesOfDim(2)
	if err != nil {
		return nil, err
	}
	var out []FaceState
	for _, f := range faces {
		if err = p.canceled(); err != nil {
			return nil, err
		}
		st, err := p.IsGood2Face(f, apexA, apexB)
		if err != nil {
			return nil, err
		}
		if st.Good {
			out = append(out, st)
		}
	}
	p.opts.Logger.Debug("good 2-faces scanned", "faces", len(faces), "good", len(out))

	return out, nil
}
