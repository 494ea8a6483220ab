// SPDX-License-Identifier: MIT

package polytope

import (
	"context"
	"errors"
	"io"

	charmlog "github.com/charmbracelet/log"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/polyhedron"
)

// Sentinel errors. Construction errors alias the polyhedron sentinels so
// errors.Is works across both packages.
var (
	// ErrIndexOutOfRange indicates a vertex or halfspace index outside its range.
	ErrIndexOutOfRange = polyhedron.ErrIndexOutOfRange

	// ErrUnbounded indicates a backend that is not a polytope.
	ErrUnbounded = polyhedron.ErrUnbounded

	// ErrEmpty indicates an empty polyhedron.
	ErrEmpty = polyhedron.ErrEmpty

	// ErrDimensionMismatch indicates inconsistent shapes.
	ErrDimensionMismatch = polyhedron.ErrDimensionMismatch

	// ErrNotFullDimensional indicates a point set with a proper affine hull.
	ErrNotFullDimensional = polyhedron.ErrNotFullDimensional

	// ErrGeometricPrecondition indicates a violated geometric precondition.
	ErrGeometricPrecondition = polyhedron.ErrGeometricPrecondition

	// ErrNilBackend indicates New was called without a backend.
	ErrNilBackend = errors.New("polytope: backend is nil")

	// ErrTooManyDirections indicates more edge directions than the region
	// enumeration of GenericObjectives accepts.
	ErrTooManyDirections = errors.New("polytope: too many edge directions")
)

// Backend is the polyhedral representation the engine consumes. Indices
// are 0-based at this boundary.
type Backend[T any] interface {
	Field() field.Field[T]
	Bounded() bool
	AmbientDim() int
	NumVertices() int
	Vertex(v int) []T
	NumHalfspaces() int
	Halfspace(i int) ([]T, T)
	IncidentHalfspaces(v int) ([]int, error)
}

// Option configures a Polytope.
type Option func(*Options)

// Options holds engine-wide settings.
type Options struct {
	// Ctx is checked inside the pair and candidate loops.
	Ctx context.Context
	// Logger receives Debug records on cache population.
	Logger *charmlog.Logger
}

// DefaultOptions returns a background context and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: charmlog.New(io.Discard),
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *charmlog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// ApexOption configures Apices.
type ApexOption func(*apexOptions)

type apexOptions struct {
	preferred   int // 0 = none
	checkRedund bool
}

// WithPreferredApex fixes one endpoint of the searched pair to vertex v.
func WithPreferredApex(v int) ApexOption {
	return func(o *apexOptions) { o.preferred = v }
}

// WithCheckRedundancy selects the facet mask used by Apices. true (the
// default) ignores every row whose codimension is not 1. false ignores only
// the implicit equations, which is faster but may miss an apex pair when
// the system has redundant rows.
func WithCheckRedundancy(check bool) ApexOption {
	return func(o *apexOptions) { o.checkRedund = check }
}

// FaceState is the outcome of the good-2-face test. When Good is false the
// other fields are zero.
type FaceState struct {
	Good bool
	// Face lists the halfspaces tight on every vertex of the face.
	Face []int
	// Edges are the two shortcut edges (cyclic[i], cyclic[i+1]) and
	// (cyclic[j], cyclic[j+1]).
	Edges [2][2]int
	// Sides holds the apex-A side first, then the apex-B side.
	Sides [2][]int
}

// FacetSystem is the irredundant facet description: row k of A and B is
// halfspace Indices[k].
type FacetSystem[T any] struct {
	Indices []int
	A       [][]T
	B       []T
}

// SkeletonStats describes the last skeleton construction.
type SkeletonStats struct {
	Threshold     int
	Nondegenerate int
	Degenerate    int
	Edges         int
}

// OrientedResult is the outcome of OrientedDiameter. Dist is indexed by
// vertex (index 0 unused) and holds the shortest monotone path length to
// Sink.
type OrientedResult struct {
	Sink     int
	Diameter int
	Dist     []int
}
