// Package polytope is the face-lattice engine: it turns the vertex and
// halfspace data of a bounded polyhedron into its combinatorial structure.
//
// A Polytope wraps a Backend (normally a *polyhedron.Polyhedron) and
// computes, lazily and at most once each:
//
//   - the vertex×halfspace incidence matrix, one bitset per vertex;
//   - the dimension of the polytope and of any face (maximal chains);
//   - the facet classification of the inequality rows and the implicit
//     equations;
//   - the 1-skeleton, built by inclusion-maximality of common-facet sets;
//   - the faces of every dimension, bottom-up from the skeleton;
//   - apex pairs (spindle detection), graph distances and the good-2-face
//     certificate;
//   - oriented and monotone diameters for linear objectives.
//
// Indexing: vertices are 1..NumVertices() and halfspaces 1..NumHalfspaces()
// in every public call. Explicit equality rows of the backend take no index.
//
// Faces are identified by the set of halfspace indices tight on all of
// their vertices. The empty face is the full index set. When a face is
// passed as a query argument, an empty list stands for the whole polytope;
// FacesOfDim(-1) returns the full index set as the empty face. The two
// meanings are context-dependent and both are kept.
//
// Errors:
//
//	ErrIndexOutOfRange        - vertex or halfspace index outside its range.
//	ErrUnbounded, ErrEmpty,
//	ErrDimensionMismatch,
//	ErrNotFullDimensional     - construction failures (from polyhedron).
//	ErrNilBackend             - New called with a nil backend.
//	ErrGeometricPrecondition  - geometric precondition of an operator fails.
//	ErrTooManyDirections      - region enumeration over too many edge directions.
//
// A polytope that is not a spindle, or a face that is not good, is a normal
// result and never an error.
//
// Concurrency: every cache slot has its own mutex and is filled once; all
// methods are safe for concurrent use. WithContext adds cancellation to the
// quadratic pair loops of skeleton and face construction.
package polytope
