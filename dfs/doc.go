// Package dfs implements depth-first search on core.Graph and the cycle
// recognition used for 2-faces of a polytope.
//
//   - DFS(g, start, opts...) traverses from a root, or the whole forest with
//     WithFullTraversal. Neighbours are explored in ascending order.
//   - CycleOrder(g) reports the cyclic vertex order of a graph that is a
//     single simple cycle, and ErrNotCycle otherwise.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is outside 1..n.
//   - ErrNotCycle               if CycleOrder's input is not one cycle.
//   - context.Canceled          if ctx is done.
package dfs
