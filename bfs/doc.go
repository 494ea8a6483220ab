// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order.
//
// Polytope graph distances and monotone-path lengths are computed with BFS:
// every edge has length one.
//
// Options:
//
//	WithContext(ctx)        cancellation, checked once per dequeued vertex
//	WithMaxDepth(d)         stop expanding beyond depth d (0 = unlimited)
//	WithFilterNeighbor(fn)  skip edges for which fn returns false
//	WithOnVisit(fn)         hook per visited vertex; an error aborts the search
package bfs
