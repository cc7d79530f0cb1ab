// Package adjacency provides the read-only graph view consumed by the
// structural-balance algorithms, plus a compact sorted implementation.
//
// The view G = (V,E) is undirected and simple:
//
//   - Vertices are dense integers 1..N.
//   - No self-loops, no parallel edges.
//   - Every neighbor list is strictly ascending and symmetric
//     (y ∈ N(x) ⇔ x ∈ N(y)).
//
// Sortedness is a hard precondition of the triangle enumerator (merge-style
// intersection) and of HasEdge (binary search). Validate checks all of the
// above in O(V + E·log d).
//
// Core API:
//
//	// Accessor (interface, implemented by *Sorted)
//	VertexCount() int              // O(1)
//	Neighbors(v int) []int         // O(1), ascending, read-only
//	HasEdge(x, y int) bool         // O(log min(deg x, deg y))
//
//	// Construction
//	New(n int, edges []Edge, opts ...Option) (*Sorted, error) // O(V + E·log E)
//	FromLists(lists [][]int) (*Sorted, error)                 // O(V + E), validated
//
//	// Helpers
//	Validate(g Graph) error        // precondition check
//	Edges(g Graph) []Edge          // canonical x<y list, ascending
//	EdgeCount(g Graph) int         // O(V)
//
// Storage layout of *Sorted is compressed sparse row:
//
//	offsets[v]..offsets[v+1]  →  targets[...]  (v in 1..N, offsets[0] unused)
//
// Errors:
//
//	ErrBadVertexCount      – negative vertex count
//	ErrVertexOutOfRange    – vertex id outside 1..N
//	ErrLoopNotAllowed      – self-loop x==y
//	ErrMultiEdgeNotAllowed – repeated edge without WithDedup
//	ErrUnsorted            – neighbor list not strictly ascending
//	ErrAsymmetric          – y ∈ N(x) but x ∉ N(y)
//
// A *Sorted is immutable after construction and safe for concurrent readers.
package adjacency
